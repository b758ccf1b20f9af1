package dto

import (
	"time"

	"github.com/google/uuid"

	"codetrain_backend/internals/features/announcements/model"
)

type CreateAnnouncementRequest struct {
	Title string  `json:"title" validate:"required,max=160"`
	Body  string  `json:"body" validate:"required,max=10000"`
	Gen   *string `json:"gen" validate:"omitempty,max=30"`
}

func (r *CreateAnnouncementRequest) ToModel(createdBy uuid.UUID) *model.AnnouncementModel {
	return &model.AnnouncementModel{
		AnnouncementTitle:     r.Title,
		AnnouncementBody:      r.Body,
		AnnouncementGen:       r.Gen,
		AnnouncementCreatedBy: createdBy,
	}
}

type UpdateAnnouncementRequest struct {
	Title *string `json:"title" validate:"omitempty,max=160"`
	Body  *string `json:"body" validate:"omitempty,max=10000"`
}

type AnnouncementResponse struct {
	AnnouncementID uuid.UUID `json:"announcement_id"`
	Title          string    `json:"title"`
	Body           string    `json:"body"`
	Gen            *string   `json:"gen,omitempty"`
	CreatedBy      uuid.UUID `json:"created_by"`
	CreatedAt      time.Time `json:"created_at"`
}

func ToAnnouncementResponse(m *model.AnnouncementModel) AnnouncementResponse {
	return AnnouncementResponse{
		AnnouncementID: m.AnnouncementID,
		Title:          m.AnnouncementTitle,
		Body:           m.AnnouncementBody,
		Gen:            m.AnnouncementGen,
		CreatedBy:      m.AnnouncementCreatedBy,
		CreatedAt:      m.AnnouncementCreatedAt,
	}
}

func ToAnnouncementResponseList(ms []model.AnnouncementModel) []AnnouncementResponse {
	out := make([]AnnouncementResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToAnnouncementResponse(&ms[i]))
	}
	return out
}
