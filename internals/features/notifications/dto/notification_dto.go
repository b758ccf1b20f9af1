package dto

import (
	"time"

	"github.com/google/uuid"

	"codetrain_backend/internals/features/notifications/model"
)

type BroadcastRequest struct {
	Gen         string `json:"gen" validate:"required,max=30"`
	Title       string `json:"title" validate:"required,max=160"`
	Description string `json:"description" validate:"omitempty,max=2000"`
	Href        string `json:"href" validate:"omitempty,max=255"`
}

type NotificationResponse struct {
	NotificationID uuid.UUID `json:"notification_id"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	Href           string    `json:"href,omitempty"`
	Read           bool      `json:"read"`
	CreatedAt      time.Time `json:"created_at"`
}

func ToNotificationResponse(m *model.NotificationModel) NotificationResponse {
	return NotificationResponse{
		NotificationID: m.NotificationID,
		Title:          m.NotificationTitle,
		Description:    m.NotificationDescription,
		Href:           m.NotificationHref,
		Read:           m.NotificationRead,
		CreatedAt:      m.NotificationCreatedAt,
	}
}

func ToNotificationResponseList(ms []model.NotificationModel) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToNotificationResponse(&ms[i]))
	}
	return out
}
