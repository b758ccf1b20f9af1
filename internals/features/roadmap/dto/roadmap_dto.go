package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"codetrain_backend/internals/features/roadmap/model"
)

type CreateSubjectRequest struct {
	Title    string `json:"title" validate:"required,max=120"`
	Position int    `json:"position" validate:"gte=0"`
	Gen      string `json:"gen" validate:"required,max=30"`
}

func (r *CreateSubjectRequest) ToModel() *model.RoadmapSubjectModel {
	return &model.RoadmapSubjectModel{
		RoadmapSubjectTitle:    r.Title,
		RoadmapSubjectPosition: r.Position,
		RoadmapSubjectGen:      r.Gen,
	}
}

type UpdateSubjectRequest struct {
	Title    *string `json:"title" validate:"omitempty,max=120"`
	Position *int    `json:"position" validate:"omitempty,gte=0"`
}

type CreateWeekRequest struct {
	SubjectID uuid.UUID      `json:"subject_id" validate:"required"`
	Title     string         `json:"title" validate:"required,max=120"`
	Position  int            `json:"position" validate:"gte=0"`
	Topics    datatypes.JSON `json:"topics"`
}

func (r *CreateWeekRequest) ToModel() *model.RoadmapWeekModel {
	return &model.RoadmapWeekModel{
		RoadmapWeekSubjectID: r.SubjectID,
		RoadmapWeekTitle:     r.Title,
		RoadmapWeekPosition:  r.Position,
		RoadmapWeekTopics:    r.Topics,
	}
}

type UpdateWeekRequest struct {
	Title    *string         `json:"title" validate:"omitempty,max=120"`
	Position *int            `json:"position" validate:"omitempty,gte=0"`
	Topics   *datatypes.JSON `json:"topics"`
}

type MarkCompletionRequest struct {
	Gen       string `json:"gen" validate:"required,max=30"`
	Completed bool   `json:"completed"`
}

type CreateMaterialRequest struct {
	SubjectID uuid.UUID `json:"subject_id" validate:"required"`
	WeekID    uuid.UUID `json:"week_id" validate:"required"`
	Title     string    `json:"title" validate:"required,max=160"`
	URL       string    `json:"url" validate:"required,url,max=500"`
	Kind      string    `json:"kind" validate:"required,oneof=video slides article repo"`
}

func (r *CreateMaterialRequest) ToModel() *model.MaterialModel {
	return &model.MaterialModel{
		MaterialSubjectID: r.SubjectID,
		MaterialWeekID:    r.WeekID,
		MaterialTitle:     r.Title,
		MaterialURL:       r.URL,
		MaterialKind:      r.Kind,
	}
}

type UpdateMaterialRequest struct {
	Title *string `json:"title" validate:"omitempty,max=160"`
	URL   *string `json:"url" validate:"omitempty,url,max=500"`
	Kind  *string `json:"kind" validate:"omitempty,oneof=video slides article repo"`
}

type UpdateMaterialViewRequest struct {
	DurationSeconds *int  `json:"duration_seconds" validate:"omitempty,gte=0"`
	Completed       *bool `json:"completed"`
}

// WeekResponse is one unlocked week in the student view, with its materials
// attached.
type WeekResponse struct {
	WeekID    uuid.UUID          `json:"week_id"`
	SubjectID uuid.UUID          `json:"subject_id"`
	Title     string             `json:"title"`
	Position  int                `json:"position"`
	Topics    datatypes.JSON     `json:"topics,omitempty"`
	Completed bool               `json:"completed"`
	Materials []MaterialResponse `json:"materials"`
}

type SubjectResponse struct {
	SubjectID uuid.UUID      `json:"subject_id"`
	Title     string         `json:"title"`
	Position  int            `json:"position"`
	Gen       string         `json:"gen"`
	Weeks     []WeekResponse `json:"weeks,omitempty"`
}

type MaterialResponse struct {
	MaterialID uuid.UUID `json:"material_id"`
	SubjectID  uuid.UUID `json:"subject_id"`
	WeekID     uuid.UUID `json:"week_id"`
	Title      string    `json:"title"`
	URL        string    `json:"url"`
	Kind       string    `json:"kind"`
}

func ToMaterialResponse(m *model.MaterialModel) MaterialResponse {
	return MaterialResponse{
		MaterialID: m.MaterialID,
		SubjectID:  m.MaterialSubjectID,
		WeekID:     m.MaterialWeekID,
		Title:      m.MaterialTitle,
		URL:        m.MaterialURL,
		Kind:       m.MaterialKind,
	}
}

type MaterialViewResponse struct {
	ViewID          uuid.UUID `json:"view_id"`
	MaterialID      uuid.UUID `json:"material_id"`
	DurationSeconds int       `json:"duration_seconds"`
	Completed       bool      `json:"completed"`
	ViewedAt        time.Time `json:"viewed_at"`
}

func ToMaterialViewResponse(m *model.MaterialViewModel) MaterialViewResponse {
	return MaterialViewResponse{
		ViewID:          m.MaterialViewID,
		MaterialID:      m.MaterialViewMaterialID,
		DurationSeconds: m.MaterialViewDurationSeconds,
		Completed:       m.MaterialViewCompleted,
		ViewedAt:        m.MaterialViewViewedAt,
	}
}
