package dto

import (
	"time"

	"github.com/google/uuid"

	"codetrain_backend/internals/features/academics/assignments/model"
)

// ================== REQUEST ==================
type CreateAssignmentRequest struct {
	AssignmentTitle         string     `json:"assignment_title" validate:"required,max=200"`
	AssignmentDescription   string     `json:"assignment_description" validate:"omitempty"`
	AssignmentPointCategory string     `json:"assignment_point_category" validate:"required,oneof='Class Assignments' 'Class Exercises' 'Weekly Projects' '100 Days of Code'"`
	AssignmentPoints        int        `json:"assignment_points" validate:"required,gt=0"`
	AssignmentGen           string     `json:"assignment_gen" validate:"required,max=30"`
	AssignmentDueAt         *time.Time `json:"assignment_due_at"`
}

type UpdateAssignmentRequest struct {
	AssignmentTitle       *string    `json:"assignment_title" validate:"omitempty,max=200"`
	AssignmentDescription *string    `json:"assignment_description"`
	AssignmentPoints      *int       `json:"assignment_points" validate:"omitempty,gt=0"`
	AssignmentDueAt       *time.Time `json:"assignment_due_at"`
}

// ================== RESPONSE ==================
type AssignmentResponse struct {
	AssignmentID            uuid.UUID  `json:"assignment_id"`
	AssignmentTitle         string     `json:"assignment_title"`
	AssignmentDescription   string     `json:"assignment_description"`
	AssignmentPointCategory string     `json:"assignment_point_category"`
	AssignmentPoints        int        `json:"assignment_points"`
	AssignmentGen           string     `json:"assignment_gen"`
	AssignmentDueAt         *time.Time `json:"assignment_due_at,omitempty"`
	AssignmentCreatedAt     string     `json:"assignment_created_at"`
}

// ================ CONVERSION =================
func (r *CreateAssignmentRequest) ToModel(createdBy uuid.UUID) *model.AssignmentModel {
	return &model.AssignmentModel{
		AssignmentTitle:         r.AssignmentTitle,
		AssignmentDescription:   r.AssignmentDescription,
		AssignmentPointCategory: r.AssignmentPointCategory,
		AssignmentPoints:        r.AssignmentPoints,
		AssignmentGen:           r.AssignmentGen,
		AssignmentDueAt:         r.AssignmentDueAt,
		AssignmentCreatedBy:     createdBy,
	}
}

func ToAssignmentResponse(m *model.AssignmentModel) *AssignmentResponse {
	return &AssignmentResponse{
		AssignmentID:            m.AssignmentID,
		AssignmentTitle:         m.AssignmentTitle,
		AssignmentDescription:   m.AssignmentDescription,
		AssignmentPointCategory: m.AssignmentPointCategory,
		AssignmentPoints:        m.AssignmentPoints,
		AssignmentGen:           m.AssignmentGen,
		AssignmentDueAt:         m.AssignmentDueAt,
		AssignmentCreatedAt:     m.AssignmentCreatedAt.Format(time.RFC3339),
	}
}

func ToAssignmentResponseList(models []model.AssignmentModel) []AssignmentResponse {
	result := make([]AssignmentResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToAssignmentResponse(&models[i]))
	}
	return result
}
