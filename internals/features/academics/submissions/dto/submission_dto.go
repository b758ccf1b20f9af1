package dto

import (
	"time"

	"github.com/google/uuid"

	"codetrain_backend/internals/features/academics/submissions/model"
)

type CreateSubmissionRequest struct {
	AssignmentID    uuid.UUID `json:"assignment_id" validate:"required"`
	AssignmentTitle string    `json:"assignment_title" validate:"required,max=200"`
	PointCategory   string    `json:"point_category" validate:"required,oneof='Class Assignments' 'Class Exercises' 'Weekly Projects' '100 Days of Code'"`
	Link            string    `json:"link" validate:"omitempty,url,max=500"`
	Text            string    `json:"text" validate:"omitempty,max=10000"`
}

func (r *CreateSubmissionRequest) ToModel(studentID uuid.UUID) *model.SubmissionModel {
	return &model.SubmissionModel{
		SubmissionStudentID:       studentID,
		SubmissionAssignmentID:    r.AssignmentID,
		SubmissionAssignmentTitle: r.AssignmentTitle,
		SubmissionPointCategory:   r.PointCategory,
		SubmissionLink:            r.Link,
		SubmissionText:            r.Text,
	}
}

type GradeSubmissionRequest struct {
	Grade    string `json:"grade" validate:"required,max=40"`
	Feedback string `json:"feedback" validate:"omitempty,max=5000"`

	// Optional override; when absent the assignment's configured points apply.
	Points int `json:"points" validate:"omitempty,gte=0,lte=1000"`
}

type SubmissionResponse struct {
	SubmissionID    uuid.UUID  `json:"submission_id"`
	StudentID       uuid.UUID  `json:"student_id"`
	AssignmentID    uuid.UUID  `json:"assignment_id"`
	AssignmentTitle string     `json:"assignment_title"`
	PointCategory   string     `json:"point_category"`
	Link            string     `json:"link,omitempty"`
	Text            string     `json:"text,omitempty"`
	Grade           *string    `json:"grade,omitempty"`
	Feedback        *string    `json:"feedback,omitempty"`
	GradedBy        *uuid.UUID `json:"graded_by,omitempty"`
	GradedAt        *time.Time `json:"graded_at,omitempty"`
	SubmittedAt     time.Time  `json:"submitted_at"`
}

func ToSubmissionResponse(m *model.SubmissionModel) SubmissionResponse {
	return SubmissionResponse{
		SubmissionID:    m.SubmissionID,
		StudentID:       m.SubmissionStudentID,
		AssignmentID:    m.SubmissionAssignmentID,
		AssignmentTitle: m.SubmissionAssignmentTitle,
		PointCategory:   m.SubmissionPointCategory,
		Link:            m.SubmissionLink,
		Text:            m.SubmissionText,
		Grade:           m.SubmissionGrade,
		Feedback:        m.SubmissionFeedback,
		GradedBy:        m.SubmissionGradedBy,
		GradedAt:        m.SubmissionGradedAt,
		SubmittedAt:     m.SubmissionSubmittedAt,
	}
}

func ToSubmissionResponseList(ms []model.SubmissionModel) []SubmissionResponse {
	out := make([]SubmissionResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToSubmissionResponse(&ms[i]))
	}
	return out
}
