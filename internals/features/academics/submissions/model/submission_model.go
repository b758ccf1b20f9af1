package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Two partial unique indexes enforce the one-submission rule at the schema
// level, so racing submits that both pass the in-transaction count cannot
// both commit. Soft-deleted rows are excluded, a delete frees the slot.
type SubmissionModel struct {
	SubmissionID        uuid.UUID `gorm:"type:uuid;primaryKey;column:submission_id" json:"submission_id"`
	SubmissionStudentID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_submissions_student_assignment,where:submission_point_category <> '100 Days of Code' AND submission_deleted_at IS NULL;uniqueIndex:idx_submissions_student_title,where:submission_point_category = '100 Days of Code' AND submission_deleted_at IS NULL;column:submission_student_id" json:"submission_student_id"`

	SubmissionAssignmentID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_submissions_student_assignment;column:submission_assignment_id" json:"submission_assignment_id"`

	// Title snapshot at submit time. For "100 Days of Code" this carries the
	// day's date and is the dedup key instead of the assignment id.
	SubmissionAssignmentTitle string `gorm:"type:varchar(200);not null;uniqueIndex:idx_submissions_student_title;column:submission_assignment_title" json:"submission_assignment_title"`
	SubmissionPointCategory   string `gorm:"type:varchar(40);not null;column:submission_point_category" json:"submission_point_category"`

	SubmissionLink string `gorm:"type:varchar(500);column:submission_link" json:"submission_link"`
	SubmissionText string `gorm:"type:text;column:submission_text" json:"submission_text"`

	SubmissionGrade    *string    `gorm:"type:varchar(40);column:submission_grade" json:"submission_grade,omitempty"`
	SubmissionFeedback *string    `gorm:"type:text;column:submission_feedback" json:"submission_feedback,omitempty"`
	SubmissionGradedBy *uuid.UUID `gorm:"type:uuid;column:submission_graded_by" json:"submission_graded_by,omitempty"`
	SubmissionGradedAt *time.Time `gorm:"column:submission_graded_at" json:"submission_graded_at,omitempty"`

	SubmissionSubmittedAt time.Time      `gorm:"autoCreateTime;column:submission_submitted_at" json:"submission_submitted_at"`
	SubmissionUpdatedAt   time.Time      `gorm:"autoUpdateTime;column:submission_updated_at" json:"submission_updated_at"`
	SubmissionDeletedAt   gorm.DeletedAt `gorm:"column:submission_deleted_at;index" json:"submission_deleted_at,omitempty"`
}

func (SubmissionModel) TableName() string {
	return "submissions"
}

func (m *SubmissionModel) BeforeCreate(tx *gorm.DB) error {
	if m.SubmissionID == uuid.Nil {
		m.SubmissionID = uuid.New()
	}
	return nil
}

// IsGraded reports whether grading already happened (and therefore points
// were awarded).
func (m *SubmissionModel) IsGraded() bool {
	return m.SubmissionGrade != nil
}
