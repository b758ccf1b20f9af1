package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AssignmentModel struct {
	AssignmentID          uuid.UUID `gorm:"type:uuid;primaryKey;column:assignment_id" json:"assignment_id"`
	AssignmentTitle       string    `gorm:"type:varchar(200);not null;column:assignment_title" json:"assignment_title"`
	AssignmentDescription string    `gorm:"type:text;column:assignment_description" json:"assignment_description"`

	// One of the point categories in internals/constants.
	AssignmentPointCategory string `gorm:"type:varchar(40);not null;column:assignment_point_category" json:"assignment_point_category"`
	AssignmentPoints        int    `gorm:"not null;default:1;column:assignment_points" json:"assignment_points"`

	AssignmentGen       string     `gorm:"type:varchar(30);not null;index;column:assignment_gen" json:"assignment_gen"`
	AssignmentDueAt     *time.Time `gorm:"column:assignment_due_at" json:"assignment_due_at,omitempty"`
	AssignmentCreatedBy uuid.UUID  `gorm:"type:uuid;not null;column:assignment_created_by" json:"assignment_created_by"`

	AssignmentCreatedAt time.Time      `gorm:"autoCreateTime;column:assignment_created_at" json:"assignment_created_at"`
	AssignmentUpdatedAt time.Time      `gorm:"autoUpdateTime;column:assignment_updated_at" json:"assignment_updated_at"`
	AssignmentDeletedAt gorm.DeletedAt `gorm:"column:assignment_deleted_at;index" json:"assignment_deleted_at,omitempty"`
}

func (AssignmentModel) TableName() string {
	return "assignments"
}

func (m *AssignmentModel) BeforeCreate(tx *gorm.DB) error {
	if m.AssignmentID == uuid.Nil {
		m.AssignmentID = uuid.New()
	}
	return nil
}
