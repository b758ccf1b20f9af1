package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MaterialModel struct {
	MaterialID        uuid.UUID `gorm:"type:uuid;primaryKey;column:material_id" json:"material_id"`
	MaterialSubjectID uuid.UUID `gorm:"type:uuid;not null;index;column:material_subject_id" json:"material_subject_id"`
	MaterialWeekID    uuid.UUID `gorm:"type:uuid;not null;index;column:material_week_id" json:"material_week_id"`
	MaterialTitle     string    `gorm:"type:varchar(160);not null;column:material_title" json:"material_title"`
	MaterialURL       string    `gorm:"type:varchar(500);not null;column:material_url" json:"material_url"`

	// video | slides | article | repo
	MaterialKind string `gorm:"type:varchar(20);not null;default:'article';column:material_kind" json:"material_kind"`

	MaterialCreatedAt time.Time      `gorm:"autoCreateTime;column:material_created_at" json:"material_created_at"`
	MaterialUpdatedAt time.Time      `gorm:"autoUpdateTime;column:material_updated_at" json:"material_updated_at"`
	MaterialDeletedAt gorm.DeletedAt `gorm:"column:material_deleted_at;index" json:"material_deleted_at,omitempty"`
}

func (MaterialModel) TableName() string {
	return "materials"
}

func (m *MaterialModel) BeforeCreate(tx *gorm.DB) error {
	if m.MaterialID == uuid.Nil {
		m.MaterialID = uuid.New()
	}
	return nil
}

// MaterialViewModel is an append-only log of a student opening a material.
// Only the originating row gets its duration/completed updated afterwards.
type MaterialViewModel struct {
	MaterialViewID         uuid.UUID `gorm:"type:uuid;primaryKey;column:material_view_id" json:"material_view_id"`
	MaterialViewMaterialID uuid.UUID `gorm:"type:uuid;not null;index;column:material_view_material_id" json:"material_view_material_id"`
	MaterialViewStudentID  uuid.UUID `gorm:"type:uuid;not null;index;column:material_view_student_id" json:"material_view_student_id"`

	MaterialViewDurationSeconds int  `gorm:"not null;default:0;column:material_view_duration_seconds" json:"material_view_duration_seconds"`
	MaterialViewCompleted       bool `gorm:"not null;default:false;column:material_view_completed" json:"material_view_completed"`

	MaterialViewViewedAt time.Time `gorm:"autoCreateTime;column:material_view_viewed_at" json:"material_view_viewed_at"`
}

func (MaterialViewModel) TableName() string {
	return "material_views"
}

func (m *MaterialViewModel) BeforeCreate(tx *gorm.DB) error {
	if m.MaterialViewID == uuid.Nil {
		m.MaterialViewID = uuid.New()
	}
	return nil
}
