package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AnnouncementModel struct {
	AnnouncementID    uuid.UUID `gorm:"type:uuid;primaryKey;column:announcement_id" json:"announcement_id"`
	AnnouncementTitle string    `gorm:"type:varchar(160);not null;column:announcement_title" json:"announcement_title"`
	AnnouncementBody  string    `gorm:"type:text;not null;column:announcement_body" json:"announcement_body"`

	// nil = visible to every cohort
	AnnouncementGen *string `gorm:"type:varchar(30);index;column:announcement_gen" json:"announcement_gen,omitempty"`

	AnnouncementCreatedBy uuid.UUID `gorm:"type:uuid;not null;column:announcement_created_by" json:"announcement_created_by"`

	AnnouncementCreatedAt time.Time      `gorm:"autoCreateTime;column:announcement_created_at" json:"announcement_created_at"`
	AnnouncementUpdatedAt time.Time      `gorm:"autoUpdateTime;column:announcement_updated_at" json:"announcement_updated_at"`
	AnnouncementDeletedAt gorm.DeletedAt `gorm:"column:announcement_deleted_at;index" json:"announcement_deleted_at,omitempty"`
}

func (AnnouncementModel) TableName() string {
	return "announcements"
}

func (m *AnnouncementModel) BeforeCreate(tx *gorm.DB) error {
	if m.AnnouncementID == uuid.Nil {
		m.AnnouncementID = uuid.New()
	}
	return nil
}
