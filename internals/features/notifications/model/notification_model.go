package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationModel struct {
	NotificationID          uuid.UUID `gorm:"type:uuid;primaryKey;column:notification_id" json:"notification_id"`
	NotificationUserID      uuid.UUID `gorm:"type:uuid;not null;index;column:notification_user_id" json:"notification_user_id"`
	NotificationTitle       string    `gorm:"type:varchar(160);not null;column:notification_title" json:"notification_title"`
	NotificationDescription string    `gorm:"type:text;column:notification_description" json:"notification_description"`
	NotificationHref        string    `gorm:"type:varchar(255);column:notification_href" json:"notification_href"`
	NotificationRead        bool      `gorm:"not null;default:false;column:notification_read" json:"notification_read"`

	NotificationCreatedAt time.Time      `gorm:"autoCreateTime;column:notification_created_at" json:"notification_created_at"`
	NotificationDeletedAt gorm.DeletedAt `gorm:"column:notification_deleted_at;index" json:"notification_deleted_at,omitempty"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}

func (m *NotificationModel) BeforeCreate(tx *gorm.DB) error {
	if m.NotificationID == uuid.Nil {
		m.NotificationID = uuid.New()
	}
	return nil
}
