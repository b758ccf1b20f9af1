package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"codetrain_backend/internals/constants"
)

type UserModel struct {
	UserID       uuid.UUID      `gorm:"type:uuid;primaryKey;column:user_id" json:"user_id"`
	UserName     string         `gorm:"type:varchar(100);not null;column:user_name" json:"user_name"`
	UserEmail    string         `gorm:"type:varchar(120);not null;uniqueIndex;column:user_email" json:"user_email"`
	UserPassword string         `gorm:"type:varchar(120);not null;column:user_password" json:"-"`
	UserRole     constants.Role `gorm:"type:varchar(20);not null;default:'student';column:user_role" json:"user_role"`

	// Cohort label, e.g. "Gen 30". Staff accounts leave it empty.
	UserGen string `gorm:"type:varchar(30);column:user_gen" json:"user_gen"`

	// Aggregate of live point ledger entries. Mutated only inside the same
	// transaction as the ledger write/delete, never recomputed.
	UserTotalPoints int `gorm:"not null;default:0;column:user_total_points" json:"user_total_points"`

	UserIsActive bool `gorm:"not null;default:true;column:user_is_active" json:"user_is_active"`

	UserCreatedAt time.Time      `gorm:"autoCreateTime;column:user_created_at" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"autoUpdateTime;column:user_updated_at" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"user_deleted_at,omitempty"`
}

func (UserModel) TableName() string {
	return "users"
}

func (m *UserModel) BeforeCreate(tx *gorm.DB) error {
	if m.UserID == uuid.Nil {
		m.UserID = uuid.New()
	}
	return nil
}
