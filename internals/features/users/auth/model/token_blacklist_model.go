package model

import (
	"time"

	"gorm.io/gorm"
)

// Tokens invalidated by logout. Rows are swept once expired.
type TokenBlacklistModel struct {
	TokenBlacklistID        uint           `gorm:"primaryKey;column:token_blacklist_id" json:"token_blacklist_id"`
	TokenBlacklistToken     string         `gorm:"type:text;not null;index;column:token_blacklist_token" json:"token_blacklist_token"`
	TokenBlacklistExpiresAt time.Time      `gorm:"not null;column:token_blacklist_expires_at" json:"token_blacklist_expires_at"`
	TokenBlacklistCreatedAt time.Time      `gorm:"autoCreateTime;column:token_blacklist_created_at" json:"token_blacklist_created_at"`
	TokenBlacklistDeletedAt gorm.DeletedAt `gorm:"column:token_blacklist_deleted_at;index" json:"token_blacklist_deleted_at,omitempty"`
}

func (TokenBlacklistModel) TableName() string {
	return "token_blacklists"
}
