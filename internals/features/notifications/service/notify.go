package service

import (
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"codetrain_backend/internals/features/notifications/model"
)

// Notify writes a notification for one user. It is fire-and-forget: a failed
// insert must never fail the workflow that triggered it, so errors are logged
// and swallowed.
func Notify(db *gorm.DB, userID uuid.UUID, title, description, href string) {
	n := model.NotificationModel{
		NotificationUserID:      userID,
		NotificationTitle:       title,
		NotificationDescription: description,
		NotificationHref:        href,
	}
	if err := db.Create(&n).Error; err != nil {
		log.Printf("[WARN] notification for %s dropped: %v", userID, err)
	}
}

// NotifyMany fans a notification out to a set of users, best effort.
func NotifyMany(db *gorm.DB, userIDs []uuid.UUID, title, description, href string) {
	for _, id := range userIDs {
		Notify(db, id, title, description, href)
	}
}
