package service

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"codetrain_backend/internals/features/points/model"
	userModel "codetrain_backend/internals/features/users/user/model"
)

var (
	// ErrDuplicateActivity: the activity was already awarded to this student.
	// Callers treat this as a non-fatal, expected outcome.
	ErrDuplicateActivity = errors.New("points already awarded for this activity")

	// ErrStudentNotFound: no aggregate row to apply the award against.
	ErrStudentNotFound = errors.New("student not found")
)

// Award writes one ledger entry and bumps the student's total in a single
// transaction. A second call with the same activity ID fails with
// ErrDuplicateActivity and mutates nothing. Returns the resulting total,
// computed from the pre-read value inside the transaction.
func Award(db *gorm.DB, studentID uuid.UUID, points int, reason, activityID, assignmentTitle string) (int, error) {
	var newTotal int

	err := db.Transaction(func(tx *gorm.DB) error {
		var existing model.PointEntryModel
		err := tx.Where("point_entry_student_id = ? AND point_entry_activity_id = ?", studentID, activityID).
			First(&existing).Error
		if err == nil {
			return ErrDuplicateActivity
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		var student userModel.UserModel
		if err := tx.Select("user_total_points").Where("user_id = ?", studentID).
			First(&student).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrStudentNotFound
			}
			return err
		}

		entry := model.PointEntryModel{
			PointEntryID:              uuid.New(),
			PointEntryStudentID:       studentID,
			PointEntryPoints:          points,
			PointEntryReason:          reason,
			PointEntryActivityID:      activityID,
			PointEntryAssignmentTitle: assignmentTitle,
			PointEntryAwardedAt:       time.Now(),
		}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}

		if err := tx.Model(&userModel.UserModel{}).
			Where("user_id = ?", studentID).
			Update("user_total_points", gorm.Expr("user_total_points + ?", points)).Error; err != nil {
			return err
		}

		newTotal = student.UserTotalPoints + points
		return nil
	})
	if err != nil {
		return 0, err
	}

	log.Printf("[SERVICE] Award - student=%s activity=%s points=%d total=%d",
		studentID, activityID, points, newTotal)
	return newTotal, nil
}

// Revoke removes the ledger entry for the activity and decrements the
// student's total by the entry's stored points, atomically. Revoking an
// absent entry succeeds (idempotent).
func Revoke(db *gorm.DB, studentID uuid.UUID, activityID string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var entry model.PointEntryModel
		err := tx.Where("point_entry_student_id = ? AND point_entry_activity_id = ?", studentID, activityID).
			First(&entry).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// already revoked
			return nil
		}
		if err != nil {
			return err
		}

		// The amount to reverse is authoritative from the ledger, never
		// caller-supplied.
		if err := tx.Model(&userModel.UserModel{}).
			Where("user_id = ?", studentID).
			Update("user_total_points", gorm.Expr("user_total_points - ?", entry.PointEntryPoints)).Error; err != nil {
			return err
		}

		return tx.Delete(&entry).Error
	})
}

// ManualAward is the admin path: the activity ID carries a random suffix so
// manual awards always stack instead of deduplicating.
func ManualAward(db *gorm.DB, studentID uuid.UUID, points int, reason string) (int, string, error) {
	activityID := "manual-" + slugify(reason) + "-" + uuid.NewString()[:8]
	total, err := Award(db, studentID, points, reason, activityID, "")
	return total, activityID, err
}

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash && b.Len() > 0 {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
