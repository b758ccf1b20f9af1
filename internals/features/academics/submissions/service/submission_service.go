package service

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"codetrain_backend/internals/constants"
	assignmentModel "codetrain_backend/internals/features/academics/assignments/model"
	"codetrain_backend/internals/features/academics/submissions/model"
	notifyService "codetrain_backend/internals/features/notifications/service"
	pointService "codetrain_backend/internals/features/points/service"
)

var (
	// ErrDuplicateSubmission: the student already submitted this activity.
	ErrDuplicateSubmission = errors.New("submission already exists for this activity")

	ErrSubmissionNotFound = errors.New("submission not found")
)

// DeriveActivityID maps a graded submission to its point ledger activity key.
// The mapping must stay stable: delete-cascade revokes depend on deriving the
// exact same key that grading awarded under.
func DeriveActivityID(pointCategory string, submissionID uuid.UUID, assignmentTitle string) string {
	switch pointCategory {
	case constants.CategoryClassAssignments:
		return "graded-submission-" + submissionID.String()
	case constants.CategoryClassExercises:
		return "graded-exercise-" + submissionID.String()
	case constants.CategoryWeeklyProjects:
		return "graded-project-" + submissionID.String()
	case constants.Category100DaysOfCode:
		// one point per calendar day, keyed by the date embedded in the title
		return "100-days-of-code-" + titleDateSuffix(assignmentTitle)
	default:
		return "graded-submission-" + submissionID.String()
	}
}

// titleDateSuffix pulls the trailing segment of titles shaped like
// "100 Days of Code - 2024-01-01".
func titleDateSuffix(title string) string {
	parts := strings.Split(title, " - ")
	return strings.TrimSpace(parts[len(parts)-1])
}

// Create inserts a submission behind a duplicate check, with the partial
// unique indexes on submissions as the backstop: two racing submits can both
// read count=0 under read committed, but only one insert commits.
//
// Uniqueness key: (student, assignment title) for "100 Days of Code", since
// one assignment id spans every daily instance and only the title carries
// the date; (student, assignment id) for everything else.
func Create(db *gorm.DB, sub *model.SubmissionModel) error {
	return db.Transaction(func(tx *gorm.DB) error {
		q := tx.Model(&model.SubmissionModel{}).
			Where("submission_student_id = ?", sub.SubmissionStudentID)
		if sub.SubmissionPointCategory == constants.Category100DaysOfCode {
			q = q.Where("submission_assignment_title = ?", sub.SubmissionAssignmentTitle)
		} else {
			q = q.Where("submission_assignment_id = ?", sub.SubmissionAssignmentID)
		}

		var count int64
		if err := q.Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateSubmission
		}

		if err := tx.Create(sub).Error; err != nil {
			if isDuplicateKey(err) {
				return ErrDuplicateSubmission
			}
			return err
		}
		return nil
	})
}

// isDuplicateKey recognises a unique index violation from either backing
// store. Postgres reports "duplicate key value", sqlite "UNIQUE constraint
// failed".
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}

// Grade awards points first, then records the grade. "Already awarded" from
// the points ledger is an acceptable outcome (a previous grading attempt got
// that far), so grading proceeds past it. The student notification is fire
// and forget.
func Grade(db *gorm.DB, submissionID uuid.UUID, grade, feedback string, points int, gradedBy uuid.UUID) (*model.SubmissionModel, error) {
	var sub model.SubmissionModel
	if err := db.Where("submission_id = ?", submissionID).First(&sub).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubmissionNotFound
		}
		return nil, err
	}

	if points <= 0 {
		points = assignmentPoints(db, sub.SubmissionAssignmentID)
	}

	activityID := DeriveActivityID(sub.SubmissionPointCategory, sub.SubmissionID, sub.SubmissionAssignmentTitle)
	if _, err := pointService.Award(db, sub.SubmissionStudentID, points, sub.SubmissionPointCategory, activityID, sub.SubmissionAssignmentTitle); err != nil {
		if !errors.Is(err, pointService.ErrDuplicateActivity) {
			return nil, err
		}
		log.Printf("[SERVICE] Grade - points already awarded for %s, continuing", activityID)
	}

	now := time.Now()
	updates := map[string]interface{}{
		"submission_grade":     grade,
		"submission_feedback":  feedback,
		"submission_graded_by": gradedBy,
		"submission_graded_at": now,
	}
	if err := db.Model(&sub).Updates(updates).Error; err != nil {
		return nil, err
	}
	sub.SubmissionGrade = &grade
	sub.SubmissionFeedback = &feedback
	sub.SubmissionGradedBy = &gradedBy
	sub.SubmissionGradedAt = &now

	notifyService.Notify(db, sub.SubmissionStudentID,
		"Your submission was graded",
		sub.SubmissionAssignmentTitle+" has been graded: "+grade,
		"/submissions/"+sub.SubmissionID.String())

	return &sub, nil
}

// Delete removes a submission. A graded submission first revokes its points
// (deriving the same activity id grading used); an ungraded one skips the
// revoke. Both steps run in one transaction.
func Delete(db *gorm.DB, submissionID uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var sub model.SubmissionModel
		if err := tx.Where("submission_id = ?", submissionID).First(&sub).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSubmissionNotFound
			}
			return err
		}

		if sub.IsGraded() {
			activityID := DeriveActivityID(sub.SubmissionPointCategory, sub.SubmissionID, sub.SubmissionAssignmentTitle)
			if err := pointService.Revoke(tx, sub.SubmissionStudentID, activityID); err != nil {
				return err
			}
		}

		return tx.Delete(&sub).Error
	})
}

// assignmentPoints resolves the configured worth of the assignment; 1 when
// the assignment is gone or was never configured.
func assignmentPoints(db *gorm.DB, assignmentID uuid.UUID) int {
	var a assignmentModel.AssignmentModel
	if err := db.Select("assignment_points").Where("assignment_id = ?", assignmentID).
		First(&a).Error; err != nil {
		return 1
	}
	if a.AssignmentPoints <= 0 {
		return 1
	}
	return a.AssignmentPoints
}
