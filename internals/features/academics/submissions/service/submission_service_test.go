package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"codetrain_backend/internals/constants"
	assignmentModel "codetrain_backend/internals/features/academics/assignments/model"
	"codetrain_backend/internals/features/academics/submissions/model"
	notificationModel "codetrain_backend/internals/features/notifications/model"
	pointModel "codetrain_backend/internals/features/points/model"
	userModel "codetrain_backend/internals/features/users/user/model"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&userModel.UserModel{},
		&pointModel.PointEntryModel{},
		&assignmentModel.AssignmentModel{},
		&model.SubmissionModel{},
		&notificationModel.NotificationModel{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		db.Exec("DELETE FROM submissions")
		db.Exec("DELETE FROM point_entries")
		db.Exec("DELETE FROM notifications")
		db.Exec("DELETE FROM assignments")
		db.Exec("DELETE FROM users")
	})
	return db
}

func seedStudent(t *testing.T, db *gorm.DB) uuid.UUID {
	t.Helper()
	u := userModel.UserModel{
		UserName:     "Ama Mensah",
		UserEmail:    uuid.NewString() + "@codetrain.africa",
		UserPassword: "x",
		UserRole:     constants.RoleStudent,
		UserGen:      "Gen 21",
	}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("seed student: %v", err)
	}
	return u.UserID
}

func totalOf(t *testing.T, db *gorm.DB, studentID uuid.UUID) int {
	t.Helper()
	var u userModel.UserModel
	if err := db.Where("user_id = ?", studentID).First(&u).Error; err != nil {
		t.Fatalf("load student: %v", err)
	}
	return u.UserTotalPoints
}

func newSubmission(studentID uuid.UUID, category, title string, assignmentID uuid.UUID) *model.SubmissionModel {
	return &model.SubmissionModel{
		SubmissionStudentID:       studentID,
		SubmissionAssignmentID:    assignmentID,
		SubmissionAssignmentTitle: title,
		SubmissionPointCategory:   category,
		SubmissionLink:            "https://github.com/example/solution",
	}
}

func TestCreateRejectsDuplicateAssignment(t *testing.T) {
	db := testDB(t)
	student := seedStudent(t, db)
	assignment := uuid.New()

	first := newSubmission(student, constants.CategoryClassAssignments, "Week 3 - Flexbox Layout", assignment)
	if err := Create(db, first); err != nil {
		t.Fatalf("first submission: %v", err)
	}

	dup := newSubmission(student, constants.CategoryClassAssignments, "Week 3 - Flexbox Layout", assignment)
	if err := Create(db, dup); !errors.Is(err, ErrDuplicateSubmission) {
		t.Fatalf("expected ErrDuplicateSubmission, got %v", err)
	}

	var count int64
	db.Model(&model.SubmissionModel{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected 1 stored submission, got %d", count)
	}
}

func TestCreate100DaysDedupesByTitleNotAssignment(t *testing.T) {
	db := testDB(t)
	student := seedStudent(t, db)
	assignment := uuid.New()

	day1 := newSubmission(student, constants.Category100DaysOfCode, "100 Days of Code - 2026-08-30", assignment)
	if err := Create(db, day1); err != nil {
		t.Fatalf("day 1: %v", err)
	}

	// same assignment id, same day: blocked
	day1Again := newSubmission(student, constants.Category100DaysOfCode, "100 Days of Code - 2026-08-30", assignment)
	if err := Create(db, day1Again); !errors.Is(err, ErrDuplicateSubmission) {
		t.Fatalf("expected ErrDuplicateSubmission for same day, got %v", err)
	}

	// same assignment id, next day: allowed
	day2 := newSubmission(student, constants.Category100DaysOfCode, "100 Days of Code - 2026-08-31", assignment)
	if err := Create(db, day2); err != nil {
		t.Fatalf("day 2 should pass: %v", err)
	}
}

func TestCreateAllowsDifferentStudentsSameAssignment(t *testing.T) {
	db := testDB(t)
	a := seedStudent(t, db)
	b := seedStudent(t, db)
	assignment := uuid.New()

	if err := Create(db, newSubmission(a, constants.CategoryClassExercises, "Loops Drill", assignment)); err != nil {
		t.Fatalf("student a: %v", err)
	}
	if err := Create(db, newSubmission(b, constants.CategoryClassExercises, "Loops Drill", assignment)); err != nil {
		t.Fatalf("student b: %v", err)
	}
}

func TestDuplicateRejectedByUniqueIndex(t *testing.T) {
	db := testDB(t)
	student := seedStudent(t, db)
	assignment := uuid.New()

	if err := Create(db, newSubmission(student, constants.CategoryClassAssignments, "Week 2 - CSS Grid", assignment)); err != nil {
		t.Fatalf("first submission: %v", err)
	}

	// insert directly, skipping Create's count check: the schema itself
	// must reject the second row
	raw := newSubmission(student, constants.CategoryClassAssignments, "Week 2 - CSS Grid", assignment)
	err := db.Create(raw).Error
	if err == nil {
		t.Fatalf("raw duplicate insert should hit the unique index")
	}
	if !isDuplicateKey(err) {
		t.Fatalf("expected a unique violation, got %v", err)
	}

	var count int64
	db.Model(&model.SubmissionModel{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected 1 stored submission, got %d", count)
	}
}

func Test100DaysTitleIndexIgnoresAssignmentID(t *testing.T) {
	db := testDB(t)
	student := seedStudent(t, db)

	if err := Create(db, newSubmission(student, constants.Category100DaysOfCode, "100 Days of Code - 2026-08-30", uuid.New())); err != nil {
		t.Fatalf("day 1: %v", err)
	}

	// a fresh assignment id does not help, the title index keys the day
	raw := newSubmission(student, constants.Category100DaysOfCode, "100 Days of Code - 2026-08-30", uuid.New())
	if err := db.Create(raw).Error; !isDuplicateKey(err) {
		t.Fatalf("expected a unique violation on the title index, got %v", err)
	}

	// same title under another category dedups by assignment id instead
	if err := Create(db, newSubmission(student, constants.CategoryClassAssignments, "100 Days of Code - 2026-08-30", uuid.New())); err != nil {
		t.Fatalf("other category with same title: %v", err)
	}
}

func TestResubmitAllowedAfterDelete(t *testing.T) {
	db := testDB(t)
	student := seedStudent(t, db)
	assignment := uuid.New()

	sub := newSubmission(student, constants.CategoryClassExercises, "Recursion Drill", assignment)
	if err := Create(db, sub); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := Delete(db, sub.SubmissionID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	// a deleted row frees the dedup slot, both in the check and the index
	if err := Create(db, newSubmission(student, constants.CategoryClassExercises, "Recursion Drill", assignment)); err != nil {
		t.Fatalf("resubmit after delete: %v", err)
	}
}

func TestGradeAwardsPointsOnce(t *testing.T) {
	db := testDB(t)
	student := seedStudent(t, db)
	teacher := seedStudent(t, db)

	sub := newSubmission(student, constants.CategoryWeeklyProjects, "Portfolio Site", uuid.New())
	if err := Create(db, sub); err != nil {
		t.Fatalf("create: %v", err)
	}

	graded, err := Grade(db, sub.SubmissionID, "A", "Clean work", 10, teacher)
	if err != nil {
		t.Fatalf("grade: %v", err)
	}
	if !graded.IsGraded() {
		t.Fatalf("submission should be graded")
	}
	if got := totalOf(t, db, student); got != 10 {
		t.Fatalf("total after grading = %d, want 10", got)
	}

	// re-grading updates the grade but the ledger stays at one entry
	if _, err := Grade(db, sub.SubmissionID, "B", "Revised", 10, teacher); err != nil {
		t.Fatalf("regrade: %v", err)
	}
	if got := totalOf(t, db, student); got != 10 {
		t.Fatalf("total after regrade = %d, want 10", got)
	}

	var notifCount int64
	db.Model(&notificationModel.NotificationModel{}).
		Where("notification_user_id = ?", student).Count(&notifCount)
	if notifCount == 0 {
		t.Fatalf("grading should notify the student")
	}
}

func TestGradeFallsBackToAssignmentPoints(t *testing.T) {
	db := testDB(t)
	student := seedStudent(t, db)
	teacher := seedStudent(t, db)

	a := assignmentModel.AssignmentModel{
		AssignmentTitle:         "Capstone",
		AssignmentPointCategory: constants.CategoryWeeklyProjects,
		AssignmentPoints:        25,
		AssignmentGen:           "Gen 21",
	}
	if err := db.Create(&a).Error; err != nil {
		t.Fatalf("seed assignment: %v", err)
	}

	sub := newSubmission(student, constants.CategoryWeeklyProjects, "Capstone", a.AssignmentID)
	if err := Create(db, sub); err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := Grade(db, sub.SubmissionID, "A", "", 0, teacher); err != nil {
		t.Fatalf("grade: %v", err)
	}
	if got := totalOf(t, db, student); got != 25 {
		t.Fatalf("total = %d, want assignment's 25", got)
	}
}

func TestDeleteGradedSubmissionRevokesPoints(t *testing.T) {
	db := testDB(t)
	student := seedStudent(t, db)
	teacher := seedStudent(t, db)

	sub := newSubmission(student, constants.CategoryClassAssignments, "Week 5 - APIs", uuid.New())
	if err := Create(db, sub); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := Grade(db, sub.SubmissionID, "A", "", 8, teacher); err != nil {
		t.Fatalf("grade: %v", err)
	}
	if got := totalOf(t, db, student); got != 8 {
		t.Fatalf("total = %d, want 8", got)
	}

	if err := Delete(db, sub.SubmissionID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got := totalOf(t, db, student); got != 0 {
		t.Fatalf("total after delete = %d, want 0", got)
	}

	var entries int64
	db.Model(&pointModel.PointEntryModel{}).
		Where("point_entry_student_id = ?", student).Count(&entries)
	if entries != 0 {
		t.Fatalf("ledger should be empty, has %d entries", entries)
	}
}

func TestDeleteUngradedSubmissionLeavesLedgerAlone(t *testing.T) {
	db := testDB(t)
	student := seedStudent(t, db)

	sub := newSubmission(student, constants.CategoryClassExercises, "Arrays Drill", uuid.New())
	if err := Create(db, sub); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := Delete(db, sub.SubmissionID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got := totalOf(t, db, student); got != 0 {
		t.Fatalf("total = %d, want 0", got)
	}
}

func TestDeleteMissingSubmission(t *testing.T) {
	db := testDB(t)
	if err := Delete(db, uuid.New()); !errors.Is(err, ErrSubmissionNotFound) {
		t.Fatalf("expected ErrSubmissionNotFound, got %v", err)
	}
}

func TestDeriveActivityID(t *testing.T) {
	id := uuid.MustParse("11111111-2222-3333-4444-555555555555")

	cases := []struct {
		category string
		title    string
		want     string
	}{
		{constants.CategoryClassAssignments, "Week 1", "graded-submission-" + id.String()},
		{constants.CategoryClassExercises, "Drill", "graded-exercise-" + id.String()},
		{constants.CategoryWeeklyProjects, "Project", "graded-project-" + id.String()},
		{constants.Category100DaysOfCode, "100 Days of Code - 2026-08-31", "100-days-of-code-2026-08-31"},
		{"Something Else", "Misc", "graded-submission-" + id.String()},
	}
	for _, tc := range cases {
		if got := DeriveActivityID(tc.category, id, tc.title); got != tc.want {
			t.Errorf("DeriveActivityID(%q) = %q, want %q", tc.category, got, tc.want)
		}
	}
}
