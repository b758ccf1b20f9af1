package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"codetrain_backend/internals/constants"
	"codetrain_backend/internals/features/points/model"
	userModel "codetrain_backend/internals/features/users/user/model"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared&_fk=1"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&userModel.UserModel{}, &model.PointEntryModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})
	return db
}

func seedStudent(t *testing.T, db *gorm.DB) uuid.UUID {
	t.Helper()
	u := userModel.UserModel{
		UserID:       uuid.New(),
		UserName:     "Ama Mensah",
		UserEmail:    uuid.NewString() + "@codetrain.africa",
		UserPassword: "x",
		UserRole:     constants.RoleStudent,
		UserGen:      "Gen 30",
		UserIsActive: true,
	}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("seed student: %v", err)
	}
	return u.UserID
}

func totalOf(t *testing.T, db *gorm.DB, id uuid.UUID) int {
	t.Helper()
	var u userModel.UserModel
	if err := db.Where("user_id = ?", id).First(&u).Error; err != nil {
		t.Fatalf("load student: %v", err)
	}
	return u.UserTotalPoints
}

func TestAwardIsIdempotentPerActivity(t *testing.T) {
	db := testDB(t)
	student := seedStudent(t, db)

	total, err := Award(db, student, 1, "Class Assignment", "graded-submission-abc", "Week 1 Homework")
	if err != nil {
		t.Fatalf("first award: %v", err)
	}
	if total != 1 {
		t.Fatalf("first award total=%d, want 1", total)
	}

	if _, err := Award(db, student, 1, "Class Assignment", "graded-submission-abc", "Week 1 Homework"); !errors.Is(err, ErrDuplicateActivity) {
		t.Fatalf("second award err=%v, want ErrDuplicateActivity", err)
	}

	if got := totalOf(t, db, student); got != 1 {
		t.Fatalf("total after duplicate=%d, want 1", got)
	}
	var count int64
	db.Model(&model.PointEntryModel{}).Where("point_entry_student_id = ?", student).Count(&count)
	if count != 1 {
		t.Fatalf("ledger entries=%d, want 1", count)
	}
}

func TestRevokeIsIdempotent(t *testing.T) {
	db := testDB(t)
	student := seedStudent(t, db)

	if _, err := Award(db, student, 5, "Weekly Project", "graded-project-p1", "Portfolio"); err != nil {
		t.Fatalf("award: %v", err)
	}

	if err := Revoke(db, student, "graded-project-p1"); err != nil {
		t.Fatalf("first revoke: %v", err)
	}
	if got := totalOf(t, db, student); got != 0 {
		t.Fatalf("total after revoke=%d, want 0", got)
	}

	// second revoke is a no-op success
	if err := Revoke(db, student, "graded-project-p1"); err != nil {
		t.Fatalf("second revoke: %v", err)
	}
	if got := totalOf(t, db, student); got != 0 {
		t.Fatalf("total after double revoke=%d, want 0", got)
	}
}

func TestAwardRevokeRoundTripConservation(t *testing.T) {
	db := testDB(t)
	student := seedStudent(t, db)

	// pre-existing balance from another activity
	if _, err := Award(db, student, 3, "Class Exercise", "graded-exercise-e1", ""); err != nil {
		t.Fatalf("seed award: %v", err)
	}
	before := totalOf(t, db, student)

	if _, err := Award(db, student, 7, "Weekly Project", "graded-project-p9", ""); err != nil {
		t.Fatalf("award: %v", err)
	}
	// decrement amount comes from the stored entry, not the caller
	if err := Revoke(db, student, "graded-project-p9"); err != nil {
		t.Fatalf("revoke: %v", err)
	}

	if got := totalOf(t, db, student); got != before {
		t.Fatalf("total after round trip=%d, want %d", got, before)
	}
}

func TestAwardUnknownStudent(t *testing.T) {
	db := testDB(t)

	if _, err := Award(db, uuid.New(), 1, "Class Assignment", "graded-submission-x", ""); !errors.Is(err, ErrStudentNotFound) {
		t.Fatalf("err=%v, want ErrStudentNotFound", err)
	}
}

func TestManualAwardsAlwaysStack(t *testing.T) {
	db := testDB(t)
	student := seedStudent(t, db)

	total1, id1, err := ManualAward(db, student, 2, "Demo day shoutout")
	if err != nil {
		t.Fatalf("manual award 1: %v", err)
	}
	total2, id2, err := ManualAward(db, student, 2, "Demo day shoutout")
	if err != nil {
		t.Fatalf("manual award 2: %v", err)
	}

	if id1 == id2 {
		t.Fatalf("manual activity ids must differ, both %q", id1)
	}
	if !strings.HasPrefix(id1, "manual-demo-day-shoutout-") {
		t.Fatalf("unexpected manual activity id %q", id1)
	}
	if total1 != 2 || total2 != 4 {
		t.Fatalf("totals=%d,%d want 2,4", total1, total2)
	}
}
