package controller

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"codetrain_backend/internals/constants"
	"codetrain_backend/internals/features/points/dto"
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
	if err := db.AutoMigrate(&userModel.UserModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		db.Exec("DELETE FROM users")
	})
	return db
}

func seedUser(t *testing.T, db *gorm.DB, role constants.Role, gen string, points int) uuid.UUID {
	t.Helper()
	u := userModel.UserModel{
		UserName:        "Kojo Asante",
		UserEmail:       uuid.NewString() + "@codetrain.africa",
		UserPassword:    "x",
		UserRole:        role,
		UserGen:         gen,
		UserTotalPoints: points,
	}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u.UserID
}

func TestLeaderboardRanksStudentsOnly(t *testing.T) {
	db := testDB(t)
	student := seedUser(t, db, constants.RoleStudent, "Gen 21", 30)
	seedUser(t, db, constants.RoleTeacher, "Gen 21", 99)
	seedUser(t, db, constants.RoleStudent, "Gen 22", 50)

	ctrl := NewPointController(db)
	app := fiber.New()
	app.Get("/leaderboard", ctrl.GetLeaderboard)

	resp, err := app.Test(httptest.NewRequest("GET", "/leaderboard?gen=Gen%2021", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var envelope struct {
		Success bool                 `json:"success"`
		Data    []dto.LeaderboardRow `json:"data"`
	}
	if err := sonic.Unmarshal(body, &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !envelope.Success {
		t.Fatalf("expected success envelope, got %s", body)
	}

	if len(envelope.Data) != 1 {
		t.Fatalf("expected 1 row (the gen's student), got %d", len(envelope.Data))
	}
	row := envelope.Data[0]
	if row.UserID != student {
		t.Fatalf("ranked user = %s, want student %s", row.UserID, student)
	}
	if row.TotalPoints != 30 {
		t.Fatalf("total = %d, want 30", row.TotalPoints)
	}
}
