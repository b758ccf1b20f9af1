package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"codetrain_backend/internals/constants"
	"codetrain_backend/internals/features/points/dto"
	"codetrain_backend/internals/features/points/model"
	"codetrain_backend/internals/features/points/service"
	userModel "codetrain_backend/internals/features/users/user/model"
	helper "codetrain_backend/internals/helpers"
	"codetrain_backend/internals/helpers/cache"
)

const leaderboardTTL = 60 * time.Second

type PointController struct {
	DB               *gorm.DB
	Validate         *validator.Validate
	LeaderboardCache *cache.TTLCache[[]dto.LeaderboardRow]
}

func NewPointController(db *gorm.DB) *PointController {
	return &PointController{
		DB:               db,
		Validate:         validator.New(),
		LeaderboardCache: cache.NewTTLCache[[]dto.LeaderboardRow](leaderboardTTL, time.Now),
	}
}

// POST /api/s/points/award  (teacher/admin)
func (ctrl *PointController) AwardPoints(c *fiber.Ctx) error {
	var req dto.AwardPointsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	total, err := service.Award(ctrl.DB, req.StudentID, req.Points, req.Reason, req.ActivityID, req.AssignmentTitle)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateActivity) {
			return helper.JsonError(c, fiber.StatusConflict, "Points already awarded for this activity")
		}
		if errors.Is(err, service.ErrStudentNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		log.Printf("[ERROR] Award points: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to award points")
	}

	ctrl.LeaderboardCache.Delete("leaderboard:" + ctrl.genOf(req.StudentID))
	return helper.JsonOK(c, "Points awarded", dto.AwardPointsResponse{
		TotalPoints: total,
		ActivityID:  req.ActivityID,
	})
}

// POST /api/s/points/manual  (admin manual award, always stacks)
func (ctrl *PointController) ManualAwardPoints(c *fiber.Ctx) error {
	var req dto.ManualAwardRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	total, activityID, err := service.ManualAward(ctrl.DB, req.StudentID, req.Points, req.Reason)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		log.Printf("[ERROR] Manual award: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to award points")
	}

	ctrl.LeaderboardCache.Delete("leaderboard:" + ctrl.genOf(req.StudentID))
	return helper.JsonOK(c, "Points awarded", dto.AwardPointsResponse{
		TotalPoints: total,
		ActivityID:  activityID,
	})
}

// POST /api/s/points/revoke  (teacher/admin, idempotent)
func (ctrl *PointController) RevokePoints(c *fiber.Ctx) error {
	var req dto.RevokePointsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	if err := service.Revoke(ctrl.DB, req.StudentID, req.ActivityID); err != nil {
		log.Printf("[ERROR] Revoke points: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to revoke points")
	}

	ctrl.LeaderboardCache.Delete("leaderboard:" + ctrl.genOf(req.StudentID))
	return helper.JsonOK(c, "Points revoked", nil)
}

// GET /api/s/points/students/:id  (staff) and /api/u/points/me (student)
func (ctrl *PointController) GetStudentLedger(c *fiber.Ctx) error {
	var studentID uuid.UUID
	var err error
	if raw := c.Params("id"); raw != "" {
		studentID, err = uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student ID format")
		}
	} else {
		studentID, err = helper.GetUserIDFromToken(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
		}
	}

	var student userModel.UserModel
	if err := ctrl.DB.Select("user_total_points").Where("user_id = ?", studentID).
		First(&student).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}

	var entries []model.PointEntryModel
	if err := ctrl.DB.Where("point_entry_student_id = ?", studentID).
		Order("point_entry_awarded_at DESC").
		Find(&entries).Error; err != nil {
		log.Printf("[ERROR] Fetch ledger for %s: %v", studentID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch ledger")
	}

	return helper.JsonOK(c, "", dto.StudentLedgerResponse{
		StudentID:   studentID,
		TotalPoints: student.UserTotalPoints,
		Entries:     dto.ToPointEntryResponseList(entries),
	})
}

// GET /api/u/points/leaderboard?gen=Gen%2030
func (ctrl *PointController) GetLeaderboard(c *fiber.Ctx) error {
	gen := c.Query("gen")
	if gen == "" {
		gen = helper.GetUserGenFromToken(c)
	}
	if gen == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Missing gen")
	}

	cacheKey := "leaderboard:" + gen
	if rows, ok := ctrl.LeaderboardCache.Get(cacheKey); ok {
		return helper.JsonOK(c, "", rows)
	}

	var rows []dto.LeaderboardRow
	if err := ctrl.DB.Model(&userModel.UserModel{}).
		Select("user_id, user_name, user_gen, user_total_points AS total_points").
		Where("user_gen = ? AND user_role = ?", gen, constants.RoleStudent).
		Order("user_total_points DESC").
		Limit(100).
		Scan(&rows).Error; err != nil {
		log.Printf("[ERROR] Leaderboard for %s: %v", gen, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch leaderboard")
	}

	ctrl.LeaderboardCache.Set(cacheKey, rows)
	return helper.JsonOK(c, "", rows)
}

// genOf resolves a student's cohort for cache invalidation; lookup failures
// just mean a stale leaderboard for one TTL window.
func (ctrl *PointController) genOf(studentID uuid.UUID) string {
	var student userModel.UserModel
	if err := ctrl.DB.Select("user_gen").Where("user_id = ?", studentID).First(&student).Error; err != nil {
		return ""
	}
	return student.UserGen
}
