package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"codetrain_backend/internals/constants"
	"codetrain_backend/internals/features/points/controller"
	authMiddleware "codetrain_backend/internals/middlewares/auth"
)

// PointStaffRoutes: award/revoke are teacher/admin only; manual awards are
// admin only.
func PointStaffRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPointController(db)

	points := r.Group("/points",
		authMiddleware.OnlyStaff("Only teachers or admins may manage points"))
	points.Post("/award", ctrl.AwardPoints)
	points.Post("/revoke", ctrl.RevokePoints)
	points.Post("/manual",
		authMiddleware.OnlyRoles("Only admins may issue manual awards", constants.RoleAdmin),
		ctrl.ManualAwardPoints)
	points.Get("/students/:id", ctrl.GetStudentLedger)
}

// PointUserRoutes: students read their own ledger and the cohort leaderboard.
func PointUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPointController(db)
	r.Get("/points/me", ctrl.GetStudentLedger)
	r.Get("/points/leaderboard", ctrl.GetLeaderboard)
}
