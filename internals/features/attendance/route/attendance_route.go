package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"codetrain_backend/internals/features/attendance/controller"
	authMiddleware "codetrain_backend/internals/middlewares/auth"
)

// AttendanceUserRoutes: students read their own history.
func AttendanceUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAttendanceController(db)
	r.Get("/attendance/me", ctrl.GetMyAttendance)
}

// AttendanceStaffRoutes: sessions and register management.
func AttendanceStaffRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAttendanceController(db)

	attendance := r.Group("/attendance",
		authMiddleware.OnlyStaff("Only teachers or admins may manage attendance"))
	attendance.Post("/sessions", ctrl.CreateSession)
	attendance.Get("/sessions", ctrl.GetSessions)
	attendance.Get("/sessions/:id/records", ctrl.GetSessionRecords)
	attendance.Put("/sessions/:id/records", ctrl.MarkRecords)
}
