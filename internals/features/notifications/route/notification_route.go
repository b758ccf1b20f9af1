package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"codetrain_backend/internals/features/notifications/controller"
	authMiddleware "codetrain_backend/internals/middlewares/auth"
)

// NotificationUserRoutes: inbox and read marks.
func NotificationUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewNotificationController(db)
	r.Get("/notifications", ctrl.GetMyNotifications)
	r.Patch("/notifications/read-all", ctrl.MarkAllRead)
	r.Patch("/notifications/:id/read", ctrl.MarkRead)
}

// NotificationStaffRoutes: cohort broadcast.
func NotificationStaffRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewNotificationController(db)
	r.Post("/notifications/broadcast",
		authMiddleware.OnlyStaff("Only teachers or admins may broadcast"),
		ctrl.Broadcast)
}
