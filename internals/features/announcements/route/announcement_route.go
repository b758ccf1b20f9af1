package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"codetrain_backend/internals/features/announcements/controller"
	authMiddleware "codetrain_backend/internals/middlewares/auth"
)

// AnnouncementUserRoutes: students read their gen's feed plus global posts.
func AnnouncementUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAnnouncementController(db)
	r.Get("/announcements", ctrl.GetAnnouncements)
}

// AnnouncementStaffRoutes: publish and manage.
func AnnouncementStaffRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAnnouncementController(db)

	announcements := r.Group("/announcements",
		authMiddleware.OnlyStaff("Only teachers or admins may manage announcements"))
	announcements.Post("/", ctrl.CreateAnnouncement)
	announcements.Patch("/:id", ctrl.UpdateAnnouncement)
	announcements.Delete("/:id", ctrl.DeleteAnnouncement)
}
