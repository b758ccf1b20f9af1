package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"codetrain_backend/internals/features/roadmap/controller"
	authMiddleware "codetrain_backend/internals/middlewares/auth"
)

// RoadmapUserRoutes: students see their unlocked roadmap and log material
// views.
func RoadmapUserRoutes(r fiber.Router, db *gorm.DB) {
	roadmapCtrl := controller.NewRoadmapController(db)
	materialCtrl := controller.NewMaterialController(db)

	r.Get("/roadmap/me", roadmapCtrl.GetMyRoadmap)
	r.Post("/materials/:id/views", materialCtrl.RecordView)
	r.Patch("/materials/views/:id", materialCtrl.UpdateView)
}

// RoadmapStaffRoutes: curriculum management and per-cohort completion.
func RoadmapStaffRoutes(r fiber.Router, db *gorm.DB) {
	roadmapCtrl := controller.NewRoadmapController(db)
	materialCtrl := controller.NewMaterialController(db)

	roadmap := r.Group("/roadmap",
		authMiddleware.OnlyStaff("Only teachers or admins may manage the roadmap"))
	roadmap.Get("/", roadmapCtrl.GetRoadmapForGen)
	roadmap.Post("/subjects", roadmapCtrl.CreateSubject)
	roadmap.Patch("/subjects/:id", roadmapCtrl.UpdateSubject)
	roadmap.Delete("/subjects/:id", roadmapCtrl.DeleteSubject)
	roadmap.Post("/weeks", roadmapCtrl.CreateWeek)
	roadmap.Patch("/weeks/:id", roadmapCtrl.UpdateWeek)
	roadmap.Delete("/weeks/:id", roadmapCtrl.DeleteWeek)
	roadmap.Patch("/weeks/:id/completion", roadmapCtrl.MarkWeekCompletion)

	materials := r.Group("/materials",
		authMiddleware.OnlyStaff("Only teachers or admins may manage materials"))
	materials.Post("/", materialCtrl.CreateMaterial)
	materials.Patch("/:id", materialCtrl.UpdateMaterial)
	materials.Delete("/:id", materialCtrl.DeleteMaterial)
}
