package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"codetrain_backend/internals/features/academics/assignments/controller"
	authMiddleware "codetrain_backend/internals/middlewares/auth"
)

// AssignmentStaffRoutes: teacher/admin manage assignments.
func AssignmentStaffRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAssignmentController(db)

	assignments := r.Group("/assignments",
		authMiddleware.OnlyStaff("Only teachers or admins may manage assignments"))
	assignments.Post("/", ctrl.CreateAssignment)
	assignments.Patch("/:id", ctrl.UpdateAssignment)
	assignments.Delete("/:id", ctrl.DeleteAssignment)
}

// AssignmentUserRoutes: students browse their cohort's assignments.
func AssignmentUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAssignmentController(db)
	r.Get("/assignments", ctrl.GetAssignments)
	r.Get("/assignments/:id", ctrl.GetAssignmentByID)
}
