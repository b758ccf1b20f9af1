package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"codetrain_backend/internals/features/academics/submissions/controller"
	authMiddleware "codetrain_backend/internals/middlewares/auth"
)

// SubmissionUserRoutes: students submit and review their own work.
func SubmissionUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSubmissionController(db)
	r.Post("/submissions", ctrl.CreateSubmission)
	r.Get("/submissions/me", ctrl.GetMySubmissions)
}

// SubmissionStaffRoutes: grading queue and per-student review.
func SubmissionStaffRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSubmissionController(db)

	submissions := r.Group("/submissions",
		authMiddleware.OnlyStaff("Only teachers or admins may manage submissions"))
	submissions.Get("/", ctrl.GetSubmissionQueue)
	submissions.Get("/students/:id", ctrl.GetStudentSubmissions)
	submissions.Patch("/:id/grade", ctrl.GradeSubmission)
	submissions.Delete("/:id", ctrl.DeleteSubmission)
}
