package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"codetrain_backend/internals/constants"
	announcementRoute "codetrain_backend/internals/features/announcements/route"
	assignmentRoute "codetrain_backend/internals/features/academics/assignments/route"
	submissionRoute "codetrain_backend/internals/features/academics/submissions/route"
	attendanceRoute "codetrain_backend/internals/features/attendance/route"
	feeRoute "codetrain_backend/internals/features/fees/route"
	notificationRoute "codetrain_backend/internals/features/notifications/route"
	pointRoute "codetrain_backend/internals/features/points/route"
	roadmapRoute "codetrain_backend/internals/features/roadmap/route"
	authRoute "codetrain_backend/internals/features/users/auth/route"
	userRoute "codetrain_backend/internals/features/users/user/route"
	authMiddleware "codetrain_backend/internals/middlewares/auth"
)

// SetupRoutes mounts every feature under three groups:
//
//	/api/u  any signed-in user
//	/api/s  staff (teacher/admin), each feature gates its own group
//	/api/a  admin only
//
// Auth endpoints and the payment webhook live outside the groups.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	log.Println("[INFO] Setting up webhook routes...")
	feeRoute.FeeWebhookRoutes(app, db)

	log.Println("[INFO] Setting up USER group...")
	user := app.Group("/api/u", authMiddleware.AuthMiddleware(db))

	log.Println("[INFO] Setting up STAFF group...")
	staff := app.Group("/api/s", authMiddleware.AuthMiddleware(db))

	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles("Only admins may access this area", constants.RoleAdmin))

	log.Println("[INFO] Mounting user routes...")
	userRoute.UserUserRoutes(user, db)
	userRoute.UserAdminRoutes(admin, db)

	log.Println("[INFO] Mounting point routes...")
	pointRoute.PointUserRoutes(user, db)
	pointRoute.PointStaffRoutes(staff, db)

	log.Println("[INFO] Mounting assignment routes...")
	assignmentRoute.AssignmentUserRoutes(user, db)
	assignmentRoute.AssignmentStaffRoutes(staff, db)

	log.Println("[INFO] Mounting submission routes...")
	submissionRoute.SubmissionUserRoutes(user, db)
	submissionRoute.SubmissionStaffRoutes(staff, db)

	log.Println("[INFO] Mounting roadmap routes...")
	roadmapRoute.RoadmapUserRoutes(user, db)
	roadmapRoute.RoadmapStaffRoutes(staff, db)

	log.Println("[INFO] Mounting attendance routes...")
	attendanceRoute.AttendanceUserRoutes(user, db)
	attendanceRoute.AttendanceStaffRoutes(staff, db)

	log.Println("[INFO] Mounting fee routes...")
	feeRoute.FeeUserRoutes(user, db)
	feeRoute.FeeAdminRoutes(admin, db)

	log.Println("[INFO] Mounting notification routes...")
	notificationRoute.NotificationUserRoutes(user, db)
	notificationRoute.NotificationStaffRoutes(staff, db)

	log.Println("[INFO] Mounting announcement routes...")
	announcementRoute.AnnouncementUserRoutes(user, db)
	announcementRoute.AnnouncementStaffRoutes(staff, db)
}
