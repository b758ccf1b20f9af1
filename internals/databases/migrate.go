package database

import (
	"log"

	announcementModel "codetrain_backend/internals/features/announcements/model"
	assignmentModel "codetrain_backend/internals/features/academics/assignments/model"
	submissionModel "codetrain_backend/internals/features/academics/submissions/model"
	attendanceModel "codetrain_backend/internals/features/attendance/model"
	feeModel "codetrain_backend/internals/features/fees/model"
	notificationModel "codetrain_backend/internals/features/notifications/model"
	pointModel "codetrain_backend/internals/features/points/model"
	roadmapModel "codetrain_backend/internals/features/roadmap/model"
	authModel "codetrain_backend/internals/features/users/auth/model"
	userModel "codetrain_backend/internals/features/users/user/model"
)

// MigrateAll runs AutoMigrate over every model. Production schemas are
// managed with SQL migrations; this is the dev/staging convenience behind
// DB_AUTO_MIGRATE=true.
func MigrateAll() {
	log.Println("[INFO] Running AutoMigrate...")
	err := DB.AutoMigrate(
		&userModel.UserModel{},
		&authModel.TokenBlacklistModel{},
		&pointModel.PointEntryModel{},
		&assignmentModel.AssignmentModel{},
		&submissionModel.SubmissionModel{},
		&roadmapModel.RoadmapSubjectModel{},
		&roadmapModel.RoadmapWeekModel{},
		&roadmapModel.WeekCompletionModel{},
		&roadmapModel.MaterialModel{},
		&roadmapModel.MaterialViewModel{},
		&attendanceModel.AttendanceSessionModel{},
		&attendanceModel.AttendanceRecordModel{},
		&feeModel.FeeScheduleModel{},
		&feeModel.StudentFeeModel{},
		&feeModel.FeePaymentModel{},
		&notificationModel.NotificationModel{},
		&announcementModel.AnnouncementModel{},
	)
	if err != nil {
		log.Fatalf("[ERROR] AutoMigrate failed: %v", err)
	}
	log.Println("[INFO] AutoMigrate done.")
}
