package controller

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"codetrain_backend/internals/features/attendance/dto"
	"codetrain_backend/internals/features/attendance/model"
	helper "codetrain_backend/internals/helpers"
)

type AttendanceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db, Validate: validator.New()}
}

// POST /api/s/attendance/sessions
func (ctrl *AttendanceController) CreateSession(c *fiber.Ctx) error {
	var req dto.CreateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	createdBy, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	session := req.ToModel(createdBy)
	if err := ctrl.DB.Create(session).Error; err != nil {
		log.Printf("[ERROR] Create attendance session: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create session")
	}
	return helper.JsonCreated(c, "Session created", dto.ToSessionResponse(session))
}

// GET /api/s/attendance/sessions?gen=&from=&to=  (+ pagination)
func (ctrl *AttendanceController) GetSessions(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.AttendanceSessionModel{})
	if gen := c.Query("gen"); gen != "" {
		q = q.Where("attendance_session_gen = ?", gen)
	}
	if from := c.Query("from"); from != "" {
		if t, err := time.Parse("2006-01-02", from); err == nil {
			q = q.Where("attendance_session_date >= ?", t)
		}
	}
	if to := c.Query("to"); to != "" {
		if t, err := time.Parse("2006-01-02", to); err == nil {
			q = q.Where("attendance_session_date < ?", t.AddDate(0, 0, 1))
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] Count attendance sessions: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count sessions")
	}

	var sessions []model.AttendanceSessionModel
	if err := q.Order("attendance_session_date DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&sessions).Error; err != nil {
		log.Printf("[ERROR] List attendance sessions: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch sessions")
	}

	return helper.JsonList(c, "", dto.ToSessionResponseList(sessions),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// PUT /api/s/attendance/sessions/:id/records: upsert the session's register
func (ctrl *AttendanceController) MarkRecords(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid session ID format")
	}

	var req dto.MarkRecordsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var session model.AttendanceSessionModel
	if err := ctrl.DB.Where("attendance_session_id = ?", sessionID).First(&session).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Session not found")
	}

	records := make([]model.AttendanceRecordModel, 0, len(req.Records))
	for _, r := range req.Records {
		records = append(records, model.AttendanceRecordModel{
			AttendanceRecordID:        uuid.New(),
			AttendanceRecordSessionID: sessionID,
			AttendanceRecordStudentID: r.StudentID,
			AttendanceRecordStatus:    r.Status,
			AttendanceRecordNote:      r.Note,
		})
	}

	err = ctrl.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "attendance_record_session_id"},
			{Name: "attendance_record_student_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"attendance_record_status",
			"attendance_record_note",
		}),
	}).Create(&records).Error
	if err != nil {
		log.Printf("[ERROR] Mark attendance records session=%s: %v", sessionID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save records")
	}
	return helper.JsonUpdated(c, "Attendance saved", dto.ToRecordResponseList(records))
}

// GET /api/s/attendance/sessions/:id/records
func (ctrl *AttendanceController) GetSessionRecords(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid session ID format")
	}

	var records []model.AttendanceRecordModel
	if err := ctrl.DB.Where("attendance_record_session_id = ?", sessionID).
		Find(&records).Error; err != nil {
		log.Printf("[ERROR] List attendance records session=%s: %v", sessionID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch records")
	}
	return helper.JsonOK(c, "", dto.ToRecordResponseList(records))
}

// GET /api/u/attendance/me  (+ pagination)
func (ctrl *AttendanceController) GetMyAttendance(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	paging := helper.ResolvePaging(c, 20, 100)

	base := ctrl.DB.Model(&model.AttendanceRecordModel{}).
		Joins("JOIN attendance_sessions ON attendance_sessions.attendance_session_id = attendance_records.attendance_record_session_id").
		Where("attendance_records.attendance_record_student_id = ?", studentID).
		Where("attendance_sessions.attendance_session_deleted_at IS NULL")

	var total int64
	if err := base.Count(&total).Error; err != nil {
		log.Printf("[ERROR] Count attendance history: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count attendance")
	}

	var rows []dto.HistoryRow
	if err := base.
		Select(`attendance_sessions.attendance_session_id AS session_id,
			attendance_sessions.attendance_session_date AS date,
			attendance_sessions.attendance_session_topic AS topic,
			attendance_records.attendance_record_status AS status,
			attendance_records.attendance_record_note AS note`).
		Order("attendance_sessions.attendance_session_date DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Scan(&rows).Error; err != nil {
		log.Printf("[ERROR] List attendance history: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch attendance")
	}

	return helper.JsonList(c, "", rows,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
