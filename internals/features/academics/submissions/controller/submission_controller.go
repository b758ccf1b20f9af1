package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"codetrain_backend/internals/features/academics/submissions/dto"
	"codetrain_backend/internals/features/academics/submissions/model"
	"codetrain_backend/internals/features/academics/submissions/service"
	helper "codetrain_backend/internals/helpers"
)

type SubmissionController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSubmissionController(db *gorm.DB) *SubmissionController {
	return &SubmissionController{DB: db, Validate: validator.New()}
}

// POST /api/u/submissions
func (ctrl *SubmissionController) CreateSubmission(c *fiber.Ctx) error {
	var req dto.CreateSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	sub := req.ToModel(studentID)
	if err := service.Create(ctrl.DB, sub); err != nil {
		if errors.Is(err, service.ErrDuplicateSubmission) {
			return helper.JsonError(c, fiber.StatusConflict, "You have already submitted this activity")
		}
		log.Printf("[ERROR] Create submission: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create submission")
	}
	return helper.JsonCreated(c, "Submission received", dto.ToSubmissionResponse(sub))
}

// GET /api/u/submissions/me  (+ pagination, ?category=)
func (ctrl *SubmissionController) GetMySubmissions(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	return ctrl.listSubmissions(c, studentID)
}

// GET /api/s/submissions/students/:id
func (ctrl *SubmissionController) GetStudentSubmissions(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student ID format")
	}
	return ctrl.listSubmissions(c, studentID)
}

func (ctrl *SubmissionController) listSubmissions(c *fiber.Ctx, studentID uuid.UUID) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.SubmissionModel{}).
		Where("submission_student_id = ?", studentID)
	if category := c.Query("category"); category != "" {
		q = q.Where("submission_point_category = ?", category)
	}
	if graded := c.Query("graded"); graded == "true" {
		q = q.Where("submission_grade IS NOT NULL")
	} else if graded == "false" {
		q = q.Where("submission_grade IS NULL")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] Count submissions: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count submissions")
	}

	var subs []model.SubmissionModel
	if err := q.Order("submission_submitted_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&subs).Error; err != nil {
		log.Printf("[ERROR] List submissions: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch submissions")
	}

	return helper.JsonList(c, "", dto.ToSubmissionResponseList(subs),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/s/submissions?gen=&category=&graded= : grading queue
func (ctrl *SubmissionController) GetSubmissionQueue(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.SubmissionModel{})
	if gen := c.Query("gen"); gen != "" {
		q = q.Joins("JOIN users ON users.user_id = submissions.submission_student_id").
			Where("users.user_gen = ?", gen)
	}
	if category := c.Query("category"); category != "" {
		q = q.Where("submission_point_category = ?", category)
	}
	// default to the ungraded backlog, the common grading view
	if graded := c.Query("graded"); graded == "true" {
		q = q.Where("submission_grade IS NOT NULL")
	} else {
		q = q.Where("submission_grade IS NULL")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] Count submission queue: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count submissions")
	}

	var subs []model.SubmissionModel
	if err := q.Order("submission_submitted_at ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&subs).Error; err != nil {
		log.Printf("[ERROR] List submission queue: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch submissions")
	}

	return helper.JsonList(c, "", dto.ToSubmissionResponseList(subs),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// PATCH /api/s/submissions/:id/grade
func (ctrl *SubmissionController) GradeSubmission(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid submission ID format")
	}

	var req dto.GradeSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	gradedBy, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	sub, err := service.Grade(ctrl.DB, id, req.Grade, req.Feedback, req.Points, gradedBy)
	if err != nil {
		if errors.Is(err, service.ErrSubmissionNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Submission not found")
		}
		log.Printf("[ERROR] Grade submission %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to grade submission")
	}
	return helper.JsonUpdated(c, "Submission graded", dto.ToSubmissionResponse(sub))
}

// DELETE /api/s/submissions/:id (revokes awarded points when graded)
func (ctrl *SubmissionController) DeleteSubmission(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid submission ID format")
	}

	if err := service.Delete(ctrl.DB, id); err != nil {
		if errors.Is(err, service.ErrSubmissionNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Submission not found")
		}
		log.Printf("[ERROR] Delete submission %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete submission")
	}
	return helper.JsonDeleted(c, "Submission deleted", nil)
}
