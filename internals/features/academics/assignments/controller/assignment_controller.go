package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"codetrain_backend/internals/features/academics/assignments/dto"
	"codetrain_backend/internals/features/academics/assignments/model"
	helper "codetrain_backend/internals/helpers"
)

type AssignmentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAssignmentController(db *gorm.DB) *AssignmentController {
	return &AssignmentController{DB: db, Validate: validator.New()}
}

// POST /api/s/assignments
func (ctrl *AssignmentController) CreateAssignment(c *fiber.Ctx) error {
	var req dto.CreateAssignmentRequest
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

	assignment := req.ToModel(createdBy)
	if err := ctrl.DB.Create(assignment).Error; err != nil {
		log.Printf("[ERROR] Create assignment: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create assignment")
	}
	return helper.JsonCreated(c, "Assignment created", dto.ToAssignmentResponse(assignment))
}

// GET /api/u/assignments?gen=&category=  (+ pagination)
func (ctrl *AssignmentController) GetAssignments(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	gen := c.Query("gen")
	if gen == "" {
		gen = helper.GetUserGenFromToken(c)
	}

	q := ctrl.DB.Model(&model.AssignmentModel{})
	if gen != "" {
		q = q.Where("assignment_gen = ?", gen)
	}
	if category := c.Query("category"); category != "" {
		q = q.Where("assignment_point_category = ?", category)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] Count assignments: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count assignments")
	}

	var assignments []model.AssignmentModel
	if err := q.Order("assignment_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&assignments).Error; err != nil {
		log.Printf("[ERROR] List assignments: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch assignments")
	}

	return helper.JsonList(c, "", dto.ToAssignmentResponseList(assignments),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/u/assignments/:id
func (ctrl *AssignmentController) GetAssignmentByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid assignment ID format")
	}

	var assignment model.AssignmentModel
	if err := ctrl.DB.Where("assignment_id = ?", id).First(&assignment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Assignment not found")
	}
	return helper.JsonOK(c, "", dto.ToAssignmentResponse(&assignment))
}

// PATCH /api/s/assignments/:id
func (ctrl *AssignmentController) UpdateAssignment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid assignment ID format")
	}

	var req dto.UpdateAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var assignment model.AssignmentModel
	if err := ctrl.DB.Where("assignment_id = ?", id).First(&assignment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Assignment not found")
	}

	updates := map[string]interface{}{}
	if req.AssignmentTitle != nil {
		updates["assignment_title"] = *req.AssignmentTitle
	}
	if req.AssignmentDescription != nil {
		updates["assignment_description"] = *req.AssignmentDescription
	}
	if req.AssignmentPoints != nil {
		updates["assignment_points"] = *req.AssignmentPoints
	}
	if req.AssignmentDueAt != nil {
		updates["assignment_due_at"] = *req.AssignmentDueAt
	}
	if len(updates) == 0 {
		return helper.JsonOK(c, "Nothing to update", dto.ToAssignmentResponse(&assignment))
	}

	if err := ctrl.DB.Model(&assignment).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] Update assignment %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update assignment")
	}
	return helper.JsonUpdated(c, "Assignment updated", dto.ToAssignmentResponse(&assignment))
}

// DELETE /api/s/assignments/:id  (soft delete)
func (ctrl *AssignmentController) DeleteAssignment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid assignment ID format")
	}

	res := ctrl.DB.Where("assignment_id = ?", id).Delete(&model.AssignmentModel{})
	if res.Error != nil {
		log.Printf("[ERROR] Delete assignment %s: %v", id, res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete assignment")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Assignment not found")
	}
	return helper.JsonDeleted(c, "Assignment deleted", nil)
}
