package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"codetrain_backend/internals/features/roadmap/dto"
	"codetrain_backend/internals/features/roadmap/model"
	helper "codetrain_backend/internals/helpers"
)

type MaterialController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewMaterialController(db *gorm.DB) *MaterialController {
	return &MaterialController{DB: db, Validate: validator.New()}
}

// POST /api/s/materials
func (ctrl *MaterialController) CreateMaterial(c *fiber.Ctx) error {
	var req dto.CreateMaterialRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var weekCount int64
	ctrl.DB.Model(&model.RoadmapWeekModel{}).
		Where("roadmap_week_id = ? AND roadmap_week_subject_id = ?", req.WeekID, req.SubjectID).
		Count(&weekCount)
	if weekCount == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Week not found under that subject")
	}

	material := req.ToModel()
	if err := ctrl.DB.Create(material).Error; err != nil {
		log.Printf("[ERROR] Create material: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create material")
	}
	return helper.JsonCreated(c, "Material created", dto.ToMaterialResponse(material))
}

// PATCH /api/s/materials/:id
func (ctrl *MaterialController) UpdateMaterial(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid material ID format")
	}

	var req dto.UpdateMaterialRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var material model.MaterialModel
	if err := ctrl.DB.Where("material_id = ?", id).First(&material).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Material not found")
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["material_title"] = *req.Title
	}
	if req.URL != nil {
		updates["material_url"] = *req.URL
	}
	if req.Kind != nil {
		updates["material_kind"] = *req.Kind
	}
	if len(updates) == 0 {
		return helper.JsonOK(c, "Nothing to update", dto.ToMaterialResponse(&material))
	}

	if err := ctrl.DB.Model(&material).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] Update material %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update material")
	}
	return helper.JsonUpdated(c, "Material updated", dto.ToMaterialResponse(&material))
}

// DELETE /api/s/materials/:id
func (ctrl *MaterialController) DeleteMaterial(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid material ID format")
	}

	res := ctrl.DB.Where("material_id = ?", id).Delete(&model.MaterialModel{})
	if res.Error != nil {
		log.Printf("[ERROR] Delete material %s: %v", id, res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete material")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Material not found")
	}
	return helper.JsonDeleted(c, "Material deleted", nil)
}

// POST /api/u/materials/:id/views: append a view log row
func (ctrl *MaterialController) RecordView(c *fiber.Ctx) error {
	materialID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid material ID format")
	}

	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var materialCount int64
	ctrl.DB.Model(&model.MaterialModel{}).
		Where("material_id = ?", materialID).Count(&materialCount)
	if materialCount == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Material not found")
	}

	view := model.MaterialViewModel{
		MaterialViewMaterialID: materialID,
		MaterialViewStudentID:  studentID,
	}
	if err := ctrl.DB.Create(&view).Error; err != nil {
		log.Printf("[ERROR] Record material view: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record view")
	}
	return helper.JsonCreated(c, "View recorded", dto.ToMaterialViewResponse(&view))
}

// PATCH /api/u/materials/views/:id: the viewer updates their own row only
func (ctrl *MaterialController) UpdateView(c *fiber.Ctx) error {
	viewID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid view ID format")
	}

	var req dto.UpdateMaterialViewRequest
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

	var view model.MaterialViewModel
	if err := ctrl.DB.Where("material_view_id = ? AND material_view_student_id = ?", viewID, studentID).
		First(&view).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "View not found")
	}

	updates := map[string]interface{}{}
	if req.DurationSeconds != nil {
		updates["material_view_duration_seconds"] = *req.DurationSeconds
	}
	if req.Completed != nil {
		updates["material_view_completed"] = *req.Completed
	}
	if len(updates) == 0 {
		return helper.JsonOK(c, "Nothing to update", dto.ToMaterialViewResponse(&view))
	}

	if err := ctrl.DB.Model(&view).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] Update material view %s: %v", viewID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update view")
	}
	return helper.JsonUpdated(c, "View updated", dto.ToMaterialViewResponse(&view))
}
