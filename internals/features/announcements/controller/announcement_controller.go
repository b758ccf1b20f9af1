package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"codetrain_backend/internals/features/announcements/dto"
	"codetrain_backend/internals/features/announcements/model"
	notifyService "codetrain_backend/internals/features/notifications/service"
	userModel "codetrain_backend/internals/features/users/user/model"
	helper "codetrain_backend/internals/helpers"
)

type AnnouncementController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAnnouncementController(db *gorm.DB) *AnnouncementController {
	return &AnnouncementController{DB: db, Validate: validator.New()}
}

// POST /api/s/announcements
func (ctrl *AnnouncementController) CreateAnnouncement(c *fiber.Ctx) error {
	var req dto.CreateAnnouncementRequest
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

	announcement := req.ToModel(createdBy)
	if err := ctrl.DB.Create(announcement).Error; err != nil {
		log.Printf("[ERROR] Create announcement: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create announcement")
	}

	// fan out to the audience, best effort
	recipients := ctrl.DB.Model(&userModel.UserModel{}).
		Where("user_is_active = ?", true)
	if req.Gen != nil {
		recipients = recipients.Where("user_gen = ?", *req.Gen)
	}
	var userIDs []uuid.UUID
	if err := recipients.Pluck("user_id", &userIDs).Error; err != nil {
		log.Printf("[WARN] Announcement fan-out query failed: %v", err)
	} else {
		notifyService.NotifyMany(ctrl.DB, userIDs, announcement.AnnouncementTitle,
			"New announcement", "/announcements/"+announcement.AnnouncementID.String())
	}

	return helper.JsonCreated(c, "Announcement created", dto.ToAnnouncementResponse(announcement))
}

// GET /api/u/announcements  (+ pagination): own gen plus global
func (ctrl *AnnouncementController) GetAnnouncements(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.AnnouncementModel{})
	if gen := helper.GetUserGenFromToken(c); gen != "" {
		q = q.Where("announcement_gen = ? OR announcement_gen IS NULL", gen)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] Count announcements: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count announcements")
	}

	var announcements []model.AnnouncementModel
	if err := q.Order("announcement_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&announcements).Error; err != nil {
		log.Printf("[ERROR] List announcements: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch announcements")
	}

	return helper.JsonList(c, "", dto.ToAnnouncementResponseList(announcements),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// PATCH /api/s/announcements/:id
func (ctrl *AnnouncementController) UpdateAnnouncement(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid announcement ID format")
	}

	var req dto.UpdateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var announcement model.AnnouncementModel
	if err := ctrl.DB.Where("announcement_id = ?", id).First(&announcement).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Announcement not found")
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["announcement_title"] = *req.Title
	}
	if req.Body != nil {
		updates["announcement_body"] = *req.Body
	}
	if len(updates) == 0 {
		return helper.JsonOK(c, "Nothing to update", dto.ToAnnouncementResponse(&announcement))
	}

	if err := ctrl.DB.Model(&announcement).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] Update announcement %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update announcement")
	}
	return helper.JsonUpdated(c, "Announcement updated", dto.ToAnnouncementResponse(&announcement))
}

// DELETE /api/s/announcements/:id
func (ctrl *AnnouncementController) DeleteAnnouncement(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid announcement ID format")
	}

	res := ctrl.DB.Where("announcement_id = ?", id).Delete(&model.AnnouncementModel{})
	if res.Error != nil {
		log.Printf("[ERROR] Delete announcement %s: %v", id, res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete announcement")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Announcement not found")
	}
	return helper.JsonDeleted(c, "Announcement deleted", nil)
}
