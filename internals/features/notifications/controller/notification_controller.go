package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"codetrain_backend/internals/features/notifications/dto"
	"codetrain_backend/internals/features/notifications/model"
	"codetrain_backend/internals/features/notifications/service"
	userModel "codetrain_backend/internals/features/users/user/model"
	helper "codetrain_backend/internals/helpers"
)

type NotificationController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db, Validate: validator.New()}
}

// GET /api/u/notifications  (+ pagination, ?unread=true)
func (ctrl *NotificationController) GetMyNotifications(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.NotificationModel{}).
		Where("notification_user_id = ?", userID)
	if c.Query("unread") == "true" {
		q = q.Where("notification_read = ?", false)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] Count notifications: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count notifications")
	}

	var notifications []model.NotificationModel
	if err := q.Order("notification_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&notifications).Error; err != nil {
		log.Printf("[ERROR] List notifications: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch notifications")
	}

	return helper.JsonList(c, "", dto.ToNotificationResponseList(notifications),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// PATCH /api/u/notifications/:id/read
func (ctrl *NotificationController) MarkRead(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid notification ID format")
	}

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	res := ctrl.DB.Model(&model.NotificationModel{}).
		Where("notification_id = ? AND notification_user_id = ?", id, userID).
		Update("notification_read", true)
	if res.Error != nil {
		log.Printf("[ERROR] Mark notification read %s: %v", id, res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to mark notification")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Notification not found")
	}
	return helper.JsonUpdated(c, "Notification marked as read", nil)
}

// PATCH /api/u/notifications/read-all
func (ctrl *NotificationController) MarkAllRead(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	if err := ctrl.DB.Model(&model.NotificationModel{}).
		Where("notification_user_id = ? AND notification_read = ?", userID, false).
		Update("notification_read", true).Error; err != nil {
		log.Printf("[ERROR] Mark all notifications read: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to mark notifications")
	}
	return helper.JsonUpdated(c, "All notifications marked as read", nil)
}

// POST /api/s/notifications/broadcast: notify a whole cohort
func (ctrl *NotificationController) Broadcast(c *fiber.Ctx) error {
	var req dto.BroadcastRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var userIDs []uuid.UUID
	if err := ctrl.DB.Model(&userModel.UserModel{}).
		Where("user_gen = ? AND user_is_active = ?", req.Gen, true).
		Pluck("user_id", &userIDs).Error; err != nil {
		log.Printf("[ERROR] Broadcast gen=%s: %v", req.Gen, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to find recipients")
	}
	if len(userIDs) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "No active users in that cohort")
	}

	service.NotifyMany(ctrl.DB, userIDs, req.Title, req.Description, req.Href)
	return helper.JsonCreated(c, "Broadcast sent", fiber.Map{"recipients": len(userIDs)})
}
