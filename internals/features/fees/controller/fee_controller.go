package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"codetrain_backend/internals/features/fees/dto"
	"codetrain_backend/internals/features/fees/model"
	"codetrain_backend/internals/features/fees/service"
	userModel "codetrain_backend/internals/features/users/user/model"
	helper "codetrain_backend/internals/helpers"
)

type FeeController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewFeeController(db *gorm.DB) *FeeController {
	return &FeeController{DB: db, Validate: validator.New()}
}

// POST /api/a/fees/schedules
func (ctrl *FeeController) CreateSchedule(c *fiber.Ctx) error {
	var req dto.CreateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	schedule := req.ToModel()
	if err := ctrl.DB.Create(schedule).Error; err != nil {
		log.Printf("[ERROR] Create fee schedule: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create fee schedule")
	}
	return helper.JsonCreated(c, "Fee schedule created", schedule)
}

// POST /api/a/fees/assignments: bind one student to a schedule
func (ctrl *FeeController) AssignFee(c *fiber.Ctx) error {
	var req dto.AssignFeeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var scheduleCount int64
	ctrl.DB.Model(&model.FeeScheduleModel{}).
		Where("fee_schedule_id = ?", req.ScheduleID).Count(&scheduleCount)
	if scheduleCount == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Fee schedule not found")
	}
	var studentCount int64
	ctrl.DB.Model(&userModel.UserModel{}).
		Where("user_id = ?", req.StudentID).Count(&studentCount)
	if studentCount == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}

	fee := model.StudentFeeModel{
		StudentFeeStudentID:  req.StudentID,
		StudentFeeScheduleID: req.ScheduleID,
		StudentFeeStatus:     model.FeeStatusUnpaid,
	}
	if err := ctrl.DB.Create(&fee).Error; err != nil {
		log.Printf("[ERROR] Assign fee: %v", err)
		return helper.JsonError(c, fiber.StatusConflict, "Student already has this fee assigned")
	}
	return helper.JsonCreated(c, "Fee assigned", fee)
}

// POST /api/a/fees/payments: record an offline payment
func (ctrl *FeeController) RecordPayment(c *fiber.Ctx) error {
	var req dto.RecordPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	payment, err := service.RecordManualPayment(ctrl.DB, req.StudentFeeID, req.Amount, req.Method)
	if err != nil {
		if errors.Is(err, service.ErrStudentFeeNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student fee not found")
		}
		if errors.Is(err, service.ErrInvalidAmount) {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Payment amount must be positive")
		}
		log.Printf("[ERROR] Record fee payment: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record payment")
	}
	return helper.JsonCreated(c, "Payment recorded", dto.ToPaymentResponse(payment))
}

// GET /api/a/fees/arrears?gen=  (+ pagination)
func (ctrl *FeeController) GetArrears(c *fiber.Ctx) error {
	gen := c.Query("gen")
	if gen == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "gen query parameter is required")
	}

	paging := helper.ResolvePaging(c, 20, 100)

	base := ctrl.DB.Model(&model.StudentFeeModel{}).
		Joins("JOIN fee_schedules ON fee_schedules.fee_schedule_id = student_fees.student_fee_schedule_id").
		Joins("JOIN users ON users.user_id = student_fees.student_fee_student_id").
		Where("fee_schedules.fee_schedule_gen = ?", gen).
		Where("student_fees.student_fee_status <> ?", model.FeeStatusPaid)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		log.Printf("[ERROR] Count arrears gen=%s: %v", gen, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count arrears")
	}

	var rows []dto.ArrearsRow
	if err := base.
		Select(`student_fees.student_fee_id AS student_fee_id,
			users.user_id AS student_id,
			users.user_name AS student_name,
			fee_schedules.fee_schedule_title AS title,
			fee_schedules.fee_schedule_amount AS amount,
			student_fees.student_fee_amount_paid AS amount_paid,
			student_fees.student_fee_status AS status`).
		Order("users.user_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Scan(&rows).Error; err != nil {
		log.Printf("[ERROR] List arrears gen=%s: %v", gen, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch arrears")
	}

	return helper.JsonList(c, "", rows,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/u/fees/me: the student's balances
func (ctrl *FeeController) GetMyFees(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var fees []model.StudentFeeModel
	if err := ctrl.DB.Where("student_fee_student_id = ?", studentID).Find(&fees).Error; err != nil {
		log.Printf("[ERROR] List own fees: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch fees")
	}

	out := make([]dto.StudentFeeResponse, 0, len(fees))
	for _, f := range fees {
		var schedule model.FeeScheduleModel
		if err := ctrl.DB.Where("fee_schedule_id = ?", f.StudentFeeScheduleID).
			First(&schedule).Error; err != nil {
			continue
		}
		outstanding := schedule.FeeScheduleAmount - f.StudentFeeAmountPaid
		if outstanding < 0 {
			outstanding = 0
		}
		out = append(out, dto.StudentFeeResponse{
			StudentFeeID:  f.StudentFeeID,
			ScheduleID:    schedule.FeeScheduleID,
			ScheduleTitle: schedule.FeeScheduleTitle,
			Amount:        schedule.FeeScheduleAmount,
			Currency:      schedule.FeeScheduleCurrency,
			AmountPaid:    f.StudentFeeAmountPaid,
			Outstanding:   outstanding,
			Status:        f.StudentFeeStatus,
			DueAt:         schedule.FeeScheduleDueAt,
		})
	}
	return helper.JsonOK(c, "", out)
}

// POST /api/u/fees/checkout: open a Midtrans Snap payment
func (ctrl *FeeController) Checkout(c *fiber.Ctx) error {
	var req dto.CheckoutRequest
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

	// checkout only against the caller's own fee
	var fee model.StudentFeeModel
	if err := ctrl.DB.Where("student_fee_id = ? AND student_fee_student_id = ?", req.StudentFeeID, studentID).
		First(&fee).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Student fee not found")
	}

	var student userModel.UserModel
	if err := ctrl.DB.Where("user_id = ?", studentID).First(&student).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}

	payment, err := service.CreateCheckout(ctrl.DB, req.StudentFeeID, req.Amount)
	if err != nil {
		if errors.Is(err, service.ErrInvalidAmount) {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Payment amount must be positive")
		}
		log.Printf("[ERROR] Create fee checkout: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create checkout")
	}

	token, err := service.GenerateSnapToken(*payment, student.UserName, student.UserEmail)
	if err != nil {
		log.Printf("[ERROR] Generate snap token order=%s: %v", payment.FeePaymentOrderID, err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Failed to create payment token")
	}

	return helper.JsonCreated(c, "Checkout created. Continue to payment.", dto.CheckoutResponse{
		OrderID:   payment.FeePaymentOrderID,
		SnapToken: token,
	})
}

// POST /api/fees/payments/notification (Midtrans webhook, no auth)
func (ctrl *FeeController) HandlePaymentNotification(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid notification payload")
	}

	orderID, _ := body["order_id"].(string)
	transactionStatus, _ := body["transaction_status"].(string)
	if orderID == "" || transactionStatus == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Missing order_id or transaction_status")
	}

	if err := service.SettleByOrderID(ctrl.DB, orderID, transactionStatus); err != nil {
		if errors.Is(err, service.ErrPaymentNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Payment not found")
		}
		log.Printf("[ERROR] Fee webhook order=%s: %v", orderID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to process notification")
	}

	log.Printf("[INFO] Fee webhook processed order=%s status=%s", orderID, transactionStatus)
	return helper.JsonOK(c, "Notification processed", nil)
}
