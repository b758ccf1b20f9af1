package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"codetrain_backend/internals/features/fees/controller"
)

// FeeUserRoutes: balance view and Snap checkout.
func FeeUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewFeeController(db)
	r.Get("/fees/me", ctrl.GetMyFees)
	r.Post("/fees/checkout", ctrl.Checkout)
}

// FeeAdminRoutes: schedules, assignments, offline payments, arrears.
func FeeAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewFeeController(db)

	fees := r.Group("/fees")
	fees.Post("/schedules", ctrl.CreateSchedule)
	fees.Post("/assignments", ctrl.AssignFee)
	fees.Post("/payments", ctrl.RecordPayment)
	fees.Get("/arrears", ctrl.GetArrears)
}

// FeeWebhookRoutes mounts the Midtrans notification endpoint outside the
// auth groups; the gateway cannot send a bearer token.
func FeeWebhookRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewFeeController(db)
	app.Post("/api/fees/payments/notification", ctrl.HandlePaymentNotification)
}
