package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"codetrain_backend/internals/features/fees/model"
)

var (
	ErrStudentFeeNotFound = errors.New("student fee not found")
	ErrPaymentNotFound    = errors.New("payment not found")
	ErrInvalidAmount      = errors.New("payment amount must be positive")
)

// RecordManualPayment is the admin path: cash or bank transfer collected
// offline. The payment row and the balance rollup commit together.
func RecordManualPayment(db *gorm.DB, studentFeeID uuid.UUID, amount int64, method string) (*model.FeePaymentModel, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	now := time.Now()
	payment := model.FeePaymentModel{
		FeePaymentStudentFeeID: studentFeeID,
		FeePaymentAmount:       amount,
		FeePaymentMethod:       method,
		FeePaymentStatus:       model.PaymentStatusSettled,
		FeePaymentPaidAt:       &now,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}
		return rollup(tx, studentFeeID, amount)
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[SERVICE] RecordManualPayment - student_fee=%s amount=%d method=%s",
		studentFeeID, amount, method)
	return &payment, nil
}

// CreateCheckout opens a pending gateway payment and hands back the row with
// its order id; the caller exchanges it for a Snap token. The balance is not
// touched until the webhook settles it.
func CreateCheckout(db *gorm.DB, studentFeeID uuid.UUID, amount int64) (*model.FeePaymentModel, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	var fee model.StudentFeeModel
	if err := db.Where("student_fee_id = ?", studentFeeID).First(&fee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentFeeNotFound
		}
		return nil, err
	}

	payment := model.FeePaymentModel{
		FeePaymentStudentFeeID: studentFeeID,
		FeePaymentAmount:       amount,
		FeePaymentMethod:       "midtrans",
		FeePaymentOrderID:      fmt.Sprintf("fee-%s-%s", studentFeeID.String()[:8], uuid.NewString()[:8]),
		FeePaymentStatus:       model.PaymentStatusPending,
	}
	if err := db.Create(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

// SettleByOrderID applies a gateway notification. Settlement rolls the
// amount into the student's balance; repeat notifications for an already
// settled order are ignored.
func SettleByOrderID(db *gorm.DB, orderID, transactionStatus string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var payment model.FeePaymentModel
		if err := tx.Where("fee_payment_order_id = ?", orderID).First(&payment).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPaymentNotFound
			}
			return err
		}
		if payment.FeePaymentStatus != model.PaymentStatusPending {
			log.Printf("[INFO] SettleByOrderID - order %s already %s, skipping", orderID, payment.FeePaymentStatus)
			return nil
		}

		switch transactionStatus {
		case "settlement", "capture":
			now := time.Now()
			if err := tx.Model(&payment).Updates(map[string]interface{}{
				"fee_payment_status":  model.PaymentStatusSettled,
				"fee_payment_paid_at": now,
			}).Error; err != nil {
				return err
			}
			return rollup(tx, payment.FeePaymentStudentFeeID, payment.FeePaymentAmount)
		case "deny", "cancel", "expire", "failure":
			return tx.Model(&payment).
				Update("fee_payment_status", model.PaymentStatusFailed).Error
		default:
			// pending and other intermediate states: nothing to do yet
			return nil
		}
	})
}

// rollup adds a settled amount to the student's balance and recomputes the
// status against the schedule total.
func rollup(tx *gorm.DB, studentFeeID uuid.UUID, amount int64) error {
	var fee model.StudentFeeModel
	if err := tx.Where("student_fee_id = ?", studentFeeID).First(&fee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStudentFeeNotFound
		}
		return err
	}

	var schedule model.FeeScheduleModel
	if err := tx.Where("fee_schedule_id = ?", fee.StudentFeeScheduleID).First(&schedule).Error; err != nil {
		return err
	}

	newPaid := fee.StudentFeeAmountPaid + amount
	status := model.FeeStatusPartial
	if newPaid >= schedule.FeeScheduleAmount {
		status = model.FeeStatusPaid
	} else if newPaid <= 0 {
		status = model.FeeStatusUnpaid
	}

	return tx.Model(&fee).Updates(map[string]interface{}{
		"student_fee_amount_paid": newPaid,
		"student_fee_status":      status,
	}).Error
}
