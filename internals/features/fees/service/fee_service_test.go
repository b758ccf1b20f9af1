package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"codetrain_backend/internals/features/fees/model"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&model.FeeScheduleModel{},
		&model.StudentFeeModel{},
		&model.FeePaymentModel{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		db.Exec("DELETE FROM fee_payments")
		db.Exec("DELETE FROM student_fees")
		db.Exec("DELETE FROM fee_schedules")
	})
	return db
}

func seedFee(t *testing.T, db *gorm.DB, total int64) *model.StudentFeeModel {
	t.Helper()
	schedule := model.FeeScheduleModel{
		FeeScheduleGen:    "Gen 21",
		FeeScheduleTitle:  "Tuition",
		FeeScheduleAmount: total,
	}
	if err := db.Create(&schedule).Error; err != nil {
		t.Fatalf("seed schedule: %v", err)
	}
	fee := model.StudentFeeModel{
		StudentFeeStudentID:  uuid.New(),
		StudentFeeScheduleID: schedule.FeeScheduleID,
		StudentFeeStatus:     model.FeeStatusUnpaid,
	}
	if err := db.Create(&fee).Error; err != nil {
		t.Fatalf("seed student fee: %v", err)
	}
	return &fee
}

func reloadFee(t *testing.T, db *gorm.DB, id uuid.UUID) *model.StudentFeeModel {
	t.Helper()
	var fee model.StudentFeeModel
	if err := db.Where("student_fee_id = ?", id).First(&fee).Error; err != nil {
		t.Fatalf("reload fee: %v", err)
	}
	return &fee
}

func TestManualPaymentRollsUpToPartial(t *testing.T) {
	db := testDB(t)
	fee := seedFee(t, db, 1000)

	if _, err := RecordManualPayment(db, fee.StudentFeeID, 400, "cash"); err != nil {
		t.Fatalf("record payment: %v", err)
	}

	got := reloadFee(t, db, fee.StudentFeeID)
	if got.StudentFeeAmountPaid != 400 {
		t.Fatalf("amount_paid = %d, want 400", got.StudentFeeAmountPaid)
	}
	if got.StudentFeeStatus != model.FeeStatusPartial {
		t.Fatalf("status = %s, want partial", got.StudentFeeStatus)
	}
}

func TestPaymentsAccumulateToPaid(t *testing.T) {
	db := testDB(t)
	fee := seedFee(t, db, 1000)

	for _, amount := range []int64{400, 300, 300} {
		if _, err := RecordManualPayment(db, fee.StudentFeeID, amount, "momo"); err != nil {
			t.Fatalf("record payment %d: %v", amount, err)
		}
	}

	got := reloadFee(t, db, fee.StudentFeeID)
	if got.StudentFeeAmountPaid != 1000 {
		t.Fatalf("amount_paid = %d, want 1000", got.StudentFeeAmountPaid)
	}
	if got.StudentFeeStatus != model.FeeStatusPaid {
		t.Fatalf("status = %s, want paid", got.StudentFeeStatus)
	}
}

func TestManualPaymentRejectsBadInput(t *testing.T) {
	db := testDB(t)
	fee := seedFee(t, db, 1000)

	if _, err := RecordManualPayment(db, fee.StudentFeeID, 0, "cash"); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
	if _, err := RecordManualPayment(db, uuid.New(), 100, "cash"); !errors.Is(err, ErrStudentFeeNotFound) {
		t.Fatalf("expected ErrStudentFeeNotFound, got %v", err)
	}
	if got := reloadFee(t, db, fee.StudentFeeID); got.StudentFeeAmountPaid != 0 {
		t.Fatalf("failed payments must not change the balance, got %d", got.StudentFeeAmountPaid)
	}
}

func TestCheckoutSettlementRollsUp(t *testing.T) {
	db := testDB(t)
	fee := seedFee(t, db, 1000)

	payment, err := CreateCheckout(db, fee.StudentFeeID, 600)
	if err != nil {
		t.Fatalf("create checkout: %v", err)
	}
	if payment.FeePaymentStatus != model.PaymentStatusPending {
		t.Fatalf("checkout should start pending, got %s", payment.FeePaymentStatus)
	}

	// pending checkout does not touch the balance
	if got := reloadFee(t, db, fee.StudentFeeID); got.StudentFeeAmountPaid != 0 {
		t.Fatalf("pending payment changed balance to %d", got.StudentFeeAmountPaid)
	}

	if err := SettleByOrderID(db, payment.FeePaymentOrderID, "settlement"); err != nil {
		t.Fatalf("settle: %v", err)
	}
	got := reloadFee(t, db, fee.StudentFeeID)
	if got.StudentFeeAmountPaid != 600 || got.StudentFeeStatus != model.FeeStatusPartial {
		t.Fatalf("after settlement paid=%d status=%s, want 600/partial", got.StudentFeeAmountPaid, got.StudentFeeStatus)
	}

	// duplicate webhook delivery is a no-op
	if err := SettleByOrderID(db, payment.FeePaymentOrderID, "settlement"); err != nil {
		t.Fatalf("repeat settle: %v", err)
	}
	if got := reloadFee(t, db, fee.StudentFeeID); got.StudentFeeAmountPaid != 600 {
		t.Fatalf("duplicate settlement double-counted: %d", got.StudentFeeAmountPaid)
	}
}

func TestSettleFailureDoesNotRollUp(t *testing.T) {
	db := testDB(t)
	fee := seedFee(t, db, 1000)

	payment, err := CreateCheckout(db, fee.StudentFeeID, 600)
	if err != nil {
		t.Fatalf("create checkout: %v", err)
	}
	if err := SettleByOrderID(db, payment.FeePaymentOrderID, "expire"); err != nil {
		t.Fatalf("settle expire: %v", err)
	}

	var reloaded model.FeePaymentModel
	if err := db.Where("fee_payment_id = ?", payment.FeePaymentID).First(&reloaded).Error; err != nil {
		t.Fatalf("reload payment: %v", err)
	}
	if reloaded.FeePaymentStatus != model.PaymentStatusFailed {
		t.Fatalf("payment status = %s, want failed", reloaded.FeePaymentStatus)
	}
	if got := reloadFee(t, db, fee.StudentFeeID); got.StudentFeeAmountPaid != 0 {
		t.Fatalf("failed payment changed balance to %d", got.StudentFeeAmountPaid)
	}
}

func TestSettleUnknownOrder(t *testing.T) {
	db := testDB(t)
	if err := SettleByOrderID(db, "fee-unknown-order", "settlement"); !errors.Is(err, ErrPaymentNotFound) {
		t.Fatalf("expected ErrPaymentNotFound, got %v", err)
	}
}
