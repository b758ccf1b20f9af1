package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	FeeStatusUnpaid  = "unpaid"
	FeeStatusPartial = "partial"
	FeeStatusPaid    = "paid"

	PaymentStatusPending = "pending"
	PaymentStatusSettled = "settled"
	PaymentStatusFailed  = "failed"
)

// FeeScheduleModel is the fee a whole cohort owes (e.g. "Gen 21 Tuition").
type FeeScheduleModel struct {
	FeeScheduleID       uuid.UUID `gorm:"type:uuid;primaryKey;column:fee_schedule_id" json:"fee_schedule_id"`
	FeeScheduleGen      string    `gorm:"type:varchar(30);not null;index;column:fee_schedule_gen" json:"fee_schedule_gen"`
	FeeScheduleTitle    string    `gorm:"type:varchar(160);not null;column:fee_schedule_title" json:"fee_schedule_title"`
	FeeScheduleAmount   int64     `gorm:"not null;column:fee_schedule_amount" json:"fee_schedule_amount"`
	FeeScheduleCurrency string    `gorm:"type:varchar(3);not null;default:'GHS';column:fee_schedule_currency" json:"fee_schedule_currency"`

	FeeScheduleDueAt *time.Time `gorm:"column:fee_schedule_due_at" json:"fee_schedule_due_at,omitempty"`

	FeeScheduleCreatedAt time.Time      `gorm:"autoCreateTime;column:fee_schedule_created_at" json:"fee_schedule_created_at"`
	FeeScheduleUpdatedAt time.Time      `gorm:"autoUpdateTime;column:fee_schedule_updated_at" json:"fee_schedule_updated_at"`
	FeeScheduleDeletedAt gorm.DeletedAt `gorm:"column:fee_schedule_deleted_at;index" json:"fee_schedule_deleted_at,omitempty"`
}

func (FeeScheduleModel) TableName() string {
	return "fee_schedules"
}

func (m *FeeScheduleModel) BeforeCreate(tx *gorm.DB) error {
	if m.FeeScheduleID == uuid.Nil {
		m.FeeScheduleID = uuid.New()
	}
	return nil
}

// StudentFeeModel tracks one student's balance against a schedule.
// amount_paid/status are mutated only inside the payment transaction.
type StudentFeeModel struct {
	StudentFeeID         uuid.UUID `gorm:"type:uuid;primaryKey;column:student_fee_id" json:"student_fee_id"`
	StudentFeeStudentID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_student_fees_student_schedule;column:student_fee_student_id" json:"student_fee_student_id"`
	StudentFeeScheduleID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_student_fees_student_schedule;column:student_fee_schedule_id" json:"student_fee_schedule_id"`

	StudentFeeAmountPaid int64  `gorm:"not null;default:0;column:student_fee_amount_paid" json:"student_fee_amount_paid"`
	StudentFeeStatus     string `gorm:"type:varchar(10);not null;default:'unpaid';column:student_fee_status" json:"student_fee_status"`

	StudentFeeCreatedAt time.Time `gorm:"autoCreateTime;column:student_fee_created_at" json:"student_fee_created_at"`
	StudentFeeUpdatedAt time.Time `gorm:"autoUpdateTime;column:student_fee_updated_at" json:"student_fee_updated_at"`
}

func (StudentFeeModel) TableName() string {
	return "student_fees"
}

func (m *StudentFeeModel) BeforeCreate(tx *gorm.DB) error {
	if m.StudentFeeID == uuid.Nil {
		m.StudentFeeID = uuid.New()
	}
	return nil
}

// FeePaymentModel is one payment attempt against a student fee, recorded
// manually by an admin or created pending by Midtrans checkout.
type FeePaymentModel struct {
	FeePaymentID           uuid.UUID `gorm:"type:uuid;primaryKey;column:fee_payment_id" json:"fee_payment_id"`
	FeePaymentStudentFeeID uuid.UUID `gorm:"type:uuid;not null;index;column:fee_payment_student_fee_id" json:"fee_payment_student_fee_id"`

	FeePaymentAmount int64  `gorm:"not null;column:fee_payment_amount" json:"fee_payment_amount"`
	FeePaymentMethod string `gorm:"type:varchar(20);not null;column:fee_payment_method" json:"fee_payment_method"`

	// Midtrans order id for gateway payments; empty for manual entries.
	FeePaymentOrderID string `gorm:"type:varchar(64);index;column:fee_payment_order_id" json:"fee_payment_order_id,omitempty"`
	FeePaymentStatus  string `gorm:"type:varchar(10);not null;default:'pending';column:fee_payment_status" json:"fee_payment_status"`

	FeePaymentPaidAt    *time.Time `gorm:"column:fee_payment_paid_at" json:"fee_payment_paid_at,omitempty"`
	FeePaymentCreatedAt time.Time  `gorm:"autoCreateTime;column:fee_payment_created_at" json:"fee_payment_created_at"`
}

func (FeePaymentModel) TableName() string {
	return "fee_payments"
}

func (m *FeePaymentModel) BeforeCreate(tx *gorm.DB) error {
	if m.FeePaymentID == uuid.Nil {
		m.FeePaymentID = uuid.New()
	}
	return nil
}
