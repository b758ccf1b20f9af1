package dto

import (
	"time"

	"github.com/google/uuid"

	"codetrain_backend/internals/features/fees/model"
)

type CreateScheduleRequest struct {
	Gen      string     `json:"gen" validate:"required,max=30"`
	Title    string     `json:"title" validate:"required,max=160"`
	Amount   int64      `json:"amount" validate:"required,gt=0"`
	Currency string     `json:"currency" validate:"omitempty,len=3"`
	DueAt    *time.Time `json:"due_at"`
}

func (r *CreateScheduleRequest) ToModel() *model.FeeScheduleModel {
	currency := r.Currency
	if currency == "" {
		currency = "GHS"
	}
	return &model.FeeScheduleModel{
		FeeScheduleGen:      r.Gen,
		FeeScheduleTitle:    r.Title,
		FeeScheduleAmount:   r.Amount,
		FeeScheduleCurrency: currency,
		FeeScheduleDueAt:    r.DueAt,
	}
}

type AssignFeeRequest struct {
	StudentID  uuid.UUID `json:"student_id" validate:"required"`
	ScheduleID uuid.UUID `json:"schedule_id" validate:"required"`
}

type RecordPaymentRequest struct {
	StudentFeeID uuid.UUID `json:"student_fee_id" validate:"required"`
	Amount       int64     `json:"amount" validate:"required,gt=0"`
	Method       string    `json:"method" validate:"required,oneof=cash momo bank"`
}

type CheckoutRequest struct {
	StudentFeeID uuid.UUID `json:"student_fee_id" validate:"required"`
	Amount       int64     `json:"amount" validate:"required,gt=0"`
}

type CheckoutResponse struct {
	OrderID   string `json:"order_id"`
	SnapToken string `json:"snap_token"`
}

type StudentFeeResponse struct {
	StudentFeeID  uuid.UUID  `json:"student_fee_id"`
	ScheduleID    uuid.UUID  `json:"schedule_id"`
	ScheduleTitle string     `json:"schedule_title"`
	Amount        int64      `json:"amount"`
	Currency      string     `json:"currency"`
	AmountPaid    int64      `json:"amount_paid"`
	Outstanding   int64      `json:"outstanding"`
	Status        string     `json:"status"`
	DueAt         *time.Time `json:"due_at,omitempty"`
}

// ArrearsRow is the admin per-gen arrears listing.
type ArrearsRow struct {
	StudentFeeID uuid.UUID `json:"student_fee_id"`
	StudentID    uuid.UUID `json:"student_id"`
	StudentName  string    `json:"student_name"`
	Title        string    `json:"title"`
	Amount       int64     `json:"amount"`
	AmountPaid   int64     `json:"amount_paid"`
	Status       string    `json:"status"`
}

type PaymentResponse struct {
	PaymentID uuid.UUID  `json:"payment_id"`
	Amount    int64      `json:"amount"`
	Method    string     `json:"method"`
	OrderID   string     `json:"order_id,omitempty"`
	Status    string     `json:"status"`
	PaidAt    *time.Time `json:"paid_at,omitempty"`
}

func ToPaymentResponse(m *model.FeePaymentModel) PaymentResponse {
	return PaymentResponse{
		PaymentID: m.FeePaymentID,
		Amount:    m.FeePaymentAmount,
		Method:    m.FeePaymentMethod,
		OrderID:   m.FeePaymentOrderID,
		Status:    m.FeePaymentStatus,
		PaidAt:    m.FeePaymentPaidAt,
	}
}
