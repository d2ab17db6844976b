package domain

import "time"

type PaymentType string

const (
	PaymentDeposit     PaymentType = "deposit"
	PaymentFull        PaymentType = "full_payment"
	PaymentPartial     PaymentType = "partial_payment"
	PaymentRefund      PaymentType = "refund"
	PaymentExtraCharge PaymentType = "extra_charge"
)

type PaymentMethod string

const (
	MethodCash     PaymentMethod = "cash"
	MethodCard     PaymentMethod = "card"
	MethodTransfer PaymentMethod = "bank_transfer"
)

type PaymentState string

const (
	PaymentPending   PaymentState = "pending"
	PaymentCompleted PaymentState = "completed"
	PaymentFailed    PaymentState = "failed"
)

// Payment rows are immutable once created except for Status transitions.
type Payment struct {
	ID                   int64         `json:"id"`
	HotelID              int64         `json:"hotel_id" validate:"required"`
	BookingID            *int64        `json:"booking_id,omitempty" gorm:"index"`
	InvoiceID            *int64        `json:"invoice_id,omitempty" gorm:"index"`
	Amount               float64       `json:"amount" validate:"gt=0"`
	Type                 PaymentType   `json:"type"`
	Method               PaymentMethod `json:"method"`
	Status               PaymentState  `json:"status"`
	TransactionReference string        `json:"transaction_reference,omitempty"`
	Notes                string        `json:"notes,omitempty" gorm:"type:text"`
	PaidAt               time.Time     `json:"paid_at"`
	CreatedAt            time.Time     `json:"created_at"`
	UpdatedAt            time.Time     `json:"updated_at"`
}
