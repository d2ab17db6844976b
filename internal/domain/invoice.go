package domain

import "time"

type InvoiceStatus string

const (
	InvoicePending       InvoiceStatus = "pending"
	InvoicePartiallyPaid InvoiceStatus = "partially_paid"
	InvoicePaid          InvoiceStatus = "paid"
	InvoiceVoided        InvoiceStatus = "voided"
)

type InvoiceLineSourceType string

const (
	LineSourceRoom     InvoiceLineSourceType = "room"
	LineSourceOrder    InvoiceLineSourceType = "order"
	LineSourceOther    InvoiceLineSourceType = "other"
	LineSourceDiscount InvoiceLineSourceType = "discount"
)

func (t InvoiceLineSourceType) Valid() bool {
	switch t {
	case LineSourceRoom, LineSourceOrder, LineSourceOther, LineSourceDiscount:
		return true
	}
	return false
}

type InvoiceLine struct {
	ID          int64                 `json:"id"`
	InvoiceID   int64                 `json:"invoice_id" gorm:"index"`
	Description string                `json:"description"`
	Amount      float64               `json:"amount" validate:"gt=0"`
	SourceType  InvoiceLineSourceType `json:"source_type"`
	SourceID    *int64                `json:"source_id,omitempty"`
	NonTaxable  bool                  `json:"non_taxable,omitempty"`
	CreatedAt   time.Time             `json:"created_at"`
}

// Invoice invariant: TotalAmount = SubTotal + TaxAmount - DiscountAmount,
// RemainingAmount = TotalAmount - PaidAmount.
type Invoice struct {
	ID              int64         `json:"id"`
	Code            string        `json:"code" gorm:"uniqueIndex;size:24"`
	HotelID         int64         `json:"hotel_id" validate:"required"`
	BookingID       *int64        `json:"booking_id,omitempty" gorm:"index"`
	OrderID         *int64        `json:"order_id,omitempty"`
	GuestID         *int64        `json:"guest_id,omitempty"`
	PromotionID     *int64        `json:"promotion_id,omitempty"`
	SubTotal        float64       `json:"sub_total"`
	TaxAmount       float64       `json:"tax_amount"`
	DiscountAmount  float64       `json:"discount_amount"`
	TotalAmount     float64       `json:"total_amount"`
	PaidAmount      float64       `json:"paid_amount"`
	RemainingAmount float64       `json:"remaining_amount"`
	Status          InvoiceStatus `json:"status"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`

	Lines []InvoiceLine `json:"lines,omitempty" gorm:"foreignKey:InvoiceID"`
}
