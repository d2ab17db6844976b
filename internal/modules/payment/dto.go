package payment

import "hotelops/internal/domain"

type ApplyPaymentRequest struct {
	HotelID              int64                `json:"hotel_id" binding:"required"`
	InvoiceID            int64                `json:"invoice_id" binding:"required"`
	Amount               float64              `json:"amount" binding:"required"`
	Method               domain.PaymentMethod `json:"method" binding:"required"`
	TransactionReference string               `json:"transaction_reference,omitempty"`
	Notes                string               `json:"notes,omitempty"`
}

type RefundRequest struct {
	HotelID              int64                `json:"hotel_id" binding:"required"`
	BookingID            int64                `json:"booking_id" binding:"required"`
	Amount               float64              `json:"amount" binding:"required"`
	Method               domain.PaymentMethod `json:"method" binding:"required"`
	TransactionReference string               `json:"transaction_reference,omitempty"`
	Notes                string               `json:"notes,omitempty"`
}
