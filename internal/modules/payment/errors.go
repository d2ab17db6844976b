package payment

import "errors"

var (
	ErrValidation             = errors.New("validation error")
	ErrInvoiceNotFound        = errors.New("invoice not found")
	ErrBookingNotFound        = errors.New("booking not found")
	ErrInvoiceNotOpen         = errors.New("invoice is not payable")
	ErrAmountExceedsRemaining = errors.New("amount exceeds remaining balance")
	ErrRefundExceedsPaid      = errors.New("refund exceeds amount previously paid")
)
