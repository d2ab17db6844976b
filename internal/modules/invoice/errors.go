package invoice

import "errors"

var (
	ErrValidation       = errors.New("validation error")
	ErrInvoiceNotFound  = errors.New("invoice not found")
	ErrInvoiceNotOpen   = errors.New("invoice is not editable")
	ErrTotalBelowPaid   = errors.New("total would drop below paid amount")
	ErrPromotionInvalid = errors.New("promotion not applicable")
	ErrLinesNotFound    = errors.New("invoice lines not found")
)
