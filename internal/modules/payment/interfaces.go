package payment

import (
	"context"

	"hotelops/internal/domain"
)

type Store interface {
	InTx(ctx context.Context, fn func(tx Store) error) error

	// GetInvoiceForUpdate takes a row lock on PostgreSQL so that two
	// concurrent payments cannot both pass the remaining-balance check.
	GetInvoiceForUpdate(ctx context.Context, id int64) (*domain.Invoice, error)
	GetInvoiceByBookingID(ctx context.Context, bookingID int64) (*domain.Invoice, error)
	SaveInvoiceAmounts(ctx context.Context, inv *domain.Invoice) error

	GetBooking(ctx context.Context, id int64) (*domain.Booking, error)

	CreatePayment(ctx context.Context, p *domain.Payment) error
	// SumBookingPayments returns completed non-refund payments and completed
	// refunds linked to the booking (directly or through its invoice).
	SumBookingPayments(ctx context.Context, bookingID int64) (paid, refunded float64, err error)
}

type AuditSink interface {
	Record(ctx context.Context, hotelID, userID int64, action string, metadata any)
}
