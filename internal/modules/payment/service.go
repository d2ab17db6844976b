package payment

import (
	"context"
	"errors"
	"math"
	"time"

	"hotelops/internal/domain"
)

type Service struct {
	store Store
	audit AuditSink
}

func NewService(store Store, audit AuditSink) *Service {
	return &Service{store: store, audit: audit}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// centEpsilon absorbs float drift when comparing rounded currency amounts.
const centEpsilon = 0.005

// ApplyPayment posts a payment against an invoice. Overpayment is not
// supported: an amount beyond the remaining balance is rejected. The
// invoice's paid/remaining amounts and status are recomputed in the same
// transaction.
func (s *Service) ApplyPayment(ctx context.Context, actorUserID int64, req ApplyPaymentRequest) (*domain.Payment, error) {
	amount := round2(req.Amount)
	if amount <= 0 {
		return nil, ErrValidation
	}

	var p *domain.Payment
	err := s.store.InTx(ctx, func(tx Store) error {
		inv, err := tx.GetInvoiceForUpdate(ctx, req.InvoiceID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return ErrInvoiceNotFound
			}
			return err
		}
		if inv.Status == domain.InvoiceVoided {
			return ErrInvoiceNotOpen
		}

		// A settled invoice has zero remaining balance, so any further
		// positive amount is rejected as exceeding it.
		remaining := round2(inv.TotalAmount - inv.PaidAmount)
		if amount > remaining+centEpsilon {
			return ErrAmountExceedsRemaining
		}

		payType := domain.PaymentPartial
		if math.Abs(amount-remaining) <= centEpsilon {
			payType = domain.PaymentFull
		}

		p = &domain.Payment{
			HotelID:              req.HotelID,
			InvoiceID:            &inv.ID,
			BookingID:            inv.BookingID,
			Amount:               amount,
			Type:                 payType,
			Method:               req.Method,
			Status:               domain.PaymentCompleted,
			TransactionReference: req.TransactionReference,
			Notes:                req.Notes,
			PaidAt:               time.Now().UTC(),
		}
		if err := tx.CreatePayment(ctx, p); err != nil {
			return err
		}

		inv.PaidAmount = round2(inv.PaidAmount + amount)
		inv.RemainingAmount = round2(inv.TotalAmount - inv.PaidAmount)
		if inv.RemainingAmount <= centEpsilon {
			inv.RemainingAmount = 0
			inv.Status = domain.InvoicePaid
		} else {
			inv.Status = domain.InvoicePartiallyPaid
		}
		return tx.SaveInvoiceAmounts(ctx, inv)
	})
	if err != nil {
		return nil, err
	}

	if s.audit != nil {
		s.audit.Record(ctx, req.HotelID, actorUserID, "payment.applied", map[string]any{
			"invoice_id": req.InvoiceID,
			"amount":     amount,
			"method":     req.Method,
		})
	}
	return p, nil
}

// Refund posts a refund against a booking. It is rejected when it exceeds
// the net amount previously paid; when the booking has an invoice, that
// invoice's balance and status are rolled back accordingly.
func (s *Service) Refund(ctx context.Context, actorUserID int64, req RefundRequest) (*domain.Payment, error) {
	amount := round2(req.Amount)
	if amount <= 0 {
		return nil, ErrValidation
	}

	var p *domain.Payment
	err := s.store.InTx(ctx, func(tx Store) error {
		booking, err := tx.GetBooking(ctx, req.BookingID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return ErrBookingNotFound
			}
			return err
		}

		paid, refunded, err := tx.SumBookingPayments(ctx, req.BookingID)
		if err != nil {
			return err
		}
		if amount > round2(paid-refunded)+centEpsilon {
			return ErrRefundExceedsPaid
		}

		p = &domain.Payment{
			HotelID:              booking.HotelID,
			BookingID:            &booking.ID,
			Amount:               amount,
			Type:                 domain.PaymentRefund,
			Method:               req.Method,
			Status:               domain.PaymentCompleted,
			TransactionReference: req.TransactionReference,
			Notes:                req.Notes,
			PaidAt:               time.Now().UTC(),
		}

		inv, err := tx.GetInvoiceByBookingID(ctx, req.BookingID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return err
		}
		if inv != nil {
			p.InvoiceID = &inv.ID
			inv.PaidAmount = round2(inv.PaidAmount - amount)
			if inv.PaidAmount < 0 {
				inv.PaidAmount = 0
			}
			inv.RemainingAmount = round2(inv.TotalAmount - inv.PaidAmount)
			if inv.PaidAmount <= centEpsilon {
				inv.Status = domain.InvoicePending
			} else if inv.RemainingAmount > centEpsilon {
				inv.Status = domain.InvoicePartiallyPaid
			}
			if err := tx.SaveInvoiceAmounts(ctx, inv); err != nil {
				return err
			}
		}

		return tx.CreatePayment(ctx, p)
	})
	if err != nil {
		return nil, err
	}

	if s.audit != nil {
		s.audit.Record(ctx, p.HotelID, actorUserID, "payment.refunded", map[string]any{
			"booking_id": req.BookingID,
			"amount":     amount,
		})
	}
	return p, nil
}
