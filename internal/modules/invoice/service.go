package invoice

import (
	"context"
	"errors"
	"fmt"
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

// recompute derives subtotal, tax and total from the invoice lines, the
// hotel's VAT rate and the discount of an applied promotion. Discount-type
// lines feed DiscountAmount; everything else feeds SubTotal, and taxable
// lines (non-discount, not flagged non-taxable) form the VAT base. Total is
// floored at zero and may never fall below the amount already paid.
func recompute(inv *domain.Invoice, vatRate, promoDiscount float64) error {
	var subTotal, taxable, lineDiscount float64
	for _, l := range inv.Lines {
		if l.SourceType == domain.LineSourceDiscount {
			lineDiscount += l.Amount
			continue
		}
		subTotal += l.Amount
		if !l.NonTaxable {
			taxable += l.Amount
		}
	}

	inv.SubTotal = round2(subTotal)
	inv.TaxAmount = round2(taxable * vatRate / 100)
	inv.DiscountAmount = round2(lineDiscount + promoDiscount)

	total := inv.SubTotal + inv.TaxAmount - inv.DiscountAmount
	if total < 0 {
		total = 0
	}
	inv.TotalAmount = round2(total)

	if inv.PaidAmount > inv.TotalAmount {
		return ErrTotalBelowPaid
	}
	inv.RemainingAmount = round2(inv.TotalAmount - inv.PaidAmount)
	return nil
}

func toLines(inputs []LineInput) ([]domain.InvoiceLine, error) {
	lines := make([]domain.InvoiceLine, 0, len(inputs))
	for _, in := range inputs {
		if in.Amount <= 0 || !in.SourceType.Valid() {
			return nil, ErrValidation
		}
		lines = append(lines, domain.InvoiceLine{
			Description: in.Description,
			Amount:      round2(in.Amount),
			SourceType:  in.SourceType,
			SourceID:    in.SourceID,
			NonTaxable:  in.NonTaxable,
		})
	}
	return lines, nil
}

func (s *Service) Create(ctx context.Context, actorUserID int64, req CreateInvoiceRequest) (*domain.Invoice, error) {
	lines, err := toLines(req.Lines)
	if err != nil {
		return nil, err
	}

	var inv *domain.Invoice
	err = s.store.InTx(ctx, func(tx Store) error {
		vatRate, err := tx.HotelVATRate(ctx, req.HotelID)
		if err != nil {
			return err
		}

		inv = &domain.Invoice{
			Code:      newInvoiceCode(),
			HotelID:   req.HotelID,
			BookingID: req.BookingID,
			OrderID:   req.OrderID,
			GuestID:   req.GuestID,
			Status:    domain.InvoicePending,
			Lines:     lines,
		}
		if err := recompute(inv, vatRate, 0); err != nil {
			return err
		}
		return tx.CreateInvoice(ctx, inv)
	})
	if err != nil {
		return nil, err
	}

	if s.audit != nil {
		s.audit.Record(ctx, req.HotelID, actorUserID, "invoice.created", map[string]any{
			"invoice_id": inv.ID,
			"total":      inv.TotalAmount,
		})
	}
	return inv, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Invoice, error) {
	inv, err := s.store.GetInvoice(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}
	return inv, nil
}

// AddLines appends lines and recomputes totals in one transaction.
func (s *Service) AddLines(ctx context.Context, actorUserID, invoiceID int64, req AddLinesRequest) (*domain.Invoice, error) {
	lines, err := toLines(req.Lines)
	if err != nil {
		return nil, err
	}

	var inv *domain.Invoice
	err = s.store.InTx(ctx, func(tx Store) error {
		if _, err := s.loadOpen(ctx, tx, invoiceID); err != nil {
			return err
		}
		if err := tx.AddLines(ctx, invoiceID, lines); err != nil {
			return err
		}
		inv, err = s.refresh(ctx, tx, invoiceID)
		return err
	})
	if err != nil {
		return nil, err
	}

	if s.audit != nil {
		s.audit.Record(ctx, inv.HotelID, actorUserID, "invoice.lines_added", map[string]any{
			"invoice_id": invoiceID,
			"count":      len(lines),
		})
	}
	return inv, nil
}

// RemoveLines deletes lines and recomputes; the new total may not fall below
// what has already been paid (a refund must happen first).
func (s *Service) RemoveLines(ctx context.Context, actorUserID, invoiceID int64, req RemoveLinesRequest) (*domain.Invoice, error) {
	if len(req.LineIDs) == 0 {
		return nil, ErrValidation
	}

	var inv *domain.Invoice
	err := s.store.InTx(ctx, func(tx Store) error {
		if _, err := s.loadOpen(ctx, tx, invoiceID); err != nil {
			return err
		}
		deleted, err := tx.DeleteLines(ctx, invoiceID, req.LineIDs)
		if err != nil {
			return err
		}
		if deleted != int64(len(req.LineIDs)) {
			return ErrLinesNotFound
		}
		inv, err = s.refresh(ctx, tx, invoiceID)
		return err
	})
	if err != nil {
		return nil, err
	}

	if s.audit != nil {
		s.audit.Record(ctx, inv.HotelID, actorUserID, "invoice.lines_removed", map[string]any{
			"invoice_id": invoiceID,
			"count":      len(req.LineIDs),
		})
	}
	return inv, nil
}

// ApplyPromotion validates the code (active, window, usage limit, minimum
// spend) and folds its discount into the invoice, capped at MaximumDiscount.
func (s *Service) ApplyPromotion(ctx context.Context, actorUserID, invoiceID int64, code string) (*domain.Invoice, error) {
	var inv *domain.Invoice
	err := s.store.InTx(ctx, func(tx Store) error {
		var err error
		inv, err = s.loadOpen(ctx, tx, invoiceID)
		if err != nil {
			return err
		}

		// One promotion per invoice; re-application would double-count usage.
		if inv.PromotionID != nil {
			return ErrPromotionInvalid
		}

		promo, err := tx.GetPromotionByCode(ctx, inv.HotelID, code)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return ErrPromotionInvalid
			}
			return err
		}

		if err := validatePromotion(promo, inv.SubTotal, time.Now().UTC()); err != nil {
			return err
		}

		vatRate, err := tx.HotelVATRate(ctx, inv.HotelID)
		if err != nil {
			return err
		}
		inv.PromotionID = &promo.ID
		if err := recompute(inv, vatRate, promotionDiscount(promo, inv.SubTotal)); err != nil {
			return err
		}
		if err := tx.IncrementPromotionUsage(ctx, promo.ID); err != nil {
			return err
		}
		return tx.SaveTotals(ctx, inv)
	})
	if err != nil {
		return nil, err
	}

	if s.audit != nil {
		s.audit.Record(ctx, inv.HotelID, actorUserID, "invoice.promotion_applied", map[string]any{
			"invoice_id": invoiceID,
			"code":       code,
			"discount":   inv.DiscountAmount,
		})
	}
	return inv, nil
}

// Void marks an unpaid invoice terminal.
func (s *Service) Void(ctx context.Context, actorUserID, invoiceID int64) (*domain.Invoice, error) {
	var inv *domain.Invoice
	err := s.store.InTx(ctx, func(tx Store) error {
		var err error
		inv, err = s.loadOpen(ctx, tx, invoiceID)
		if err != nil {
			return err
		}
		if inv.PaidAmount > 0 {
			return ErrTotalBelowPaid
		}
		inv.Status = domain.InvoiceVoided
		return tx.SaveTotals(ctx, inv)
	})
	if err != nil {
		return nil, err
	}

	if s.audit != nil {
		s.audit.Record(ctx, inv.HotelID, actorUserID, "invoice.voided", map[string]any{"invoice_id": invoiceID})
	}
	return inv, nil
}

func (s *Service) loadOpen(ctx context.Context, tx Store, invoiceID int64) (*domain.Invoice, error) {
	inv, err := tx.GetInvoice(ctx, invoiceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}
	if inv.Status == domain.InvoiceVoided || inv.Status == domain.InvoicePaid {
		return nil, ErrInvoiceNotOpen
	}
	return inv, nil
}

// refresh reloads the invoice after a line edit and recomputes its totals,
// re-deriving the promotion discount from the new subtotal.
func (s *Service) refresh(ctx context.Context, tx Store, invoiceID int64) (*domain.Invoice, error) {
	inv, err := tx.GetInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	var promoDiscount float64
	if inv.PromotionID != nil {
		promo, err := tx.GetPromotion(ctx, *inv.PromotionID)
		if err != nil {
			return nil, err
		}
		var subTotal float64
		for _, l := range inv.Lines {
			if l.SourceType != domain.LineSourceDiscount {
				subTotal += l.Amount
			}
		}
		promoDiscount = promotionDiscount(promo, subTotal)
	}

	vatRate, err := tx.HotelVATRate(ctx, inv.HotelID)
	if err != nil {
		return nil, err
	}
	if err := recompute(inv, vatRate, promoDiscount); err != nil {
		return nil, err
	}
	if err := tx.SaveTotals(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

func validatePromotion(p *domain.Promotion, subTotal float64, now time.Time) error {
	if !p.Active {
		return ErrPromotionInvalid
	}
	if now.Before(p.ValidFrom) || now.After(p.ValidTo) {
		return ErrPromotionInvalid
	}
	if p.UsageLimit > 0 && p.UsageCount >= p.UsageLimit {
		return ErrPromotionInvalid
	}
	if subTotal < p.MinimumSpend {
		return ErrPromotionInvalid
	}
	if p.Type != domain.PromotionPercentage && p.Type != domain.PromotionFixedAmount {
		return ErrPromotionInvalid
	}
	return nil
}

func promotionDiscount(p *domain.Promotion, subTotal float64) float64 {
	var discount float64
	switch p.Type {
	case domain.PromotionPercentage:
		discount = subTotal * p.Value / 100
	case domain.PromotionFixedAmount:
		discount = p.Value
	}
	if p.MaximumDiscount > 0 && discount > p.MaximumDiscount {
		discount = p.MaximumDiscount
	}
	return round2(discount)
}

func newInvoiceCode() string {
	return fmt.Sprintf("INV%d", time.Now().UnixNano())
}
