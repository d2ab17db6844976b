package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hotelops/internal/domain"
	"hotelops/internal/modules/payment"
)

type PaymentStore struct {
	db *gorm.DB
}

func NewPaymentStore(db *gorm.DB) *PaymentStore {
	return &PaymentStore{db: db}
}

func (s *PaymentStore) InTx(ctx context.Context, fn func(tx payment.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PaymentStore{db: tx})
	})
}

// GetInvoiceForUpdate locks the invoice row on PostgreSQL. SQLite serializes
// writers at the database level, so no row lock is needed there.
func (s *PaymentStore) GetInvoiceForUpdate(ctx context.Context, id int64) (*domain.Invoice, error) {
	q := s.db.WithContext(ctx)
	if isPostgres(s.db) {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var inv domain.Invoice
	if err := q.First(&inv, id).Error; err != nil {
		return nil, mapErr(err)
	}
	return &inv, nil
}

func (s *PaymentStore) GetInvoiceByBookingID(ctx context.Context, bookingID int64) (*domain.Invoice, error) {
	var inv domain.Invoice
	err := s.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("id DESC").
		First(&inv).Error
	if err != nil {
		return nil, mapErr(err)
	}
	return &inv, nil
}

func (s *PaymentStore) SaveInvoiceAmounts(ctx context.Context, inv *domain.Invoice) error {
	res := s.db.WithContext(ctx).
		Model(&domain.Invoice{}).
		Where("id = ?", inv.ID).
		Updates(map[string]any{
			"paid_amount":      inv.PaidAmount,
			"remaining_amount": inv.RemainingAmount,
			"status":           inv.Status,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *PaymentStore) GetBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	if err := s.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, mapErr(err)
	}
	return &b, nil
}

func (s *PaymentStore) CreatePayment(ctx context.Context, p *domain.Payment) error {
	return s.db.WithContext(ctx).Create(p).Error
}

func (s *PaymentStore) SumBookingPayments(ctx context.Context, bookingID int64) (paid, refunded float64, err error) {
	type row struct {
		Paid     float64
		Refunded float64
	}
	var r row
	q := `
SELECT
  COALESCE(SUM(CASE WHEN type <> 'refund' THEN amount ELSE 0 END), 0) AS paid,
  COALESCE(SUM(CASE WHEN type = 'refund' THEN amount ELSE 0 END), 0)  AS refunded
FROM payments
WHERE status = 'completed'
  AND (booking_id = ? OR invoice_id IN (SELECT id FROM invoices WHERE booking_id = ?))
`
	if err := s.db.WithContext(ctx).Raw(q, bookingID, bookingID).Scan(&r).Error; err != nil {
		return 0, 0, err
	}
	return r.Paid, r.Refunded, nil
}
