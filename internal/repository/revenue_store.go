package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"hotelops/internal/domain"
	"hotelops/internal/modules/revenue"
)

// RevenueStore is read-only: it only aggregates committed invoice data.
type RevenueStore struct {
	db *gorm.DB
}

func NewRevenueStore(db *gorm.DB) *RevenueStore {
	return &RevenueStore{db: db}
}

func (s *RevenueStore) ListInvoiceTotals(ctx context.Context, hotelID int64, from, to time.Time) ([]revenue.InvoiceTotal, error) {
	var totals []revenue.InvoiceTotal
	err := s.db.WithContext(ctx).
		Model(&domain.Invoice{}).
		Select("created_at, total_amount").
		Where("hotel_id = ? AND status <> ?", hotelID, domain.InvoiceVoided).
		Where("created_at >= ? AND created_at < ?", from, to).
		Order("created_at").
		Scan(&totals).Error
	return totals, err
}

func (s *RevenueStore) SumLinesBySource(ctx context.Context, hotelID int64, from, to time.Time) (map[domain.InvoiceLineSourceType]float64, error) {
	type row struct {
		SourceType string
		Total      float64
	}
	var rows []row
	q := `
SELECT il.source_type AS source_type, COALESCE(SUM(il.amount), 0) AS total
FROM invoice_lines il
JOIN invoices i ON i.id = il.invoice_id
WHERE i.hotel_id = ?
  AND i.status <> 'voided'
  AND i.created_at >= ? AND i.created_at < ?
GROUP BY il.source_type
`
	if err := s.db.WithContext(ctx).Raw(q, hotelID, from, to).Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[domain.InvoiceLineSourceType]float64, len(rows))
	for _, r := range rows {
		out[domain.InvoiceLineSourceType(r.SourceType)] = r.Total
	}
	return out, nil
}

func (s *RevenueStore) ListLinesBySource(ctx context.Context, hotelID int64, from, to time.Time, source domain.InvoiceLineSourceType) ([]revenue.LineDetail, error) {
	var details []revenue.LineDetail
	q := `
SELECT il.invoice_id, i.code AS invoice_code, il.description, il.amount, il.source_type, il.created_at
FROM invoice_lines il
JOIN invoices i ON i.id = il.invoice_id
WHERE i.hotel_id = ?
  AND i.status <> 'voided'
  AND i.created_at >= ? AND i.created_at < ?
  AND il.source_type = ?
ORDER BY il.created_at
`
	err := s.db.WithContext(ctx).Raw(q, hotelID, from, to, source).Scan(&details).Error
	return details, err
}
