package repository

import (
	"context"

	"gorm.io/gorm"

	"hotelops/internal/domain"
	"hotelops/internal/modules/invoice"
)

type InvoiceStore struct {
	db *gorm.DB
}

func NewInvoiceStore(db *gorm.DB) *InvoiceStore {
	return &InvoiceStore{db: db}
}

func (s *InvoiceStore) InTx(ctx context.Context, fn func(tx invoice.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&InvoiceStore{db: tx})
	})
}

func (s *InvoiceStore) HotelVATRate(ctx context.Context, hotelID int64) (float64, error) {
	var h domain.Hotel
	err := s.db.WithContext(ctx).
		Select("vat_rate").
		First(&h, hotelID).Error
	if err != nil {
		return 0, mapErr(err)
	}
	return h.VATRate, nil
}

func (s *InvoiceStore) CreateInvoice(ctx context.Context, inv *domain.Invoice) error {
	return s.db.WithContext(ctx).Create(inv).Error
}

func (s *InvoiceStore) GetInvoice(ctx context.Context, id int64) (*domain.Invoice, error) {
	var inv domain.Invoice
	err := s.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("invoice_lines.id") }).
		First(&inv, id).Error
	if err != nil {
		return nil, mapErr(err)
	}
	return &inv, nil
}

// SaveTotals persists the derived amount columns and status; lines are
// managed through AddLines/DeleteLines.
func (s *InvoiceStore) SaveTotals(ctx context.Context, inv *domain.Invoice) error {
	res := s.db.WithContext(ctx).
		Model(&domain.Invoice{}).
		Where("id = ?", inv.ID).
		Updates(map[string]any{
			"sub_total":        inv.SubTotal,
			"tax_amount":       inv.TaxAmount,
			"discount_amount":  inv.DiscountAmount,
			"total_amount":     inv.TotalAmount,
			"paid_amount":      inv.PaidAmount,
			"remaining_amount": inv.RemainingAmount,
			"status":           inv.Status,
			"promotion_id":     inv.PromotionID,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *InvoiceStore) AddLines(ctx context.Context, invoiceID int64, lines []domain.InvoiceLine) error {
	if len(lines) == 0 {
		return nil
	}
	for i := range lines {
		lines[i].InvoiceID = invoiceID
	}
	return s.db.WithContext(ctx).Create(&lines).Error
}

func (s *InvoiceStore) DeleteLines(ctx context.Context, invoiceID int64, lineIDs []int64) (int64, error) {
	res := s.db.WithContext(ctx).
		Where("invoice_id = ? AND id IN ?", invoiceID, lineIDs).
		Delete(&domain.InvoiceLine{})
	return res.RowsAffected, res.Error
}

func (s *InvoiceStore) GetPromotionByCode(ctx context.Context, hotelID int64, code string) (*domain.Promotion, error) {
	var p domain.Promotion
	err := s.db.WithContext(ctx).
		Where("hotel_id = ? AND code = ?", hotelID, code).
		First(&p).Error
	if err != nil {
		return nil, mapErr(err)
	}
	return &p, nil
}

func (s *InvoiceStore) IncrementPromotionUsage(ctx context.Context, promotionID int64) error {
	res := s.db.WithContext(ctx).
		Model(&domain.Promotion{}).
		Where("id = ?", promotionID).
		Update("usage_count", gorm.Expr("usage_count + 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *InvoiceStore) CreatePromotion(ctx context.Context, p *domain.Promotion) error {
	return s.db.WithContext(ctx).Create(p).Error
}

func (s *InvoiceStore) UpdatePromotion(ctx context.Context, p *domain.Promotion) error {
	return s.db.WithContext(ctx).Save(p).Error
}

func (s *InvoiceStore) ListPromotions(ctx context.Context, hotelID int64) ([]domain.Promotion, error) {
	var promos []domain.Promotion
	err := s.db.WithContext(ctx).
		Where("hotel_id = ?", hotelID).
		Order("id").
		Find(&promos).Error
	return promos, err
}

func (s *InvoiceStore) GetPromotion(ctx context.Context, id int64) (*domain.Promotion, error) {
	var p domain.Promotion
	if err := s.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, mapErr(err)
	}
	return &p, nil
}
