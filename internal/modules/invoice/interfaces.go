package invoice

import (
	"context"

	"hotelops/internal/domain"
)

type Store interface {
	InTx(ctx context.Context, fn func(tx Store) error) error

	HotelVATRate(ctx context.Context, hotelID int64) (float64, error)

	CreateInvoice(ctx context.Context, inv *domain.Invoice) error
	GetInvoice(ctx context.Context, id int64) (*domain.Invoice, error)
	SaveTotals(ctx context.Context, inv *domain.Invoice) error

	AddLines(ctx context.Context, invoiceID int64, lines []domain.InvoiceLine) error
	DeleteLines(ctx context.Context, invoiceID int64, lineIDs []int64) (int64, error)

	GetPromotionByCode(ctx context.Context, hotelID int64, code string) (*domain.Promotion, error)
	IncrementPromotionUsage(ctx context.Context, promotionID int64) error

	CreatePromotion(ctx context.Context, p *domain.Promotion) error
	UpdatePromotion(ctx context.Context, p *domain.Promotion) error
	ListPromotions(ctx context.Context, hotelID int64) ([]domain.Promotion, error)
	GetPromotion(ctx context.Context, id int64) (*domain.Promotion, error)
}

type AuditSink interface {
	Record(ctx context.Context, hotelID, userID int64, action string, metadata any)
}
