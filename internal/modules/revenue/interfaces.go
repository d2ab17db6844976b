package revenue

import (
	"context"
	"time"

	"hotelops/internal/domain"
)

// InvoiceTotal is one committed (non-voided) invoice in the queried window.
type InvoiceTotal struct {
	CreatedAt   time.Time
	TotalAmount float64
}

// LineDetail is one invoice line enriched with its invoice context.
type LineDetail struct {
	InvoiceID   int64                        `json:"invoice_id"`
	InvoiceCode string                       `json:"invoice_code"`
	Description string                       `json:"description"`
	Amount      float64                      `json:"amount"`
	SourceType  domain.InvoiceLineSourceType `json:"source_type"`
	CreatedAt   time.Time                    `json:"created_at"`
}

// Store reads committed data only; the aggregator never writes.
type Store interface {
	ListInvoiceTotals(ctx context.Context, hotelID int64, from, to time.Time) ([]InvoiceTotal, error)
	SumLinesBySource(ctx context.Context, hotelID int64, from, to time.Time) (map[domain.InvoiceLineSourceType]float64, error)
	ListLinesBySource(ctx context.Context, hotelID int64, from, to time.Time, source domain.InvoiceLineSourceType) ([]LineDetail, error)
}

// Cache is satisfied by the redis-backed cache client; a nil cache disables
// caching.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}
