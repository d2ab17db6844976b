package invoice

import "hotelops/internal/domain"

type LineInput struct {
	Description string                       `json:"description" binding:"required"`
	Amount      float64                      `json:"amount" binding:"required,gt=0"`
	SourceType  domain.InvoiceLineSourceType `json:"source_type" binding:"required"`
	SourceID    *int64                       `json:"source_id,omitempty"`
	NonTaxable  bool                         `json:"non_taxable,omitempty"`
}

type CreateInvoiceRequest struct {
	HotelID   int64       `json:"hotel_id" binding:"required"`
	BookingID *int64      `json:"booking_id,omitempty"`
	OrderID   *int64      `json:"order_id,omitempty"`
	GuestID   *int64      `json:"guest_id,omitempty"`
	Lines     []LineInput `json:"lines" binding:"required,min=1"`
}

type AddLinesRequest struct {
	Lines []LineInput `json:"lines" binding:"required,min=1"`
}

type RemoveLinesRequest struct {
	LineIDs []int64 `json:"line_ids" binding:"required,min=1"`
}

type ApplyPromotionRequest struct {
	Code string `json:"code" binding:"required"`
}

type PromotionRequest struct {
	HotelID         int64                `json:"hotel_id" binding:"required"`
	Code            string               `json:"code" binding:"required"`
	Description     string               `json:"description"`
	Type            domain.PromotionType `json:"type" binding:"required"`
	Value           float64              `json:"value" binding:"required,gt=0"`
	MinimumSpend    float64              `json:"minimum_spend"`
	MaximumDiscount float64              `json:"maximum_discount"`
	ValidFrom       string               `json:"valid_from" binding:"required"`
	ValidTo         string               `json:"valid_to" binding:"required"`
	UsageLimit      int                  `json:"usage_limit"`
	Active          *bool                `json:"active,omitempty"`
}
