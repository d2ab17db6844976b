package domain

import "time"

type PromotionType string

const (
	PromotionPercentage  PromotionType = "percentage"
	PromotionFixedAmount PromotionType = "fixed_amount"
)

type Promotion struct {
	ID              int64         `json:"id"`
	HotelID         int64         `json:"hotel_id" validate:"required"`
	Code            string        `json:"code" gorm:"uniqueIndex;size:32" validate:"required"`
	Description     string        `json:"description,omitempty"`
	Type            PromotionType `json:"type"`
	Value           float64       `json:"value" validate:"gt=0"`
	MinimumSpend    float64       `json:"minimum_spend"`
	MaximumDiscount float64       `json:"maximum_discount"`
	ValidFrom       time.Time     `json:"valid_from"`
	ValidTo         time.Time     `json:"valid_to"`
	UsageLimit      int           `json:"usage_limit"`
	UsageCount      int           `json:"usage_count"`
	Active          bool          `json:"active" gorm:"default:true"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}
