package domain

import "time"

// Hotel is the tenant root. VATRate is the percentage applied to taxable
// invoice lines (10 means 10%).
type Hotel struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name" validate:"required"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	VATRate   float64   `json:"vat_rate" gorm:"default:10"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
