package domain

import "time"

// Guest identity is phone + ID card number, expected unique per guest.
type Guest struct {
	ID           int64     `json:"id"`
	FullName     string    `json:"full_name" validate:"required"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email,omitempty"`
	IDCardNumber string    `json:"id_card_number"`
	Nationality  string    `json:"nationality,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
