package domain

import "time"

// AuditLog records create/update/status-change actions for attribution.
type AuditLog struct {
	ID        int64     `json:"id"`
	HotelID   int64     `json:"hotel_id" gorm:"index"`
	UserID    int64     `json:"user_id"`
	Action    string    `json:"action"`
	Metadata  string    `json:"metadata,omitempty" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
}
