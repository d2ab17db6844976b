package domain

import "time"

type RoomStatus string

const (
	RoomAvailable    RoomStatus = "available"
	RoomOccupied     RoomStatus = "occupied"
	RoomReserved     RoomStatus = "reserved"
	RoomOutOfService RoomStatus = "out_of_service"
	RoomOutOfOrder   RoomStatus = "out_of_order"
)

func (s RoomStatus) Valid() bool {
	switch s {
	case RoomAvailable, RoomOccupied, RoomReserved, RoomOutOfService, RoomOutOfOrder:
		return true
	}
	return false
}

type RoomType struct {
	ID          int64     `json:"id"`
	HotelID     int64     `json:"hotel_id" validate:"required"`
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
	BasePrice   float64   `json:"base_price" validate:"gte=0"`
	Capacity    int       `json:"capacity"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Room struct {
	ID         int64      `json:"id"`
	HotelID    int64      `json:"hotel_id" validate:"required"`
	RoomTypeID int64      `json:"room_type_id" validate:"required"`
	Number     string     `json:"number" validate:"required"`
	Floor      int        `json:"floor"`
	Status     RoomStatus `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`

	RoomType *RoomType `json:"room_type,omitempty" gorm:"foreignKey:RoomTypeID"`
}
