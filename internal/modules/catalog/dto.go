package catalog

import "hotelops/internal/domain"

type HotelRequest struct {
	Name    string  `json:"name" binding:"required"`
	Address string  `json:"address"`
	Phone   string  `json:"phone"`
	VATRate float64 `json:"vat_rate" binding:"gte=0,lte=100"`
}

type RoomTypeRequest struct {
	HotelID     int64   `json:"hotel_id" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	BasePrice   float64 `json:"base_price" binding:"gte=0"`
	Capacity    int     `json:"capacity" binding:"gte=1"`
}

type RoomRequest struct {
	HotelID    int64  `json:"hotel_id" binding:"required"`
	RoomTypeID int64  `json:"room_type_id" binding:"required"`
	Number     string `json:"number" binding:"required"`
	Floor      int    `json:"floor"`
}

type RoomStatusRequest struct {
	Status domain.RoomStatus `json:"status" binding:"required"`
}
