package booking

import (
	"time"

	"hotelops/internal/domain"
)

type GuestInput struct {
	FullName     string `json:"full_name" binding:"required"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	IDCardNumber string `json:"id_card_number"`
	Nationality  string `json:"nationality"`
}

type DepositInput struct {
	Amount float64              `json:"amount" binding:"required,gt=0"`
	Method domain.PaymentMethod `json:"method"`
}

// RoomRequest is one room entry of a group booking. Either PrimaryGuestID or
// PrimaryGuest must be set.
type RoomRequest struct {
	RoomID           int64         `json:"room_id" binding:"required"`
	StartDate        time.Time     `json:"start_date" binding:"required"`
	EndDate          time.Time     `json:"end_date" binding:"required"`
	PrimaryGuestID   *int64        `json:"primary_guest_id,omitempty"`
	PrimaryGuest     *GuestInput   `json:"primary_guest,omitempty"`
	AdditionalGuests []GuestInput  `json:"additional_guests,omitempty"`
	Deposit          *DepositInput `json:"deposit_payment,omitempty"`
	Notes            string        `json:"notes,omitempty"`
}

type CreateGroupRequest struct {
	HotelID        int64         `json:"hotel_id" binding:"required"`
	PrimaryContact string        `json:"primary_contact"`
	Notes          string        `json:"notes,omitempty"`
	Rooms          []RoomRequest `json:"rooms" binding:"required,min=1"`
}

type GroupBookingResult struct {
	GroupCode string           `json:"group_code"`
	Bookings  []domain.Booking `json:"bookings"`
}

type UpdateStatusRequest struct {
	Status domain.BookingStatus `json:"status" binding:"required"`
	Reason string               `json:"reason,omitempty"`
}
