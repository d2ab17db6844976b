package domain

import "time"

type BookingStatus string

const (
	BookingReserved   BookingStatus = "reserved"
	BookingConfirmed  BookingStatus = "confirmed"
	BookingCheckedIn  BookingStatus = "checked_in"
	BookingCheckedOut BookingStatus = "checked_out"
	BookingCancelled  BookingStatus = "cancelled"
	BookingNoShow     BookingStatus = "no_show"
)

// BlocksAvailability reports whether a booking in this status still holds
// its room/date interval against new bookings. Cancelled and NoShow free the
// interval immediately; CheckedOut keeps history but its interval lies in
// the past by the time the status is reached.
func (s BookingStatus) BlocksAvailability() bool {
	return s != BookingCancelled && s != BookingNoShow
}

// Booking holds a half-open date interval [StartDate, EndDate) on one room.
type Booking struct {
	ID             int64         `json:"id"`
	HotelID        int64         `json:"hotel_id" validate:"required"`
	RoomID         int64         `json:"room_id" validate:"required"`
	PrimaryGuestID *int64        `json:"primary_guest_id,omitempty"`
	GroupCode      string        `json:"group_code,omitempty" gorm:"index"`
	StartDate      time.Time     `json:"start_date" validate:"required"`
	EndDate        time.Time     `json:"end_date" validate:"required"`
	Status         BookingStatus `json:"status"`
	DepositAmount  float64       `json:"deposit_amount,omitempty"`
	TotalPrice     float64       `json:"total_price"`
	Notes          string        `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
	CancelledAt    *time.Time    `json:"cancelled_at,omitempty"`

	PrimaryGuest *Guest `json:"primary_guest,omitempty" gorm:"foreignKey:PrimaryGuestID"`
	Room         *Room  `json:"room,omitempty" gorm:"foreignKey:RoomID"`
}

// BookingGuest links additional guests to a booking beyond the primary one.
type BookingGuest struct {
	ID        int64     `json:"id"`
	BookingID int64     `json:"booking_id" gorm:"index:idx_booking_guest,unique"`
	GuestID   int64     `json:"guest_id" gorm:"index:idx_booking_guest,unique"`
	CreatedAt time.Time `json:"created_at"`
}
