package booking

import "errors"

var (
	ErrValidation              = errors.New("validation error")
	ErrRoomsNotFound           = errors.New("rooms not found")
	ErrRoomUnavailable         = errors.New("room unavailable")
	ErrGuestNotFound           = errors.New("guest not found")
	ErrBookingNotFound         = errors.New("booking not found")
	ErrGroupNotFound           = errors.New("group booking not found")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)
