package booking

import (
	"context"
	"errors"
	"time"

	"hotelops/internal/domain"
)

type Service struct {
	store Store
	audit AuditSink
}

func NewService(store Store, audit AuditSink) *Service {
	return &Service{store: store, audit: audit}
}

// HasConflict is the availability check: a conflict exists iff some blocking
// booking B on the room satisfies B.StartDate < end AND start < B.EndDate.
// Back-to-back bookings touching at the boundary do not conflict.
func (s *Service) HasConflict(ctx context.Context, roomID int64, start, end time.Time, excludeBookingID int64) (bool, error) {
	if !start.Before(end) {
		return false, ErrValidation
	}
	return s.store.HasConflict(ctx, roomID, start, end, excludeBookingID)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.store.GetBookingByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}

var allowedTransitions = map[domain.BookingStatus][]domain.BookingStatus{
	domain.BookingReserved:  {domain.BookingConfirmed, domain.BookingCheckedIn, domain.BookingCancelled, domain.BookingNoShow},
	domain.BookingConfirmed: {domain.BookingCheckedIn, domain.BookingCancelled, domain.BookingNoShow},
	domain.BookingCheckedIn: {domain.BookingCheckedOut, domain.BookingCancelled},
}

func transitionAllowed(from, to domain.BookingStatus) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// UpdateStatus moves a booking through its lifecycle and keeps the room's
// display status in step: check-in occupies the room, check-out frees it.
func (s *Service) UpdateStatus(ctx context.Context, bookingID, actorUserID int64, req UpdateStatusRequest) (*domain.Booking, error) {
	b, err := s.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !transitionAllowed(b.Status, req.Status) {
		return nil, ErrInvalidStatusTransition
	}

	err = s.store.InTx(ctx, func(tx Store) error {
		var cancelledAt *time.Time
		if req.Status == domain.BookingCancelled {
			now := time.Now().UTC()
			cancelledAt = &now
		}
		if err := tx.UpdateBookingStatus(ctx, bookingID, req.Status, cancelledAt); err != nil {
			return err
		}

		switch req.Status {
		case domain.BookingCheckedIn:
			return tx.UpdateRoomStatus(ctx, b.RoomID, domain.RoomOccupied)
		case domain.BookingCheckedOut:
			return tx.UpdateRoomStatus(ctx, b.RoomID, domain.RoomAvailable)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.audit != nil {
		s.audit.Record(ctx, b.HotelID, actorUserID, "booking.status_changed", map[string]any{
			"booking_id": bookingID,
			"from":       b.Status,
			"to":         req.Status,
			"reason":     req.Reason,
		})
	}

	return s.GetByID(ctx, bookingID)
}

// SearchGuests looks up guest history by phone and/or ID card number.
func (s *Service) SearchGuests(ctx context.Context, phone, idCard string) ([]domain.Guest, error) {
	if phone == "" && idCard == "" {
		return nil, ErrValidation
	}
	return s.store.SearchGuests(ctx, phone, idCard)
}

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
