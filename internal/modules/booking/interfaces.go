package booking

import (
	"context"
	"time"

	"hotelops/internal/domain"
)

// Store is the persistence boundary for bookings. InTx runs fn inside one
// transaction; the Store handed to fn is bound to that transaction, so the
// availability read and the subsequent writes share a single unit of work.
type Store interface {
	InTx(ctx context.Context, fn func(tx Store) error) error

	GetRoomsByIDs(ctx context.Context, hotelID int64, ids []int64) ([]domain.Room, error)
	UpdateRoomStatus(ctx context.Context, roomID int64, status domain.RoomStatus) error

	// HasConflict reports whether a non-cancelled booking on roomID overlaps
	// the half-open interval [start, end), excluding excludeBookingID when > 0.
	HasConflict(ctx context.Context, roomID int64, start, end time.Time, excludeBookingID int64) (bool, error)

	CreateBooking(ctx context.Context, b *domain.Booking) error
	GetBookingByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetBookingsByGroupCode(ctx context.Context, code string) ([]domain.Booking, error)
	UpdateBookingStatus(ctx context.Context, id int64, status domain.BookingStatus, cancelledAt *time.Time) error

	CreateGuest(ctx context.Context, g *domain.Guest) error
	GetGuestByID(ctx context.Context, id int64) (*domain.Guest, error)
	FindGuestByIdentity(ctx context.Context, phone, idCard string) (*domain.Guest, error)
	SearchGuests(ctx context.Context, phone, idCard string) ([]domain.Guest, error)
	CreateBookingGuest(ctx context.Context, bg *domain.BookingGuest) error

	CreatePayment(ctx context.Context, p *domain.Payment) error
}

// AuditSink receives create/update/status-change events for attribution.
type AuditSink interface {
	Record(ctx context.Context, hotelID, userID int64, action string, metadata any)
}
