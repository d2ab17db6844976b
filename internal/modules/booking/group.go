package booking

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"hotelops/internal/domain"
)

// CreateGroup books every requested room as one atomic unit of work: room
// resolution, availability checks, guest materialization, bookings, guest
// links and deposit payments either all commit or none do.
func (s *Service) CreateGroup(ctx context.Context, actorUserID int64, req CreateGroupRequest) (*GroupBookingResult, error) {
	if len(req.Rooms) == 0 {
		return nil, ErrValidation
	}
	for i, r := range req.Rooms {
		if !r.StartDate.Before(r.EndDate) {
			return nil, ErrValidation
		}
		if r.PrimaryGuestID == nil && r.PrimaryGuest == nil {
			return nil, ErrValidation
		}
		// Entries within one request must not overlap each other either; the
		// store check only sees already-committed bookings.
		for _, prev := range req.Rooms[:i] {
			if prev.RoomID == r.RoomID && prev.StartDate.Before(r.EndDate) && r.StartDate.Before(prev.EndDate) {
				return nil, ErrRoomUnavailable
			}
		}
	}

	groupCode := newGroupCode()
	result := &GroupBookingResult{GroupCode: groupCode}

	err := s.store.InTx(ctx, func(tx Store) error {
		roomIDs := make([]int64, 0, len(req.Rooms))
		for _, r := range req.Rooms {
			roomIDs = append(roomIDs, r.RoomID)
		}

		rooms, err := tx.GetRoomsByIDs(ctx, req.HotelID, roomIDs)
		if err != nil {
			return err
		}
		roomsByID := make(map[int64]domain.Room, len(rooms))
		for _, room := range rooms {
			roomsByID[room.ID] = room
		}
		for _, id := range roomIDs {
			if _, ok := roomsByID[id]; !ok {
				return ErrRoomsNotFound
			}
		}

		// Availability for every entry is decided before any write; one
		// conflict fails the whole group.
		for _, r := range req.Rooms {
			conflict, err := tx.HasConflict(ctx, r.RoomID, r.StartDate, r.EndDate, 0)
			if err != nil {
				return err
			}
			if conflict {
				return ErrRoomUnavailable
			}
		}

		for _, r := range req.Rooms {
			guest, err := s.resolvePrimaryGuest(ctx, tx, r)
			if err != nil {
				return err
			}

			room := roomsByID[r.RoomID]
			b := &domain.Booking{
				HotelID:        req.HotelID,
				RoomID:         r.RoomID,
				PrimaryGuestID: &guest.ID,
				GroupCode:      groupCode,
				StartDate:      r.StartDate,
				EndDate:        r.EndDate,
				Status:         domain.BookingConfirmed,
				TotalPrice:     stayPrice(room, r.StartDate, r.EndDate),
				Notes:          firstNonEmpty(r.Notes, req.Notes),
			}
			if r.Deposit != nil {
				b.DepositAmount = r.Deposit.Amount
			}
			if err := tx.CreateBooking(ctx, b); err != nil {
				if isExclusionViolation(err) {
					return ErrRoomUnavailable
				}
				return err
			}

			for _, g := range r.AdditionalGuests {
				extra, err := s.getOrCreateGuest(ctx, tx, g)
				if err != nil {
					return err
				}
				if err := tx.CreateBookingGuest(ctx, &domain.BookingGuest{BookingID: b.ID, GuestID: extra.ID}); err != nil {
					return err
				}
			}

			if r.Deposit != nil && r.Deposit.Amount > 0 {
				method := r.Deposit.Method
				if method == "" {
					method = domain.MethodCash
				}
				p := &domain.Payment{
					HotelID:   req.HotelID,
					BookingID: &b.ID,
					Amount:    r.Deposit.Amount,
					Type:      domain.PaymentDeposit,
					Method:    method,
					Status:    domain.PaymentCompleted,
					PaidAt:    time.Now().UTC(),
				}
				if err := tx.CreatePayment(ctx, p); err != nil {
					return err
				}
			}

			b.PrimaryGuest = guest
			result.Bookings = append(result.Bookings, *b)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.audit != nil {
		s.audit.Record(ctx, req.HotelID, actorUserID, "booking.group_created", map[string]any{
			"group_code": groupCode,
			"rooms":      len(result.Bookings),
		})
	}

	return result, nil
}

// GetGroup returns all bookings created under one group code.
func (s *Service) GetGroup(ctx context.Context, code string) (*GroupBookingResult, error) {
	bookings, err := s.store.GetBookingsByGroupCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return nil, ErrGroupNotFound
	}
	return &GroupBookingResult{GroupCode: code, Bookings: bookings}, nil
}

func (s *Service) resolvePrimaryGuest(ctx context.Context, tx Store, r RoomRequest) (*domain.Guest, error) {
	if r.PrimaryGuestID != nil {
		g, err := tx.GetGuestByID(ctx, *r.PrimaryGuestID)
		if err != nil {
			if isNotFound(err) {
				return nil, ErrGuestNotFound
			}
			return nil, err
		}
		return g, nil
	}
	return s.getOrCreateGuest(ctx, tx, *r.PrimaryGuest)
}

// getOrCreateGuest reuses a guest matching phone + ID card, otherwise
// creates a new row inside the current transaction.
func (s *Service) getOrCreateGuest(ctx context.Context, tx Store, in GuestInput) (*domain.Guest, error) {
	if in.Phone != "" && in.IDCardNumber != "" {
		g, err := tx.FindGuestByIdentity(ctx, in.Phone, in.IDCardNumber)
		if err == nil {
			return g, nil
		}
		if !isNotFound(err) {
			return nil, err
		}
	}

	g := &domain.Guest{
		FullName:     in.FullName,
		Phone:        in.Phone,
		Email:        in.Email,
		IDCardNumber: in.IDCardNumber,
		Nationality:  in.Nationality,
	}
	if err := tx.CreateGuest(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func stayPrice(room domain.Room, start, end time.Time) float64 {
	nights := int(math.Ceil(end.Sub(start).Hours() / 24))
	if nights < 1 {
		nights = 1
	}
	var base float64
	if room.RoomType != nil {
		base = room.RoomType.BasePrice
	}
	return math.Round(base*float64(nights)*100) / 100
}

// isExclusionViolation matches the PostgreSQL second line of defense: the
// bookings_no_overlap exclusion constraint (23P01) or a unique index (23505).
func isExclusionViolation(err error) bool {
	if pgErr, ok := err.(*pgconn.PgError); ok {
		return pgErr.Code == "23P01" || pgErr.Code == "23505"
	}
	return false
}

func newGroupCode() string {
	return "GRP-" + strings.ToUpper(uuid.NewString()[:8])
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
