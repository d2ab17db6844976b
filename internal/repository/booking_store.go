package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"hotelops/internal/domain"
	"hotelops/internal/modules/booking"
)

// BookingStore persists bookings, guests and their payments. InTx hands the
// callback a copy bound to the transaction handle so every read and write in
// the callback shares one unit of work.
type BookingStore struct {
	db *gorm.DB
}

func NewBookingStore(db *gorm.DB) *BookingStore {
	return &BookingStore{db: db}
}

func (s *BookingStore) InTx(ctx context.Context, fn func(tx booking.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&BookingStore{db: tx})
	})
}

func (s *BookingStore) GetRoomsByIDs(ctx context.Context, hotelID int64, ids []int64) ([]domain.Room, error) {
	var rooms []domain.Room
	err := s.db.WithContext(ctx).
		Preload("RoomType").
		Where("hotel_id = ? AND id IN ?", hotelID, ids).
		Find(&rooms).Error
	return rooms, err
}

func (s *BookingStore) UpdateRoomStatus(ctx context.Context, roomID int64, status domain.RoomStatus) error {
	res := s.db.WithContext(ctx).
		Model(&domain.Room{}).
		Where("id = ?", roomID).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *BookingStore) HasConflict(ctx context.Context, roomID int64, start, end time.Time, excludeBookingID int64) (bool, error) {
	q := s.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("room_id = ?", roomID).
		Where("status NOT IN ?", []domain.BookingStatus{domain.BookingCancelled, domain.BookingNoShow}).
		Where("start_date < ? AND ? < end_date", end, start)
	if excludeBookingID > 0 {
		q = q.Where("id <> ?", excludeBookingID)
	}
	var cnt int64
	if err := q.Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (s *BookingStore) CreateBooking(ctx context.Context, b *domain.Booking) error {
	return s.db.WithContext(ctx).Create(b).Error
}

func (s *BookingStore) GetBookingByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	err := s.db.WithContext(ctx).
		Preload("PrimaryGuest").
		Preload("Room").
		Preload("Room.RoomType").
		First(&b, id).Error
	if err != nil {
		return nil, mapErr(err)
	}
	return &b, nil
}

func (s *BookingStore) GetBookingsByGroupCode(ctx context.Context, code string) ([]domain.Booking, error) {
	var bookings []domain.Booking
	err := s.db.WithContext(ctx).
		Preload("PrimaryGuest").
		Preload("Room").
		Preload("Room.RoomType").
		Where("group_code = ?", code).
		Order("id").
		Find(&bookings).Error
	return bookings, err
}

func (s *BookingStore) UpdateBookingStatus(ctx context.Context, id int64, status domain.BookingStatus, cancelledAt *time.Time) error {
	updates := map[string]any{"status": status}
	if cancelledAt != nil {
		updates["cancelled_at"] = cancelledAt
	}
	res := s.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *BookingStore) CreateGuest(ctx context.Context, g *domain.Guest) error {
	return s.db.WithContext(ctx).Create(g).Error
}

func (s *BookingStore) GetGuestByID(ctx context.Context, id int64) (*domain.Guest, error) {
	var g domain.Guest
	if err := s.db.WithContext(ctx).First(&g, id).Error; err != nil {
		return nil, mapErr(err)
	}
	return &g, nil
}

func (s *BookingStore) FindGuestByIdentity(ctx context.Context, phone, idCard string) (*domain.Guest, error) {
	var g domain.Guest
	err := s.db.WithContext(ctx).
		Where("phone = ? AND id_card_number = ?", phone, idCard).
		First(&g).Error
	if err != nil {
		return nil, mapErr(err)
	}
	return &g, nil
}

func (s *BookingStore) SearchGuests(ctx context.Context, phone, idCard string) ([]domain.Guest, error) {
	q := s.db.WithContext(ctx).Model(&domain.Guest{})
	if phone != "" {
		q = q.Where("phone = ?", phone)
	}
	if idCard != "" {
		q = q.Where("id_card_number = ?", idCard)
	}
	var guests []domain.Guest
	err := q.Order("id").Find(&guests).Error
	return guests, err
}

func (s *BookingStore) CreateBookingGuest(ctx context.Context, bg *domain.BookingGuest) error {
	return s.db.WithContext(ctx).Create(bg).Error
}

func (s *BookingStore) CreatePayment(ctx context.Context, p *domain.Payment) error {
	return s.db.WithContext(ctx).Create(p).Error
}
