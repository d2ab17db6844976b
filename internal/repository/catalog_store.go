package repository

import (
	"context"

	"gorm.io/gorm"

	"hotelops/internal/domain"
)

type CatalogStore struct {
	db *gorm.DB
}

func NewCatalogStore(db *gorm.DB) *CatalogStore {
	return &CatalogStore{db: db}
}

func (s *CatalogStore) CreateHotel(ctx context.Context, h *domain.Hotel) error {
	return s.db.WithContext(ctx).Create(h).Error
}

func (s *CatalogStore) UpdateHotel(ctx context.Context, h *domain.Hotel) error {
	return s.db.WithContext(ctx).Save(h).Error
}

func (s *CatalogStore) GetHotel(ctx context.Context, id int64) (*domain.Hotel, error) {
	var h domain.Hotel
	if err := s.db.WithContext(ctx).First(&h, id).Error; err != nil {
		return nil, mapErr(err)
	}
	return &h, nil
}

func (s *CatalogStore) ListHotels(ctx context.Context) ([]domain.Hotel, error) {
	var hotels []domain.Hotel
	err := s.db.WithContext(ctx).Order("id").Find(&hotels).Error
	return hotels, err
}

func (s *CatalogStore) CreateRoomType(ctx context.Context, rt *domain.RoomType) error {
	return s.db.WithContext(ctx).Create(rt).Error
}

func (s *CatalogStore) UpdateRoomType(ctx context.Context, rt *domain.RoomType) error {
	return s.db.WithContext(ctx).Save(rt).Error
}

func (s *CatalogStore) ListRoomTypes(ctx context.Context, hotelID int64) ([]domain.RoomType, error) {
	var types []domain.RoomType
	err := s.db.WithContext(ctx).
		Where("hotel_id = ?", hotelID).
		Order("id").
		Find(&types).Error
	return types, err
}

func (s *CatalogStore) GetRoomType(ctx context.Context, id int64) (*domain.RoomType, error) {
	var rt domain.RoomType
	if err := s.db.WithContext(ctx).First(&rt, id).Error; err != nil {
		return nil, mapErr(err)
	}
	return &rt, nil
}

func (s *CatalogStore) CreateRoom(ctx context.Context, r *domain.Room) error {
	return s.db.WithContext(ctx).Create(r).Error
}

func (s *CatalogStore) UpdateRoom(ctx context.Context, r *domain.Room) error {
	return s.db.WithContext(ctx).Save(r).Error
}

func (s *CatalogStore) GetRoom(ctx context.Context, id int64) (*domain.Room, error) {
	var r domain.Room
	err := s.db.WithContext(ctx).
		Preload("RoomType").
		First(&r, id).Error
	if err != nil {
		return nil, mapErr(err)
	}
	return &r, nil
}

func (s *CatalogStore) ListRooms(ctx context.Context, hotelID int64, status domain.RoomStatus) ([]domain.Room, error) {
	q := s.db.WithContext(ctx).
		Preload("RoomType").
		Where("hotel_id = ?", hotelID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var rooms []domain.Room
	err := q.Order("number").Find(&rooms).Error
	return rooms, err
}

func (s *CatalogStore) UpdateRoomStatus(ctx context.Context, roomID int64, status domain.RoomStatus) error {
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
