package catalog

import (
	"context"

	"hotelops/internal/domain"
)

type Store interface {
	CreateHotel(ctx context.Context, h *domain.Hotel) error
	UpdateHotel(ctx context.Context, h *domain.Hotel) error
	GetHotel(ctx context.Context, id int64) (*domain.Hotel, error)
	ListHotels(ctx context.Context) ([]domain.Hotel, error)

	CreateRoomType(ctx context.Context, rt *domain.RoomType) error
	UpdateRoomType(ctx context.Context, rt *domain.RoomType) error
	ListRoomTypes(ctx context.Context, hotelID int64) ([]domain.RoomType, error)
	GetRoomType(ctx context.Context, id int64) (*domain.RoomType, error)

	CreateRoom(ctx context.Context, r *domain.Room) error
	UpdateRoom(ctx context.Context, r *domain.Room) error
	GetRoom(ctx context.Context, id int64) (*domain.Room, error)
	ListRooms(ctx context.Context, hotelID int64, status domain.RoomStatus) ([]domain.Room, error)
	UpdateRoomStatus(ctx context.Context, roomID int64, status domain.RoomStatus) error
}

type AuditSink interface {
	Record(ctx context.Context, hotelID, userID int64, action string, metadata any)
}
