package catalog

import (
	"context"
	"errors"

	"hotelops/internal/domain"
)

type Service struct {
	store Store
	audit AuditSink
}

func NewService(store Store, audit AuditSink) *Service {
	return &Service{store: store, audit: audit}
}

func (s *Service) CreateHotel(ctx context.Context, actorUserID int64, req HotelRequest) (*domain.Hotel, error) {
	h := &domain.Hotel{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
		VATRate: req.VATRate,
	}
	if err := s.store.CreateHotel(ctx, h); err != nil {
		return nil, err
	}
	if s.audit != nil {
		s.audit.Record(ctx, h.ID, actorUserID, "hotel.created", map[string]any{"name": h.Name})
	}
	return h, nil
}

func (s *Service) UpdateHotel(ctx context.Context, actorUserID, id int64, req HotelRequest) (*domain.Hotel, error) {
	h, err := s.store.GetHotel(ctx, id)
	if err != nil {
		return nil, s.mapErr(err)
	}
	h.Name = req.Name
	h.Address = req.Address
	h.Phone = req.Phone
	h.VATRate = req.VATRate
	if err := s.store.UpdateHotel(ctx, h); err != nil {
		return nil, err
	}
	if s.audit != nil {
		s.audit.Record(ctx, h.ID, actorUserID, "hotel.updated", map[string]any{"name": h.Name})
	}
	return h, nil
}

func (s *Service) GetHotel(ctx context.Context, id int64) (*domain.Hotel, error) {
	h, err := s.store.GetHotel(ctx, id)
	if err != nil {
		return nil, s.mapErr(err)
	}
	return h, nil
}

func (s *Service) ListHotels(ctx context.Context) ([]domain.Hotel, error) {
	return s.store.ListHotels(ctx)
}

func (s *Service) CreateRoomType(ctx context.Context, actorUserID int64, req RoomTypeRequest) (*domain.RoomType, error) {
	rt := &domain.RoomType{
		HotelID:     req.HotelID,
		Name:        req.Name,
		Description: req.Description,
		BasePrice:   req.BasePrice,
		Capacity:    req.Capacity,
	}
	if err := s.store.CreateRoomType(ctx, rt); err != nil {
		return nil, err
	}
	if s.audit != nil {
		s.audit.Record(ctx, rt.HotelID, actorUserID, "room_type.created", map[string]any{"name": rt.Name})
	}
	return rt, nil
}

func (s *Service) UpdateRoomType(ctx context.Context, actorUserID, id int64, req RoomTypeRequest) (*domain.RoomType, error) {
	rt, err := s.store.GetRoomType(ctx, id)
	if err != nil {
		return nil, s.mapErr(err)
	}
	rt.Name = req.Name
	rt.Description = req.Description
	rt.BasePrice = req.BasePrice
	rt.Capacity = req.Capacity
	if err := s.store.UpdateRoomType(ctx, rt); err != nil {
		return nil, err
	}
	if s.audit != nil {
		s.audit.Record(ctx, rt.HotelID, actorUserID, "room_type.updated", map[string]any{"id": rt.ID})
	}
	return rt, nil
}

func (s *Service) ListRoomTypes(ctx context.Context, hotelID int64) ([]domain.RoomType, error) {
	return s.store.ListRoomTypes(ctx, hotelID)
}

func (s *Service) CreateRoom(ctx context.Context, actorUserID int64, req RoomRequest) (*domain.Room, error) {
	if _, err := s.store.GetRoomType(ctx, req.RoomTypeID); err != nil {
		return nil, s.mapErr(err)
	}
	r := &domain.Room{
		HotelID:    req.HotelID,
		RoomTypeID: req.RoomTypeID,
		Number:     req.Number,
		Floor:      req.Floor,
		Status:     domain.RoomAvailable,
	}
	if err := s.store.CreateRoom(ctx, r); err != nil {
		return nil, err
	}
	if s.audit != nil {
		s.audit.Record(ctx, r.HotelID, actorUserID, "room.created", map[string]any{"number": r.Number})
	}
	return r, nil
}

func (s *Service) UpdateRoom(ctx context.Context, actorUserID, id int64, req RoomRequest) (*domain.Room, error) {
	r, err := s.store.GetRoom(ctx, id)
	if err != nil {
		return nil, s.mapErr(err)
	}
	r.RoomTypeID = req.RoomTypeID
	r.Number = req.Number
	r.Floor = req.Floor
	if err := s.store.UpdateRoom(ctx, r); err != nil {
		return nil, err
	}
	if s.audit != nil {
		s.audit.Record(ctx, r.HotelID, actorUserID, "room.updated", map[string]any{"id": r.ID})
	}
	return r, nil
}

func (s *Service) ListRooms(ctx context.Context, hotelID int64, status domain.RoomStatus) ([]domain.Room, error) {
	if status != "" && !status.Valid() {
		return nil, ErrValidation
	}
	return s.store.ListRooms(ctx, hotelID, status)
}

// UpdateRoomStatus mutates the room's display status, e.g. marking it out of
// service for maintenance.
func (s *Service) UpdateRoomStatus(ctx context.Context, actorUserID, roomID int64, status domain.RoomStatus) (*domain.Room, error) {
	if !status.Valid() {
		return nil, ErrValidation
	}
	r, err := s.store.GetRoom(ctx, roomID)
	if err != nil {
		return nil, s.mapErr(err)
	}
	if err := s.store.UpdateRoomStatus(ctx, roomID, status); err != nil {
		return nil, err
	}
	if s.audit != nil {
		s.audit.Record(ctx, r.HotelID, actorUserID, "room.status_changed", map[string]any{
			"room_id": roomID,
			"from":    r.Status,
			"to":      status,
		})
	}
	r.Status = status
	return r, nil
}

func (s *Service) mapErr(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
