package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"hotelops/internal/domain"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) CreateHotel(ctx context.Context, h *domain.Hotel) error {
	args := m.Called(ctx, h)
	return args.Error(0)
}

func (m *MockStore) UpdateHotel(ctx context.Context, h *domain.Hotel) error {
	args := m.Called(ctx, h)
	return args.Error(0)
}

func (m *MockStore) GetHotel(ctx context.Context, id int64) (*domain.Hotel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hotel), args.Error(1)
}

func (m *MockStore) ListHotels(ctx context.Context) ([]domain.Hotel, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Hotel), args.Error(1)
}

func (m *MockStore) CreateRoomType(ctx context.Context, rt *domain.RoomType) error {
	args := m.Called(ctx, rt)
	return args.Error(0)
}

func (m *MockStore) UpdateRoomType(ctx context.Context, rt *domain.RoomType) error {
	args := m.Called(ctx, rt)
	return args.Error(0)
}

func (m *MockStore) ListRoomTypes(ctx context.Context, hotelID int64) ([]domain.RoomType, error) {
	args := m.Called(ctx, hotelID)
	return args.Get(0).([]domain.RoomType), args.Error(1)
}

func (m *MockStore) GetRoomType(ctx context.Context, id int64) (*domain.RoomType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RoomType), args.Error(1)
}

func (m *MockStore) CreateRoom(ctx context.Context, r *domain.Room) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockStore) UpdateRoom(ctx context.Context, r *domain.Room) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockStore) GetRoom(ctx context.Context, id int64) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockStore) ListRooms(ctx context.Context, hotelID int64, status domain.RoomStatus) ([]domain.Room, error) {
	args := m.Called(ctx, hotelID, status)
	return args.Get(0).([]domain.Room), args.Error(1)
}

func (m *MockStore) UpdateRoomStatus(ctx context.Context, roomID int64, status domain.RoomStatus) error {
	args := m.Called(ctx, roomID, status)
	return args.Error(0)
}

func TestCreateRoom_RequiresExistingRoomType(t *testing.T) {
	store := new(MockStore)
	service := NewService(store, nil)

	store.On("GetRoomType", mock.Anything, int64(404)).Return(nil, domain.ErrNotFound)

	_, err := service.CreateRoom(context.Background(), 9, RoomRequest{
		HotelID: 1, RoomTypeID: 404, Number: "101",
	})

	assert.ErrorIs(t, err, ErrNotFound)
	store.AssertNotCalled(t, "CreateRoom")
}

func TestCreateRoom_DefaultsToAvailable(t *testing.T) {
	store := new(MockStore)
	service := NewService(store, nil)

	store.On("GetRoomType", mock.Anything, int64(2)).Return(&domain.RoomType{ID: 2, HotelID: 1}, nil)
	store.On("CreateRoom", mock.Anything, mock.Anything).Return(nil)

	r, err := service.CreateRoom(context.Background(), 9, RoomRequest{
		HotelID: 1, RoomTypeID: 2, Number: "101", Floor: 1,
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.RoomAvailable, r.Status)
}

func TestUpdateRoomStatus_RejectsUnknownStatus(t *testing.T) {
	store := new(MockStore)
	service := NewService(store, nil)

	_, err := service.UpdateRoomStatus(context.Background(), 9, 101, "broken")

	assert.ErrorIs(t, err, ErrValidation)
	store.AssertNotCalled(t, "UpdateRoomStatus")
}

func TestUpdateRoomStatus_Success(t *testing.T) {
	store := new(MockStore)
	service := NewService(store, nil)

	store.On("GetRoom", mock.Anything, int64(101)).Return(&domain.Room{
		ID: 101, HotelID: 1, Status: domain.RoomAvailable,
	}, nil)
	store.On("UpdateRoomStatus", mock.Anything, int64(101), domain.RoomOutOfService).Return(nil)

	r, err := service.UpdateRoomStatus(context.Background(), 9, 101, domain.RoomOutOfService)

	assert.NoError(t, err)
	assert.Equal(t, domain.RoomOutOfService, r.Status)
	store.AssertExpectations(t)
}

func TestListRooms_RejectsUnknownStatusFilter(t *testing.T) {
	service := NewService(new(MockStore), nil)

	_, err := service.ListRooms(context.Background(), 1, "haunted")
	assert.ErrorIs(t, err, ErrValidation)
}
