package booking

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"hotelops/internal/domain"
)

type MockStore struct {
	mock.Mock
	nextBookingID int64
}

func (m *MockStore) InTx(ctx context.Context, fn func(tx Store) error) error {
	return fn(m)
}

func (m *MockStore) GetRoomsByIDs(ctx context.Context, hotelID int64, ids []int64) ([]domain.Room, error) {
	args := m.Called(ctx, hotelID, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Room), args.Error(1)
}

func (m *MockStore) UpdateRoomStatus(ctx context.Context, roomID int64, status domain.RoomStatus) error {
	args := m.Called(ctx, roomID, status)
	return args.Error(0)
}

func (m *MockStore) HasConflict(ctx context.Context, roomID int64, start, end time.Time, excludeBookingID int64) (bool, error) {
	args := m.Called(ctx, roomID, start, end, excludeBookingID)
	return args.Bool(0), args.Error(1)
}

func (m *MockStore) CreateBooking(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if b.ID == 0 {
		m.nextBookingID++
		b.ID = m.nextBookingID
	}
	return args.Error(0)
}

func (m *MockStore) GetBookingByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockStore) GetBookingsByGroupCode(ctx context.Context, code string) ([]domain.Booking, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockStore) UpdateBookingStatus(ctx context.Context, id int64, status domain.BookingStatus, cancelledAt *time.Time) error {
	args := m.Called(ctx, id, status, cancelledAt)
	return args.Error(0)
}

func (m *MockStore) CreateGuest(ctx context.Context, g *domain.Guest) error {
	args := m.Called(ctx, g)
	if g.ID == 0 {
		g.ID = 777
	}
	return args.Error(0)
}

func (m *MockStore) GetGuestByID(ctx context.Context, id int64) (*domain.Guest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Guest), args.Error(1)
}

func (m *MockStore) FindGuestByIdentity(ctx context.Context, phone, idCard string) (*domain.Guest, error) {
	args := m.Called(ctx, phone, idCard)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Guest), args.Error(1)
}

func (m *MockStore) SearchGuests(ctx context.Context, phone, idCard string) ([]domain.Guest, error) {
	args := m.Called(ctx, phone, idCard)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Guest), args.Error(1)
}

func (m *MockStore) CreateBookingGuest(ctx context.Context, bg *domain.BookingGuest) error {
	args := m.Called(ctx, bg)
	return args.Error(0)
}

func (m *MockStore) CreatePayment(ctx context.Context, p *domain.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func testRooms() []domain.Room {
	standard := &domain.RoomType{ID: 1, HotelID: 1, Name: "Standard", BasePrice: 550000}
	return []domain.Room{
		{ID: 101, HotelID: 1, RoomTypeID: 1, Number: "101", Status: domain.RoomAvailable, RoomType: standard},
		{ID: 102, HotelID: 1, RoomTypeID: 1, Number: "102", Status: domain.RoomAvailable, RoomType: standard},
	}
}

func TestHasConflict_RejectsEmptyInterval(t *testing.T) {
	store := new(MockStore)
	service := NewService(store, nil)

	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	_, err := service.HasConflict(context.Background(), 101, day, day, 0)

	assert.ErrorIs(t, err, ErrValidation)
	store.AssertNotCalled(t, "HasConflict")
}

func TestHasConflict_BackToBackAllowed(t *testing.T) {
	store := new(MockStore)
	service := NewService(store, nil)

	// [10th, 12th) then a query for [12th, 14th): the store is asked with the
	// half-open interval and reports no overlap.
	start := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	store.On("HasConflict", mock.Anything, int64(101), start, end, int64(0)).Return(false, nil)

	conflict, err := service.HasConflict(context.Background(), 101, start, end, 0)

	assert.NoError(t, err)
	assert.False(t, conflict)
	store.AssertExpectations(t)
}

func TestCreateGroup_Success(t *testing.T) {
	store := new(MockStore)
	service := NewService(store, nil)

	start := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)

	store.On("GetRoomsByIDs", mock.Anything, int64(1), []int64{101, 102}).Return(testRooms(), nil)
	store.On("HasConflict", mock.Anything, int64(101), start, end, int64(0)).Return(false, nil)
	store.On("HasConflict", mock.Anything, int64(102), start, end, int64(0)).Return(false, nil)
	store.On("FindGuestByIdentity", mock.Anything, "+84901", "C123").Return(nil, domain.ErrNotFound)
	store.On("CreateGuest", mock.Anything, mock.Anything).Return(nil)
	store.On("GetGuestByID", mock.Anything, int64(55)).Return(&domain.Guest{ID: 55, FullName: "Returning Guest"}, nil)
	store.On("CreateBooking", mock.Anything, mock.Anything).Return(nil)
	store.On("CreatePayment", mock.Anything, mock.Anything).Return(nil)

	guestID := int64(55)
	req := CreateGroupRequest{
		HotelID: 1,
		Rooms: []RoomRequest{
			{
				RoomID:       101,
				StartDate:    start,
				EndDate:      end,
				PrimaryGuest: &GuestInput{FullName: "New Guest", Phone: "+84901", IDCardNumber: "C123"},
				Deposit:      &DepositInput{Amount: 200000, Method: domain.MethodCash},
			},
			{
				RoomID:         102,
				StartDate:      start,
				EndDate:        end,
				PrimaryGuestID: &guestID,
			},
		},
	}

	result, err := service.CreateGroup(context.Background(), 9, req)

	assert.NoError(t, err)
	assert.Len(t, result.Bookings, 2)
	assert.True(t, strings.HasPrefix(result.GroupCode, "GRP-"))
	for _, b := range result.Bookings {
		assert.Equal(t, result.GroupCode, b.GroupCode)
		assert.Equal(t, domain.BookingConfirmed, b.Status)
		assert.Equal(t, 1100000.0, b.TotalPrice) // 2 nights x 550000
	}
	assert.Equal(t, 200000.0, result.Bookings[0].DepositAmount)
	store.AssertExpectations(t)
}

func TestCreateGroup_OneConflictFailsWholeGroup(t *testing.T) {
	store := new(MockStore)
	service := NewService(store, nil)

	start := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)

	store.On("GetRoomsByIDs", mock.Anything, int64(1), []int64{101, 102}).Return(testRooms(), nil)
	store.On("HasConflict", mock.Anything, int64(101), start, end, int64(0)).Return(false, nil)
	store.On("HasConflict", mock.Anything, int64(102), start, end, int64(0)).Return(true, nil)

	guestID := int64(55)
	req := CreateGroupRequest{
		HotelID: 1,
		Rooms: []RoomRequest{
			{RoomID: 101, StartDate: start, EndDate: end, PrimaryGuestID: &guestID},
			{RoomID: 102, StartDate: start, EndDate: end, PrimaryGuestID: &guestID},
		},
	}

	_, err := service.CreateGroup(context.Background(), 9, req)

	assert.ErrorIs(t, err, ErrRoomUnavailable)
	// No write happens for any room once one conflict is found.
	store.AssertNotCalled(t, "CreateBooking")
	store.AssertNotCalled(t, "CreatePayment")
}

func TestCreateGroup_OverlappingEntriesInSameRequest(t *testing.T) {
	store := new(MockStore)
	service := NewService(store, nil)

	start := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)

	guestID := int64(55)
	req := CreateGroupRequest{
		HotelID: 1,
		Rooms: []RoomRequest{
			{RoomID: 101, StartDate: start, EndDate: end, PrimaryGuestID: &guestID},
			{RoomID: 101, StartDate: start.AddDate(0, 0, 1), EndDate: end.AddDate(0, 0, 1), PrimaryGuestID: &guestID},
		},
	}

	_, err := service.CreateGroup(context.Background(), 9, req)

	// The two entries collide with each other even though no committed
	// booking exists yet.
	assert.ErrorIs(t, err, ErrRoomUnavailable)
	store.AssertNotCalled(t, "GetRoomsByIDs")
	store.AssertNotCalled(t, "CreateBooking")
}

func TestCreateGroup_BackToBackEntriesSameRoomAllowed(t *testing.T) {
	store := new(MockStore)
	service := NewService(store, nil)

	start := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	mid := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	store.On("GetRoomsByIDs", mock.Anything, int64(1), []int64{101, 101}).Return(testRooms()[:1], nil)
	store.On("HasConflict", mock.Anything, int64(101), start, mid, int64(0)).Return(false, nil)
	store.On("HasConflict", mock.Anything, int64(101), mid, end, int64(0)).Return(false, nil)
	store.On("GetGuestByID", mock.Anything, int64(55)).Return(&domain.Guest{ID: 55}, nil)
	store.On("CreateBooking", mock.Anything, mock.Anything).Return(nil)

	guestID := int64(55)
	req := CreateGroupRequest{
		HotelID: 1,
		Rooms: []RoomRequest{
			{RoomID: 101, StartDate: start, EndDate: mid, PrimaryGuestID: &guestID},
			{RoomID: 101, StartDate: mid, EndDate: end, PrimaryGuestID: &guestID},
		},
	}

	result, err := service.CreateGroup(context.Background(), 9, req)

	assert.NoError(t, err)
	assert.Len(t, result.Bookings, 2)
}

func TestCreateGroup_UnknownRoom(t *testing.T) {
	store := new(MockStore)
	service := NewService(store, nil)

	start := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)

	// Room 999 does not belong to the hotel.
	store.On("GetRoomsByIDs", mock.Anything, int64(1), []int64{999}).Return([]domain.Room{}, nil)

	guestID := int64(55)
	req := CreateGroupRequest{
		HotelID: 1,
		Rooms:   []RoomRequest{{RoomID: 999, StartDate: start, EndDate: end, PrimaryGuestID: &guestID}},
	}

	_, err := service.CreateGroup(context.Background(), 9, req)
	assert.ErrorIs(t, err, ErrRoomsNotFound)
}

func TestCreateGroup_UnknownPrimaryGuest(t *testing.T) {
	store := new(MockStore)
	service := NewService(store, nil)

	start := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)

	store.On("GetRoomsByIDs", mock.Anything, int64(1), []int64{101}).Return(testRooms()[:1], nil)
	store.On("HasConflict", mock.Anything, int64(101), start, end, int64(0)).Return(false, nil)
	store.On("GetGuestByID", mock.Anything, int64(404)).Return(nil, domain.ErrNotFound)

	guestID := int64(404)
	req := CreateGroupRequest{
		HotelID: 1,
		Rooms:   []RoomRequest{{RoomID: 101, StartDate: start, EndDate: end, PrimaryGuestID: &guestID}},
	}

	_, err := service.CreateGroup(context.Background(), 9, req)
	assert.ErrorIs(t, err, ErrGuestNotFound)
}

func TestCreateGroup_Validation(t *testing.T) {
	service := NewService(new(MockStore), nil)
	start := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	guestID := int64(55)

	// empty group
	_, err := service.CreateGroup(context.Background(), 9, CreateGroupRequest{HotelID: 1})
	assert.ErrorIs(t, err, ErrValidation)

	// inverted interval
	_, err = service.CreateGroup(context.Background(), 9, CreateGroupRequest{
		HotelID: 1,
		Rooms:   []RoomRequest{{RoomID: 101, StartDate: start, EndDate: start.AddDate(0, 0, -1), PrimaryGuestID: &guestID}},
	})
	assert.ErrorIs(t, err, ErrValidation)

	// no primary guest at all
	_, err = service.CreateGroup(context.Background(), 9, CreateGroupRequest{
		HotelID: 1,
		Rooms:   []RoomRequest{{RoomID: 101, StartDate: start, EndDate: start.AddDate(0, 0, 2)}},
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateGroup_ReusesGuestByIdentity(t *testing.T) {
	store := new(MockStore)
	service := NewService(store, nil)

	start := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)

	existing := &domain.Guest{ID: 42, FullName: "Known Guest", Phone: "+84901", IDCardNumber: "C123"}
	store.On("GetRoomsByIDs", mock.Anything, int64(1), []int64{101}).Return(testRooms()[:1], nil)
	store.On("HasConflict", mock.Anything, int64(101), start, end, int64(0)).Return(false, nil)
	store.On("FindGuestByIdentity", mock.Anything, "+84901", "C123").Return(existing, nil)
	store.On("CreateBooking", mock.Anything, mock.Anything).Return(nil)

	req := CreateGroupRequest{
		HotelID: 1,
		Rooms: []RoomRequest{{
			RoomID:       101,
			StartDate:    start,
			EndDate:      end,
			PrimaryGuest: &GuestInput{FullName: "Known Guest", Phone: "+84901", IDCardNumber: "C123"},
		}},
	}

	result, err := service.CreateGroup(context.Background(), 9, req)

	assert.NoError(t, err)
	assert.Equal(t, int64(42), *result.Bookings[0].PrimaryGuestID)
	store.AssertNotCalled(t, "CreateGuest")
}

func TestGetGroup_NotFound(t *testing.T) {
	store := new(MockStore)
	service := NewService(store, nil)

	store.On("GetBookingsByGroupCode", mock.Anything, "GRP-MISSING").Return([]domain.Booking{}, nil)

	_, err := service.GetGroup(context.Background(), "GRP-MISSING")
	assert.ErrorIs(t, err, ErrGroupNotFound)
}

func TestUpdateStatus_CheckInOccupiesRoom(t *testing.T) {
	store := new(MockStore)
	service := NewService(store, nil)

	store.On("GetBookingByID", mock.Anything, int64(7)).Return(&domain.Booking{
		ID: 7, HotelID: 1, RoomID: 101, Status: domain.BookingConfirmed,
	}, nil).Once()
	store.On("UpdateBookingStatus", mock.Anything, int64(7), domain.BookingCheckedIn, (*time.Time)(nil)).Return(nil)
	store.On("UpdateRoomStatus", mock.Anything, int64(101), domain.RoomOccupied).Return(nil)
	store.On("GetBookingByID", mock.Anything, int64(7)).Return(&domain.Booking{
		ID: 7, HotelID: 1, RoomID: 101, Status: domain.BookingCheckedIn,
	}, nil).Once()

	b, err := service.UpdateStatus(context.Background(), 7, 9, UpdateStatusRequest{Status: domain.BookingCheckedIn})

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingCheckedIn, b.Status)
	store.AssertExpectations(t)
}

func TestUpdateStatus_CheckOutFreesRoom(t *testing.T) {
	store := new(MockStore)
	service := NewService(store, nil)

	store.On("GetBookingByID", mock.Anything, int64(7)).Return(&domain.Booking{
		ID: 7, HotelID: 1, RoomID: 101, Status: domain.BookingCheckedIn,
	}, nil).Once()
	store.On("UpdateBookingStatus", mock.Anything, int64(7), domain.BookingCheckedOut, (*time.Time)(nil)).Return(nil)
	store.On("UpdateRoomStatus", mock.Anything, int64(101), domain.RoomAvailable).Return(nil)
	store.On("GetBookingByID", mock.Anything, int64(7)).Return(&domain.Booking{
		ID: 7, HotelID: 1, RoomID: 101, Status: domain.BookingCheckedOut,
	}, nil).Once()

	b, err := service.UpdateStatus(context.Background(), 7, 9, UpdateStatusRequest{Status: domain.BookingCheckedOut})

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingCheckedOut, b.Status)
	store.AssertExpectations(t)
}

func TestUpdateStatus_InvalidTransition(t *testing.T) {
	store := new(MockStore)
	service := NewService(store, nil)

	store.On("GetBookingByID", mock.Anything, int64(7)).Return(&domain.Booking{
		ID: 7, HotelID: 1, RoomID: 101, Status: domain.BookingCheckedOut,
	}, nil)

	_, err := service.UpdateStatus(context.Background(), 7, 9, UpdateStatusRequest{Status: domain.BookingCheckedIn})

	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
	store.AssertNotCalled(t, "UpdateBookingStatus")
}

func TestUpdateStatus_CancelRecordsTimestamp(t *testing.T) {
	store := new(MockStore)
	service := NewService(store, nil)

	store.On("GetBookingByID", mock.Anything, int64(7)).Return(&domain.Booking{
		ID: 7, HotelID: 1, RoomID: 101, Status: domain.BookingConfirmed,
	}, nil).Once()
	store.On("UpdateBookingStatus", mock.Anything, int64(7), domain.BookingCancelled, mock.AnythingOfType("*time.Time")).Return(nil)
	store.On("GetBookingByID", mock.Anything, int64(7)).Return(&domain.Booking{
		ID: 7, HotelID: 1, RoomID: 101, Status: domain.BookingCancelled,
	}, nil).Once()

	b, err := service.UpdateStatus(context.Background(), 7, 9, UpdateStatusRequest{Status: domain.BookingCancelled, Reason: "guest request"})

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingCancelled, b.Status)
	// Cancelling does not touch the room status.
	store.AssertNotCalled(t, "UpdateRoomStatus")
}

func TestSearchGuests_RequiresCriteria(t *testing.T) {
	service := NewService(new(MockStore), nil)

	_, err := service.SearchGuests(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrValidation)
}
