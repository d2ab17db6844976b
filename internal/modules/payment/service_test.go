package payment

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

func (m *MockStore) InTx(ctx context.Context, fn func(tx Store) error) error {
	return fn(m)
}

func (m *MockStore) GetInvoiceForUpdate(ctx context.Context, id int64) (*domain.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockStore) GetInvoiceByBookingID(ctx context.Context, bookingID int64) (*domain.Invoice, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockStore) SaveInvoiceAmounts(ctx context.Context, inv *domain.Invoice) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}

func (m *MockStore) GetBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockStore) CreatePayment(ctx context.Context, p *domain.Payment) error {
	args := m.Called(ctx, p)
	if p.ID == 0 {
		p.ID = 800
	}
	return args.Error(0)
}

func (m *MockStore) SumBookingPayments(ctx context.Context, bookingID int64) (float64, float64, error) {
	args := m.Called(ctx, bookingID)
	return args.Get(0).(float64), args.Get(1).(float64), args.Error(2)
}

func openInvoice() *domain.Invoice {
	bookingID := int64(7)
	return &domain.Invoice{
		ID:              5,
		HotelID:         1,
		BookingID:       &bookingID,
		TotalAmount:     1100000,
		PaidAmount:      0,
		RemainingAmount: 1100000,
		Status:          domain.InvoicePending,
	}
}

func TestApplyPayment_Partial(t *testing.T) {
	store := new(MockStore)
	service := NewService(store, nil)

	inv := openInvoice()
	store.On("GetInvoiceForUpdate", mock.Anything, int64(5)).Return(inv, nil)
	store.On("CreatePayment", mock.Anything, mock.Anything).Return(nil)
	store.On("SaveInvoiceAmounts", mock.Anything, inv).Return(nil)

	p, err := service.ApplyPayment(context.Background(), 9, ApplyPaymentRequest{
		HotelID: 1, InvoiceID: 5, Amount: 500000, Method: domain.MethodCash,
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.PaymentPartial, p.Type)
	assert.Equal(t, domain.PaymentCompleted, p.Status)
	assert.Equal(t, 500000.0, inv.PaidAmount)
	assert.Equal(t, 600000.0, inv.RemainingAmount)
	assert.Equal(t, domain.InvoicePartiallyPaid, inv.Status)
}

func TestApplyPayment_FinalPaymentSettlesInvoice(t *testing.T) {
	store := new(MockStore)
	service := NewService(store, nil)

	inv := openInvoice()
	inv.PaidAmount = 500000
	inv.RemainingAmount = 600000
	inv.Status = domain.InvoicePartiallyPaid

	store.On("GetInvoiceForUpdate", mock.Anything, int64(5)).Return(inv, nil)
	store.On("CreatePayment", mock.Anything, mock.Anything).Return(nil)
	store.On("SaveInvoiceAmounts", mock.Anything, inv).Return(nil)

	p, err := service.ApplyPayment(context.Background(), 9, ApplyPaymentRequest{
		HotelID: 1, InvoiceID: 5, Amount: 600000, Method: domain.MethodCard,
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.PaymentFull, p.Type)
	assert.Equal(t, 1100000.0, inv.PaidAmount)
	assert.Equal(t, 0.0, inv.RemainingAmount)
	assert.Equal(t, domain.InvoicePaid, inv.Status)
}

func TestApplyPayment_RejectsOverpayment(t *testing.T) {
	store := new(MockStore)
	service := NewService(store, nil)

	inv := openInvoice()
	inv.PaidAmount = 500000
	inv.RemainingAmount = 600000
	inv.Status = domain.InvoicePartiallyPaid

	store.On("GetInvoiceForUpdate", mock.Anything, int64(5)).Return(inv, nil)

	_, err := service.ApplyPayment(context.Background(), 9, ApplyPaymentRequest{
		HotelID: 1, InvoiceID: 5, Amount: 700000, Method: domain.MethodCash,
	})

	assert.ErrorIs(t, err, ErrAmountExceedsRemaining)
	store.AssertNotCalled(t, "CreatePayment")
	store.AssertNotCalled(t, "SaveInvoiceAmounts")
}

func TestApplyPayment_SettledInvoiceRejectsAnyFurtherAmount(t *testing.T) {
	store := new(MockStore)
	service := NewService(store, nil)

	inv := openInvoice()
	inv.PaidAmount = 1100000
	inv.RemainingAmount = 0
	inv.Status = domain.InvoicePaid

	store.On("GetInvoiceForUpdate", mock.Anything, int64(5)).Return(inv, nil)

	_, err := service.ApplyPayment(context.Background(), 9, ApplyPaymentRequest{
		HotelID: 1, InvoiceID: 5, Amount: 100, Method: domain.MethodCash,
	})

	assert.ErrorIs(t, err, ErrAmountExceedsRemaining)
	store.AssertNotCalled(t, "CreatePayment")
}

func TestApplyPayment_RejectsClosedInvoice(t *testing.T) {
	store := new(MockStore)
	service := NewService(store, nil)

	inv := openInvoice()
	inv.Status = domain.InvoiceVoided
	store.On("GetInvoiceForUpdate", mock.Anything, int64(5)).Return(inv, nil)

	_, err := service.ApplyPayment(context.Background(), 9, ApplyPaymentRequest{
		HotelID: 1, InvoiceID: 5, Amount: 100, Method: domain.MethodCash,
	})

	assert.ErrorIs(t, err, ErrInvoiceNotOpen)
}

func TestApplyPayment_UnknownInvoice(t *testing.T) {
	store := new(MockStore)
	service := NewService(store, nil)

	store.On("GetInvoiceForUpdate", mock.Anything, int64(404)).Return(nil, domain.ErrNotFound)

	_, err := service.ApplyPayment(context.Background(), 9, ApplyPaymentRequest{
		HotelID: 1, InvoiceID: 404, Amount: 100, Method: domain.MethodCash,
	})

	assert.ErrorIs(t, err, ErrInvoiceNotFound)
}

func TestApplyPayment_RejectsNonPositiveAmount(t *testing.T) {
	service := NewService(new(MockStore), nil)

	_, err := service.ApplyPayment(context.Background(), 9, ApplyPaymentRequest{
		HotelID: 1, InvoiceID: 5, Amount: 0, Method: domain.MethodCash,
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestRefund_RollsInvoiceBack(t *testing.T) {
	store := new(MockStore)
	service := NewService(store, nil)

	inv := openInvoice()
	inv.PaidAmount = 1100000
	inv.RemainingAmount = 0
	inv.Status = domain.InvoicePaid

	store.On("GetBooking", mock.Anything, int64(7)).Return(&domain.Booking{ID: 7, HotelID: 1}, nil)
	store.On("SumBookingPayments", mock.Anything, int64(7)).Return(1100000.0, 0.0, nil)
	store.On("GetInvoiceByBookingID", mock.Anything, int64(7)).Return(inv, nil)
	store.On("SaveInvoiceAmounts", mock.Anything, inv).Return(nil)
	store.On("CreatePayment", mock.Anything, mock.Anything).Return(nil)

	p, err := service.Refund(context.Background(), 9, RefundRequest{
		HotelID: 1, BookingID: 7, Amount: 300000, Method: domain.MethodTransfer,
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.PaymentRefund, p.Type)
	assert.Equal(t, 800000.0, inv.PaidAmount)
	assert.Equal(t, 300000.0, inv.RemainingAmount)
	assert.Equal(t, domain.InvoicePartiallyPaid, inv.Status)
}

func TestRefund_RejectsAmountAboveNetPaid(t *testing.T) {
	store := new(MockStore)
	service := NewService(store, nil)

	store.On("GetBooking", mock.Anything, int64(7)).Return(&domain.Booking{ID: 7, HotelID: 1}, nil)
	// 500000 paid, 200000 already refunded: at most 300000 can still go back.
	store.On("SumBookingPayments", mock.Anything, int64(7)).Return(500000.0, 200000.0, nil)

	_, err := service.Refund(context.Background(), 9, RefundRequest{
		HotelID: 1, BookingID: 7, Amount: 400000, Method: domain.MethodCash,
	})

	assert.ErrorIs(t, err, ErrRefundExceedsPaid)
	store.AssertNotCalled(t, "CreatePayment")
}

func TestRefund_UnknownBooking(t *testing.T) {
	store := new(MockStore)
	service := NewService(store, nil)

	store.On("GetBooking", mock.Anything, int64(404)).Return(nil, domain.ErrNotFound)

	_, err := service.Refund(context.Background(), 9, RefundRequest{
		HotelID: 1, BookingID: 404, Amount: 100, Method: domain.MethodCash,
	})

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestRefund_BookingWithoutInvoice(t *testing.T) {
	store := new(MockStore)
	service := NewService(store, nil)

	store.On("GetBooking", mock.Anything, int64(7)).Return(&domain.Booking{ID: 7, HotelID: 1}, nil)
	store.On("SumBookingPayments", mock.Anything, int64(7)).Return(200000.0, 0.0, nil)
	store.On("GetInvoiceByBookingID", mock.Anything, int64(7)).Return(nil, domain.ErrNotFound)
	store.On("CreatePayment", mock.Anything, mock.Anything).Return(nil)

	p, err := service.Refund(context.Background(), 9, RefundRequest{
		HotelID: 1, BookingID: 7, Amount: 200000, Method: domain.MethodCash,
	})

	assert.NoError(t, err)
	assert.Nil(t, p.InvoiceID)
	store.AssertNotCalled(t, "SaveInvoiceAmounts")
}
