package cancel_order

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/plenkanet/CleanNet-Backend/internal/domain"
	orderRepo "github.com/plenkanet/CleanNet-Backend/internal/infra/storage/order"
	slotRepo "github.com/plenkanet/CleanNet-Backend/internal/infra/storage/slot"
)

type mockOrderRepo struct {
	mock.Mock
}

func (m *mockOrderRepo) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *mockOrderRepo) Cancel(ctx context.Context, id int64, reason string) error {
	args := m.Called(ctx, id, reason)
	return args.Error(0)
}

type mockSlotRepo struct {
	mock.Mock
}

func (m *mockSlotRepo) Release(ctx context.Context, slotTime time.Time) error {
	args := m.Called(ctx, slotTime)
	return args.Error(0)
}

// fakeTxManager выполняет функцию без реальной транзакции
type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestUseCase(orders *mockOrderRepo, slots *mockSlotRepo) *UseCase {
	return NewUseCase(orders, slots, fakeTxManager{}, nopLogger{})
}

func confirmedOrder(scheduled *time.Time) *domain.Order {
	return &domain.Order{
		ID:          10,
		Number:      "n-10",
		UserID:      "owner-1",
		Status:      domain.OrderStatusConfirmed,
		ScheduledAt: scheduled,
	}
}

func cancelledCopy(o *domain.Order) *domain.Order {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	out := *o
	out.Status = domain.OrderStatusCancelled
	out.CancelledAt = &now
	return &out
}

func TestExecute_OrderNotFound(t *testing.T) {
	orders := &mockOrderRepo{}
	orders.On("GetByID", mock.Anything, int64(10)).Return(nil, orderRepo.ErrOrderNotFound)

	uc := newTestUseCase(orders, &mockSlotRepo{})

	_, err := uc.Execute(context.Background(), &Request{OrderID: 10, UserID: "owner-1"})
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestExecute_ForbiddenForStranger(t *testing.T) {
	orders := &mockOrderRepo{}
	orders.On("GetByID", mock.Anything, int64(10)).Return(confirmedOrder(nil), nil)

	uc := newTestUseCase(orders, &mockSlotRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		OrderID: 10,
		UserID:  "stranger",
		Role:    domain.RoleCustomer,
	})
	assert.ErrorIs(t, err, ErrForbidden)
	orders.AssertNotCalled(t, "Cancel", mock.Anything, mock.Anything, mock.Anything)
}

func TestExecute_AdminCanCancelAnyOrder(t *testing.T) {
	order := confirmedOrder(nil)

	orders := &mockOrderRepo{}
	orders.On("GetByID", mock.Anything, int64(10)).Return(order, nil).Once()
	orders.On("Cancel", mock.Anything, int64(10), "не успеваем").Return(nil)
	orders.On("GetByID", mock.Anything, int64(10)).Return(cancelledCopy(order), nil).Once()

	uc := newTestUseCase(orders, &mockSlotRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		OrderID: 10,
		UserID:  "admin-1",
		Role:    domain.RoleAdmin,
		Reason:  "не успеваем",
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.OrderStatusCancelled), resp.Status)
	require.NotNil(t, resp.CancelledAt)
	orders.AssertExpectations(t)
}

func TestExecute_CompletedOrderCannotBeCancelled(t *testing.T) {
	order := confirmedOrder(nil)
	order.Status = domain.OrderStatusCompleted

	orders := &mockOrderRepo{}
	orders.On("GetByID", mock.Anything, int64(10)).Return(order, nil)

	uc := newTestUseCase(orders, &mockSlotRepo{})

	_, err := uc.Execute(context.Background(), &Request{OrderID: 10, UserID: "owner-1"})
	assert.ErrorIs(t, err, ErrCannotBeCancelled)
	orders.AssertNotCalled(t, "Cancel", mock.Anything, mock.Anything, mock.Anything)
}

func TestExecute_ReleasesScheduledSlot(t *testing.T) {
	scheduled := time.Date(2026, 9, 5, 10, 0, 0, 0, time.UTC)
	order := confirmedOrder(&scheduled)

	orders := &mockOrderRepo{}
	orders.On("GetByID", mock.Anything, int64(10)).Return(order, nil).Once()
	orders.On("Cancel", mock.Anything, int64(10), "").Return(nil)
	orders.On("GetByID", mock.Anything, int64(10)).Return(cancelledCopy(order), nil).Once()

	slots := &mockSlotRepo{}
	slots.On("Release", mock.Anything, scheduled).Return(nil)

	uc := newTestUseCase(orders, slots)

	_, err := uc.Execute(context.Background(), &Request{OrderID: 10, UserID: "owner-1"})
	require.NoError(t, err)

	slots.AssertExpectations(t)
}

func TestExecute_MissingSlotIsNotFatal(t *testing.T) {
	scheduled := time.Date(2026, 9, 5, 10, 0, 0, 0, time.UTC)
	order := confirmedOrder(&scheduled)

	orders := &mockOrderRepo{}
	orders.On("GetByID", mock.Anything, int64(10)).Return(order, nil).Once()
	orders.On("Cancel", mock.Anything, int64(10), "").Return(nil)
	orders.On("GetByID", mock.Anything, int64(10)).Return(cancelledCopy(order), nil).Once()

	// Слот уже вычищен как просроченный
	slots := &mockSlotRepo{}
	slots.On("Release", mock.Anything, scheduled).Return(slotRepo.ErrSlotNotFound)

	uc := newTestUseCase(orders, slots)

	resp, err := uc.Execute(context.Background(), &Request{OrderID: 10, UserID: "owner-1"})
	require.NoError(t, err)
	assert.Equal(t, string(domain.OrderStatusCancelled), resp.Status)
}

func TestExecute_TooLongReason(t *testing.T) {
	reason := make([]byte, domain.MaxReasonLength+1)
	for i := range reason {
		reason[i] = 'x'
	}

	uc := newTestUseCase(&mockOrderRepo{}, &mockSlotRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		OrderID: 10,
		UserID:  "owner-1",
		Reason:  string(reason),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
