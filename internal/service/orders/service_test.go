package orders

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/plenkanet/CleanNet-Backend/internal/domain"
	orderRepo "github.com/plenkanet/CleanNet-Backend/internal/infra/storage/order"
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

func (m *mockOrderRepo) GetByUserID(ctx context.Context, userID string) ([]*domain.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Order), args.Error(1)
}

func (m *mockOrderRepo) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testOrder() *domain.Order {
	return &domain.Order{
		ID:     5,
		Number: "n-5",
		UserID: "owner-1",
		Status: domain.OrderStatusPending,
	}
}

func TestGetByID_OwnerSeesOwnOrder(t *testing.T) {
	repo := &mockOrderRepo{}
	repo.On("GetByID", mock.Anything, int64(5)).Return(testOrder(), nil)

	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 5, "owner-1", domain.RoleCustomer)
	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.ID)
}

func TestGetByID_StrangerDenied(t *testing.T) {
	repo := &mockOrderRepo{}
	repo.On("GetByID", mock.Anything, int64(5)).Return(testOrder(), nil)

	svc := NewService(repo, nopLogger{})

	_, err := svc.GetByID(context.Background(), 5, "stranger", domain.RoleCustomer)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_AdminSeesAnyOrder(t *testing.T) {
	repo := &mockOrderRepo{}
	repo.On("GetByID", mock.Anything, int64(5)).Return(testOrder(), nil)

	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 5, "admin-1", domain.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, "n-5", resp.Number)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := &mockOrderRepo{}
	repo.On("GetByID", mock.Anything, int64(99)).Return(nil, orderRepo.ErrOrderNotFound)

	svc := NewService(repo, nopLogger{})

	_, err := svc.GetByID(context.Background(), 99, "owner-1", domain.RoleCustomer)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestGetUserOrders_ForeignHistoryDenied(t *testing.T) {
	svc := NewService(&mockOrderRepo{}, nopLogger{})

	_, err := svc.GetUserOrders(context.Background(), "owner-1", "stranger", domain.RoleCustomer)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetUserOrders_AdminSeesForeignHistory(t *testing.T) {
	repo := &mockOrderRepo{}
	repo.On("GetByUserID", mock.Anything, "owner-1").Return([]*domain.Order{testOrder()}, nil)

	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetUserOrders(context.Background(), "owner-1", "admin-1", domain.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
}

func TestUpdateStatus_RequiresAdmin(t *testing.T) {
	svc := NewService(&mockOrderRepo{}, nopLogger{})

	_, err := svc.UpdateStatus(context.Background(), 5, "completed", domain.RoleCustomer)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	svc := NewService(&mockOrderRepo{}, nopLogger{})

	_, err := svc.UpdateStatus(context.Background(), 5, "shipped", domain.RoleAdmin)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus_Success(t *testing.T) {
	completed := testOrder()
	completed.Status = domain.OrderStatusCompleted

	repo := &mockOrderRepo{}
	repo.On("UpdateStatus", mock.Anything, int64(5), domain.OrderStatusCompleted).Return(nil)
	repo.On("GetByID", mock.Anything, int64(5)).Return(completed, nil)

	svc := NewService(repo, nopLogger{})

	resp, err := svc.UpdateStatus(context.Background(), 5, "completed", domain.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, string(domain.OrderStatusCompleted), resp.Status)
}
