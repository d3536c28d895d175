package create_order

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/plenkanet/CleanNet-Backend/internal/domain"
	slotRepo "github.com/plenkanet/CleanNet-Backend/internal/infra/storage/slot"
)

type mockOrderRepo struct {
	mock.Mock
}

func (m *mockOrderRepo) Create(ctx context.Context, o *domain.Order) (*domain.Order, error) {
	args := m.Called(ctx, o)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

type mockSlotRepo struct {
	mock.Mock
}

func (m *mockSlotRepo) Reserve(ctx context.Context, slotTime time.Time, reservedBy string) (*domain.Slot, error) {
	args := m.Called(ctx, slotTime, reservedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Slot), args.Error(1)
}

type mockNotifier struct {
	mu     sync.Mutex
	orders []*domain.Order
	done   chan struct{}
}

func newMockNotifier() *mockNotifier {
	return &mockNotifier{done: make(chan struct{}, 1)}
}

func (m *mockNotifier) SendOrderCreated(order *domain.Order) error {
	m.mu.Lock()
	m.orders = append(m.orders, order)
	m.mu.Unlock()
	m.done <- struct{}{}
	return nil
}

func (m *mockNotifier) wait(t *testing.T) {
	t.Helper()
	select {
	case <-m.done:
	case <-time.After(time.Second):
		t.Fatal("notification was not sent")
	}
}

// fakeTxManager выполняет функцию без реальной транзакции
type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

var testNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func newTestUseCase(orderRepo OrderRepository, slots SlotRepository, notifier Notifier) *UseCase {
	uc := NewUseCase(orderRepo, slots, notifier, fakeTxManager{}, nopLogger{})
	uc.timeProvider = &fixedClock{now: testNow}
	return uc
}

func validRequest() *Request {
	return &Request{
		UserID:    "user-1",
		UserEmail: "user@example.com",
		UserName:  "Anna",
		Items:     domain.OrderItems{SofaCount: 1, WithPillows: true},
		Address:   "ул. Длинная, д. 15, кв. 3",
	}
}

func TestExecute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(req *Request)
		wantErr error
	}{
		{
			name:    "без пользователя",
			mutate:  func(req *Request) { req.UserID = "" },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "пустой состав заказа",
			mutate:  func(req *Request) { req.Items = domain.OrderItems{} },
			wantErr: ErrEmptyItems,
		},
		{
			name:    "слишком короткий адрес",
			mutate:  func(req *Request) { req.Address = "кв. 3" },
			wantErr: ErrInvalidAddress,
		},
		{
			name: "слишком много фотографий",
			mutate: func(req *Request) {
				req.PhotoURLs = make([]string, domain.MaxPhotoCount+1)
			},
			wantErr: ErrInvalidInput,
		},
		{
			name: "время выезда в прошлом",
			mutate: func(req *Request) {
				past := testNow.Add(-time.Hour)
				req.ScheduledAt = &past
			},
			wantErr: ErrScheduledInPast,
		},
		{
			name: "отрицательная площадь ковров",
			mutate: func(req *Request) {
				req.Items = domain.OrderItems{CarpetArea: -1, SofaCount: 1}
			},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			uc := newTestUseCase(&mockOrderRepo{}, &mockSlotRepo{}, newMockNotifier())

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_WithoutSlot(t *testing.T) {
	orderRepo := &mockOrderRepo{}
	orderRepo.On("Create", mock.Anything, mock.MatchedBy(func(o *domain.Order) bool {
		return o.Status == domain.OrderStatusPending && o.ScheduledAt == nil
	})).Return(&domain.Order{
		ID:     1,
		Number: "n-1",
		Status: domain.OrderStatusPending,
		Price:  680,
	}, nil)

	slots := &mockSlotRepo{}
	notifier := newMockNotifier()

	uc := newTestUseCase(orderRepo, slots, notifier)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, string(domain.OrderStatusPending), resp.Status)
	assert.InDelta(t, 680.0, resp.Price, 0.001)
	slots.AssertNotCalled(t, "Reserve", mock.Anything, mock.Anything, mock.Anything)

	notifier.wait(t)
	assert.Len(t, notifier.orders, 1)
}

func TestExecute_WithSlotReservesAndConfirms(t *testing.T) {
	scheduled := testNow.Add(24 * time.Hour)

	slots := &mockSlotRepo{}
	slots.On("Reserve", mock.Anything, scheduled, "user-1").
		Return(&domain.Slot{ID: 7, SlotTime: scheduled, Reserved: true}, nil)

	orderRepo := &mockOrderRepo{}
	orderRepo.On("Create", mock.Anything, mock.MatchedBy(func(o *domain.Order) bool {
		return o.Status == domain.OrderStatusConfirmed && o.ScheduledAt != nil
	})).Return(&domain.Order{
		ID:          2,
		Number:      "n-2",
		Status:      domain.OrderStatusConfirmed,
		ScheduledAt: &scheduled,
	}, nil)

	notifier := newMockNotifier()
	uc := newTestUseCase(orderRepo, slots, notifier)

	req := validRequest()
	req.ScheduledAt = &scheduled

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, string(domain.OrderStatusConfirmed), resp.Status)
	require.NotNil(t, resp.ScheduledAt)
	assert.True(t, resp.ScheduledAt.Equal(scheduled))

	slots.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	notifier.wait(t)
}

func TestExecute_SlotTakenNoOrderCreated(t *testing.T) {
	scheduled := testNow.Add(24 * time.Hour)

	slots := &mockSlotRepo{}
	slots.On("Reserve", mock.Anything, scheduled, "user-1").
		Return(nil, slotRepo.ErrSlotNotAvailable)

	orderRepo := &mockOrderRepo{}
	notifier := newMockNotifier()
	uc := newTestUseCase(orderRepo, slots, notifier)

	req := validRequest()
	req.ScheduledAt = &scheduled

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	assert.Empty(t, notifier.orders)
}

// raceSlotStore пускает в слот ровно одного резервирующего
type raceSlotStore struct {
	mu       sync.Mutex
	reserved map[int64]string
}

func newRaceSlotStore() *raceSlotStore {
	return &raceSlotStore{reserved: make(map[int64]string)}
}

func (s *raceSlotStore) Reserve(ctx context.Context, slotTime time.Time, reservedBy string) (*domain.Slot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := slotTime.Unix()
	if _, taken := s.reserved[key]; taken {
		return nil, slotRepo.ErrSlotNotAvailable
	}
	s.reserved[key] = reservedBy
	return &domain.Slot{ID: 1, SlotTime: slotTime, Reserved: true, ReservedBy: &reservedBy}, nil
}

type countingOrderRepo struct {
	mu      sync.Mutex
	created int
}

func (r *countingOrderRepo) Create(ctx context.Context, o *domain.Order) (*domain.Order, error) {
	r.mu.Lock()
	r.created++
	id := int64(r.created)
	r.mu.Unlock()

	out := *o
	out.ID = id
	return &out, nil
}

type silentNotifier struct{}

func (silentNotifier) SendOrderCreated(order *domain.Order) error { return nil }

func TestExecute_ConcurrentReservationSingleWinner(t *testing.T) {
	scheduled := testNow.Add(24 * time.Hour)

	slots := newRaceSlotStore()
	orders := &countingOrderRepo{}

	uc := newTestUseCase(orders, slots, silentNotifier{})

	const attempts = 20

	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			req := validRequest()
			req.UserID = "user-" + string(rune('a'+i))
			req.ScheduledAt = &scheduled

			_, errs[i] = uc.Execute(context.Background(), req)
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
		} else {
			assert.ErrorIs(t, err, ErrSlotNotAvailable)
		}
	}

	assert.Equal(t, 1, winners, "ровно один запрос должен получить слот")

	orders.mu.Lock()
	defer orders.mu.Unlock()
	assert.Equal(t, 1, orders.created, "проигравшие не должны оставлять заказов")
}
