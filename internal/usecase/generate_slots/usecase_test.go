package generate_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/plenkanet/CleanNet-Backend/internal/domain"
)

type mockSlotRepo struct {
	mock.Mock
}

func (m *mockSlotRepo) ListByDateRange(ctx context.Context, from, to time.Time) ([]*domain.Slot, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Slot), args.Error(1)
}

func (m *mockSlotRepo) BulkCreate(ctx context.Context, slotTimes []time.Time) (int, error) {
	args := m.Called(ctx, slotTimes)
	return args.Int(0), args.Error(1)
}

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestUseCase(repo *mockSlotRepo, now time.Time, loc *time.Location) *UseCase {
	uc := NewUseCase(repo, loc, nopLogger{})
	uc.timeProvider = &fixedClock{now: now}
	return uc
}

func adminRequest(start, end time.Time) *Request {
	return &Request{
		UserID:    "admin-1",
		Role:      domain.RoleAdmin,
		StartDate: start,
		EndDate:   end,
	}
}

func TestExecute_RequiresAdmin(t *testing.T) {
	uc := newTestUseCase(&mockSlotRepo{}, time.Now(), time.UTC)

	req := adminRequest(time.Now(), time.Now().AddDate(0, 0, 7))
	req.Role = domain.RoleCustomer

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestExecute_RejectsInvertedRange(t *testing.T) {
	uc := newTestUseCase(&mockSlotRepo{}, time.Now(), time.UTC)

	req := adminRequest(
		time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
	)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestExecute_RejectsInvalidTemplate(t *testing.T) {
	uc := newTestUseCase(&mockSlotRepo{}, time.Now(), time.UTC)

	req := adminRequest(
		time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC),
	)
	req.Templates = []string{"10:00", "25:99"}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTemplate)
}

func TestExecute_GeneratesSlotsForRange(t *testing.T) {
	loc := time.UTC
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, loc)

	repo := &mockSlotRepo{}
	repo.On("ListByDateRange", mock.Anything, mock.Anything, mock.Anything).Return([]*domain.Slot{}, nil)

	var captured []time.Time
	repo.On("BulkCreate", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		captured = args.Get(1).([]time.Time)
	}).Return(4, nil)

	// Понедельник 7 и вторник 8 сентября, два шаблона
	req := adminRequest(
		time.Date(2026, 9, 7, 0, 0, 0, 0, loc),
		time.Date(2026, 9, 8, 0, 0, 0, 0, loc),
	)
	req.Templates = []string{"10:00", "14:30"}

	uc := newTestUseCase(repo, now, loc)
	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 4, resp.CreatedCount)
	require.Len(t, captured, 4)
	assert.Equal(t, time.Date(2026, 9, 7, 10, 0, 0, 0, loc), captured[0])
	assert.Equal(t, time.Date(2026, 9, 7, 14, 30, 0, 0, loc), captured[1])
	assert.Equal(t, time.Date(2026, 9, 8, 10, 0, 0, 0, loc), captured[2])
	assert.Equal(t, time.Date(2026, 9, 8, 14, 30, 0, 0, loc), captured[3])
}

func TestExecute_SkipsWeekends(t *testing.T) {
	loc := time.UTC
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, loc)

	repo := &mockSlotRepo{}
	repo.On("ListByDateRange", mock.Anything, mock.Anything, mock.Anything).Return([]*domain.Slot{}, nil)

	var captured []time.Time
	repo.On("BulkCreate", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		captured = args.Get(1).([]time.Time)
	}).Return(5, nil)

	// Полная неделя понедельник-воскресенье: остаются пять будних дней
	req := adminRequest(
		time.Date(2026, 9, 7, 0, 0, 0, 0, loc),
		time.Date(2026, 9, 13, 0, 0, 0, 0, loc),
	)
	req.Templates = []string{"09:00"}
	req.SkipWeekends = true

	uc := newTestUseCase(repo, now, loc)
	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 5, resp.CreatedCount)
	require.Len(t, captured, 5)
	for i, c := range captured {
		assert.Equal(t, time.Weekday(time.Monday+time.Weekday(i)), c.Weekday())
		assert.Equal(t, 9, c.Hour())
	}
}

func TestExecute_SkipsPastTimes(t *testing.T) {
	loc := time.UTC
	// Сейчас полдень 7 сентября: утренний шаблон уже в прошлом
	now := time.Date(2026, 9, 7, 12, 0, 0, 0, loc)

	repo := &mockSlotRepo{}
	repo.On("ListByDateRange", mock.Anything, mock.Anything, mock.Anything).Return([]*domain.Slot{}, nil)

	var captured []time.Time
	repo.On("BulkCreate", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		captured = args.Get(1).([]time.Time)
	}).Return(1, nil)

	req := adminRequest(
		time.Date(2026, 9, 7, 0, 0, 0, 0, loc),
		time.Date(2026, 9, 8, 0, 0, 0, 0, loc),
	)
	req.Templates = []string{"09:00"}

	uc := newTestUseCase(repo, now, loc)
	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, captured, 1)
	assert.Equal(t, time.Date(2026, 9, 8, 9, 0, 0, 0, loc), captured[0])
}

func TestExecute_SkipsExistingSlots(t *testing.T) {
	loc := time.UTC
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, loc)

	existing := []*domain.Slot{
		{ID: 1, SlotTime: time.Date(2026, 9, 7, 10, 0, 0, 0, loc)},
	}

	repo := &mockSlotRepo{}
	repo.On("ListByDateRange", mock.Anything, mock.Anything, mock.Anything).Return(existing, nil)

	var captured []time.Time
	repo.On("BulkCreate", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		captured = args.Get(1).([]time.Time)
	}).Return(1, nil)

	req := adminRequest(
		time.Date(2026, 9, 7, 0, 0, 0, 0, loc),
		time.Date(2026, 9, 8, 0, 0, 0, 0, loc),
	)
	req.Templates = []string{"10:00"}

	uc := newTestUseCase(repo, now, loc)
	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 1, resp.CreatedCount)
	require.Len(t, captured, 1)
	assert.Equal(t, time.Date(2026, 9, 8, 10, 0, 0, 0, loc), captured[0])
}

// windowedSlotStore отдает только слоты, попавшие в запрошенный диапазон,
// как это делает реальное хранилище
type windowedSlotStore struct {
	slots    []*domain.Slot
	captured []time.Time
}

func (s *windowedSlotStore) ListByDateRange(ctx context.Context, from, to time.Time) ([]*domain.Slot, error) {
	var inRange []*domain.Slot
	for _, slot := range s.slots {
		if !slot.SlotTime.Before(from) && !slot.SlotTime.After(to) {
			inRange = append(inRange, slot)
		}
	}
	return inRange, nil
}

func (s *windowedSlotStore) BulkCreate(ctx context.Context, slotTimes []time.Time) (int, error) {
	s.captured = slotTimes
	return len(slotTimes), nil
}

func TestExecute_UnsortedTemplatesStillSeeExistingSlots(t *testing.T) {
	loc := time.UTC
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, loc)

	// Утренний слот уже занят клиентом, шаблоны идут не по возрастанию:
	// первый кандидат дня - 14:00, и окно выборки не должно от него считаться
	reservedBy := "user-1"
	store := &windowedSlotStore{
		slots: []*domain.Slot{
			{
				ID:         1,
				SlotTime:   time.Date(2026, 9, 7, 9, 0, 0, 0, loc),
				Reserved:   true,
				ReservedBy: &reservedBy,
			},
		},
	}

	req := adminRequest(
		time.Date(2026, 9, 7, 0, 0, 0, 0, loc),
		time.Date(2026, 9, 8, 0, 0, 0, 0, loc),
	)
	req.Templates = []string{"14:00", "09:00"}

	uc := NewUseCase(store, loc, nopLogger{})
	uc.timeProvider = &fixedClock{now: now}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 3, resp.CreatedCount)
	require.Len(t, store.captured, 3)
	for _, c := range store.captured {
		assert.False(t, c.Equal(store.slots[0].SlotTime),
			"занятое время не должно генерироваться повторно")
	}
}

func TestExecute_NoFutureCandidates(t *testing.T) {
	loc := time.UTC
	now := time.Date(2026, 9, 20, 0, 0, 0, 0, loc)

	repo := &mockSlotRepo{}

	// Весь диапазон в прошлом: до репозитория дело не доходит
	req := adminRequest(
		time.Date(2026, 9, 7, 0, 0, 0, 0, loc),
		time.Date(2026, 9, 8, 0, 0, 0, 0, loc),
	)

	uc := newTestUseCase(repo, now, loc)
	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 0, resp.CreatedCount)
	repo.AssertNotCalled(t, "BulkCreate", mock.Anything, mock.Anything)
}

func TestExecute_UsesDefaultTemplates(t *testing.T) {
	loc := time.UTC
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, loc)

	repo := &mockSlotRepo{}
	repo.On("ListByDateRange", mock.Anything, mock.Anything, mock.Anything).Return([]*domain.Slot{}, nil)

	var captured []time.Time
	repo.On("BulkCreate", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		captured = args.Get(1).([]time.Time)
	}).Return(26, nil)

	req := adminRequest(
		time.Date(2026, 9, 7, 0, 0, 0, 0, loc),
		time.Date(2026, 9, 8, 0, 0, 0, 0, loc),
	)

	uc := newTestUseCase(repo, now, loc)
	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// Два дня по 26 предустановленных шаблонов
	assert.Len(t, captured, 52)
}
