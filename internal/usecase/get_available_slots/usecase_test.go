package get_available_slots

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

func (m *mockSlotRepo) ListAll(ctx context.Context) ([]*domain.Slot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Slot), args.Error(1)
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

func TestExecute_FiltersExpiredAndReserved(t *testing.T) {
	loc := time.UTC
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, loc)

	slots := []*domain.Slot{
		{ID: 1, SlotTime: now.Add(-time.Hour)},                        // просрочен
		{ID: 2, SlotTime: now.Add(time.Hour), Reserved: true},         // занят
		{ID: 3, SlotTime: now.Add(2 * time.Hour)},                     // доступен
		{ID: 4, SlotTime: now},                                        // ровно сейчас - не доступен
		{ID: 5, SlotTime: now.Add(24 * time.Hour), Reserved: false},   // доступен
	}

	repo := &mockSlotRepo{}
	repo.On("ListAll", mock.Anything).Return(slots, nil)

	uc := newTestUseCase(repo, now, loc)
	resp, err := uc.Execute(context.Background(), &Request{UserID: "u1"})
	require.NoError(t, err)

	var ids []int64
	for _, day := range resp.Days {
		for _, period := range day.Periods {
			for _, slot := range period.Slots {
				ids = append(ids, slot.ID)
			}
		}
	}
	assert.Equal(t, []int64{3, 5}, ids)
}

func TestExecute_SortsAndGroupsByDay(t *testing.T) {
	loc := time.UTC
	now := time.Date(2026, 9, 1, 6, 0, 0, 0, loc)

	// Слоты намеренно не отсортированы
	slots := []*domain.Slot{
		{ID: 1, SlotTime: time.Date(2026, 9, 2, 18, 0, 0, 0, loc)},
		{ID: 2, SlotTime: time.Date(2026, 9, 1, 9, 0, 0, 0, loc)},
		{ID: 3, SlotTime: time.Date(2026, 9, 2, 8, 0, 0, 0, loc)},
		{ID: 4, SlotTime: time.Date(2026, 9, 1, 14, 0, 0, 0, loc)},
	}

	repo := &mockSlotRepo{}
	repo.On("ListAll", mock.Anything).Return(slots, nil)

	uc := newTestUseCase(repo, now, loc)
	resp, err := uc.Execute(context.Background(), &Request{UserID: "u1"})
	require.NoError(t, err)

	require.Len(t, resp.Days, 2)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, loc), resp.Days[0].Date)
	assert.Equal(t, time.Date(2026, 9, 2, 0, 0, 0, 0, loc), resp.Days[1].Date)

	// Первый день: утро (09:00), затем день (14:00)
	require.Len(t, resp.Days[0].Periods, 2)
	assert.Equal(t, domain.PeriodMorning, resp.Days[0].Periods[0].Name)
	assert.Equal(t, int64(2), resp.Days[0].Periods[0].Slots[0].ID)
	assert.Equal(t, domain.PeriodAfternoon, resp.Days[0].Periods[1].Name)
	assert.Equal(t, int64(4), resp.Days[0].Periods[1].Slots[0].ID)

	// Второй день: утро (08:00), затем вечер (18:00)
	require.Len(t, resp.Days[1].Periods, 2)
	assert.Equal(t, domain.PeriodMorning, resp.Days[1].Periods[0].Name)
	assert.Equal(t, int64(3), resp.Days[1].Periods[0].Slots[0].ID)
	assert.Equal(t, domain.PeriodEvening, resp.Days[1].Periods[1].Name)
	assert.Equal(t, int64(1), resp.Days[1].Periods[1].Slots[0].ID)
}

func TestExecute_EmptyCalendar(t *testing.T) {
	repo := &mockSlotRepo{}
	repo.On("ListAll", mock.Anything).Return([]*domain.Slot{}, nil)

	uc := newTestUseCase(repo, time.Now(), time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{UserID: "u1"})
	require.NoError(t, err)
	assert.Empty(t, resp.Days)
}

func TestExecute_RepositoryError(t *testing.T) {
	repo := &mockSlotRepo{}
	repo.On("ListAll", mock.Anything).Return(nil, assert.AnError)

	uc := newTestUseCase(repo, time.Now(), time.UTC)
	_, err := uc.Execute(context.Background(), &Request{UserID: "u1"})
	assert.ErrorIs(t, err, ErrInternal)
}
