package sweep_slots

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

func (m *mockSlotRepo) DeleteExpired(ctx context.Context, before time.Time) (int, error) {
	args := m.Called(ctx, before)
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

func TestExecute_RequiresAdmin(t *testing.T) {
	uc := newTestUseCase(&mockSlotRepo{}, time.Now(), time.UTC)

	_, err := uc.Execute(context.Background(), &Request{UserID: "user-1", Role: domain.RoleCustomer})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestExecute_CutoffIsStartOfToday(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Warsaw")
	require.NoError(t, err)

	now := time.Date(2026, 9, 1, 15, 42, 13, 0, loc)
	wantCutoff := time.Date(2026, 9, 1, 0, 0, 0, 0, loc)

	repo := &mockSlotRepo{}
	repo.On("DeleteExpired", mock.Anything, wantCutoff).Return(3, nil)

	uc := newTestUseCase(repo, now, loc)

	resp, err := uc.Execute(context.Background(), &Request{UserID: "admin-1", Role: domain.RoleAdmin})
	require.NoError(t, err)

	assert.Equal(t, 3, resp.DeletedCount)
	repo.AssertExpectations(t)
}

// Слоты сегодняшнего дня переживают чистку: вчерашние 23:59 попадают под
// границу, сегодняшние 00:00 - уже нет.
func TestExecute_TodaySlotsSurvive(t *testing.T) {
	loc := time.UTC
	now := time.Date(2026, 9, 1, 18, 0, 0, 0, loc)

	yesterdayLate := time.Date(2026, 8, 31, 23, 59, 59, 0, loc)
	todayMidnight := time.Date(2026, 9, 1, 0, 0, 0, 0, loc)

	repo := &mockSlotRepo{}
	repo.On("DeleteExpired", mock.Anything, mock.MatchedBy(func(cutoff time.Time) bool {
		return yesterdayLate.Before(cutoff) && !todayMidnight.Before(cutoff)
	})).Return(1, nil)

	uc := newTestUseCase(repo, now, loc)

	_, err := uc.Execute(context.Background(), &Request{UserID: "admin-1", Role: domain.RoleAdmin})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestExecute_RepeatedSweepDeletesNothing(t *testing.T) {
	loc := time.UTC
	now := time.Date(2026, 9, 1, 9, 0, 0, 0, loc)

	repo := &mockSlotRepo{}
	repo.On("DeleteExpired", mock.Anything, mock.Anything).Return(0, nil)

	uc := newTestUseCase(repo, now, loc)

	resp, err := uc.Execute(context.Background(), &Request{UserID: "admin-1", Role: domain.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.DeletedCount)
}

func TestExecute_RepositoryError(t *testing.T) {
	repo := &mockSlotRepo{}
	repo.On("DeleteExpired", mock.Anything, mock.Anything).Return(0, assert.AnError)

	uc := newTestUseCase(repo, time.Now(), time.UTC)

	_, err := uc.Execute(context.Background(), &Request{UserID: "admin-1", Role: domain.RoleAdmin})
	assert.ErrorIs(t, err, ErrInternal)
}
