package generate_slots

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	generateSlots "github.com/plenkanet/CleanNet-Backend/internal/usecase/generate_slots"
)

type stubUseCase struct {
	captured *generateSlots.Request
}

func (s *stubUseCase) Execute(ctx context.Context, req *generateSlots.Request) (*generateSlots.Response, error) {
	s.captured = req
	return &generateSlots.Response{CreatedCount: 0}, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// Даты диапазона обозначают календарные дни в таймзоне сервиса: при разборе
// в зоне западнее Гринвича полночь не должна уезжать на предыдущий день
func TestHandle_ParsesDatesInServiceTimezone(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	uc := &stubUseCase{}
	h := NewHandler(uc, loc, nopLogger{})

	body := bytes.NewBufferString(`{"startDate":"2026-10-01","endDate":"2026-10-05"}`)
	r := httptest.NewRequest(http.MethodPost, "/api/v1/admin/slots/generate", body)
	w := httptest.NewRecorder()

	h.Handle(w, r)

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, uc.captured)

	start := uc.captured.StartDate.In(loc)
	assert.Equal(t, 2026, start.Year())
	assert.Equal(t, time.October, start.Month())
	assert.Equal(t, 1, start.Day())
	assert.Equal(t, 0, start.Hour())

	end := uc.captured.EndDate.In(loc)
	assert.Equal(t, 5, end.Day())
}

func TestHandle_RejectsMalformedDate(t *testing.T) {
	h := NewHandler(&stubUseCase{}, time.UTC, nopLogger{})

	body := bytes.NewBufferString(`{"startDate":"01.10.2026","endDate":"2026-10-05"}`)
	r := httptest.NewRequest(http.MethodPost, "/api/v1/admin/slots/generate", body)
	w := httptest.NewRecorder()

	h.Handle(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
