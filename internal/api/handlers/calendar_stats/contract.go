package calendar_stats

import (
	"context"

	"github.com/plenkanet/CleanNet-Backend/internal/service/calendar/models"
)

type CalendarService interface {
	Stats(ctx context.Context, role string) (*models.StatsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
