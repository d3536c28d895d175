package create_slot

import (
	"context"
	"time"

	"github.com/plenkanet/CleanNet-Backend/internal/service/calendar/models"
)

type CalendarService interface {
	AddSlot(ctx context.Context, slotTime time.Time, role string) (*models.SlotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
