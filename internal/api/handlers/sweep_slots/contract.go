package sweep_slots

import (
	"context"

	sweepSlots "github.com/plenkanet/CleanNet-Backend/internal/usecase/sweep_slots"
)

type SweepSlotsUseCase interface {
	Execute(ctx context.Context, req *sweepSlots.Request) (*sweepSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
