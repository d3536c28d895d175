package get_available_slots

import (
	"context"
	"fmt"
	"time"
)

// UseCase use case для получения доступных слотов календаря
type UseCase struct {
	slotRepo     SlotRepository
	loc          *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(slotRepo SlotRepository, loc *time.Location, logger Logger) *UseCase {
	return &UseCase{
		slotRepo:     slotRepo,
		loc:          loc,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute возвращает доступные слоты, сгруппированные по дням и частям суток.
// Просроченные и зарезервированные слоты отфильтровываются на чтении:
// просроченный слот перестает выдаваться сразу, не дожидаясь чистки календаря.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: user=%s", req.UserID)

	now := uc.timeProvider.Now()

	slots, err := uc.slotRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list slots: %v", err)
		return nil, fmt.Errorf("%w: failed to list slots: %v", ErrInternal, err)
	}

	available := filterAvailable(slots, now)
	sortByTime(available)

	days := groupByDay(available, uc.loc)

	uc.logger.Info("GetAvailableSlots: %d available slots in %d days", len(available), len(days))

	return &Response{Days: days}, nil
}
