package sweep_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/plenkanet/CleanNet-Backend/internal/domain"
)

// Request модель запроса на чистку просроченных слотов
type Request struct {
	UserID string // идентификатор администратора (для логирования)
	Role   string // роль вызывающей стороны
}

// Response модель ответа чистки
type Response struct {
	DeletedCount int // количество удаленных слотов
}

// UseCase use case для чистки просроченных слотов календаря
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

// Execute удаляет все слоты раньше начала текущего дня в часовом поясе
// сервиса, включая зарезервированные. Слоты сегодняшнего дня не трогаются,
// даже если их время уже прошло: они уходят при следующей чистке.
// Операция идемпотентна, повторный запуск возвращает ноль.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SweepSlots: user=%s", req.UserID)

	if req.Role != domain.RoleAdmin {
		uc.logger.Warn("SweepSlots: user=%s is not an admin", req.UserID)
		return nil, ErrForbidden
	}

	now := uc.timeProvider.Now().In(uc.loc)
	cutoff := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, uc.loc)

	deleted, err := uc.slotRepo.DeleteExpired(ctx, cutoff)
	if err != nil {
		uc.logger.Error("SweepSlots: failed to delete expired slots: %v", err)
		return nil, fmt.Errorf("%w: failed to delete expired slots: %v", ErrInternal, err)
	}

	uc.logger.Info("SweepSlots: deleted %d slots before %s", deleted, cutoff.Format(domain.DateFormat))

	return &Response{DeletedCount: deleted}, nil
}
