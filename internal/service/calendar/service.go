package calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/plenkanet/CleanNet-Backend/internal/domain"
	slotRepo "github.com/plenkanet/CleanNet-Backend/internal/infra/storage/slot"
	"github.com/plenkanet/CleanNet-Backend/internal/service/calendar/models"
)

// Service сервис администрирования календаря слотов
type Service struct {
	slotRepo     SlotRepository
	loc          *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса календаря
func NewService(slotRepo SlotRepository, loc *time.Location, logger Logger) *Service {
	return &Service{
		slotRepo:     slotRepo,
		loc:          loc,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// AddSlot создает один свободный слот на указанное время.
// Доступно только администратору; время должно быть в будущем.
func (s *Service) AddSlot(ctx context.Context, slotTime time.Time, role string) (*models.SlotResponse, error) {
	s.logger.Info("AddSlot: time=%s", slotTime.Format(time.RFC3339))

	if role != domain.RoleAdmin {
		s.logger.Warn("AddSlot: non-admin attempt")
		return nil, ErrAccessDenied
	}

	now := s.timeProvider.Now()
	if !slotTime.After(now) {
		s.logger.Warn("AddSlot: time %s is in the past", slotTime.Format(time.RFC3339))
		return nil, ErrSlotInPast
	}

	created, err := s.slotRepo.Create(ctx, slotTime)
	if err != nil {
		if errors.Is(err, slotRepo.ErrDuplicateSlot) {
			s.logger.Warn("AddSlot: slot at %s already exists", slotTime.Format(time.RFC3339))
			return nil, ErrDuplicateSlot
		}
		s.logger.Error("AddSlot: repository error: %v", err)
		return nil, fmt.Errorf("%w: AddSlot - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddSlot: created slot id=%d", created.ID)
	return models.FromDomainSlot(created), nil
}

// DeleteSlot удаляет слот по ID. Доступно только администратору.
func (s *Service) DeleteSlot(ctx context.Context, id int64, role string) error {
	s.logger.Info("DeleteSlot: id=%d", id)

	if role != domain.RoleAdmin {
		s.logger.Warn("DeleteSlot: non-admin attempt on slot id=%d", id)
		return ErrAccessDenied
	}

	if err := s.slotRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("DeleteSlot: slot id=%d not found", id)
			return ErrSlotNotFound
		}
		s.logger.Error("DeleteSlot: repository error for slot id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteSlot - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteSlot: deleted slot id=%d", id)
	return nil
}

// Stats возвращает сводную статистику календаря. Доступно только администратору.
// Просроченными считаются слоты раньше начала текущего дня в таймзоне сервиса:
// сегодняшние слоты остаются в доступных/зарезервированных до следующей чистки.
func (s *Service) Stats(ctx context.Context, role string) (*models.StatsResponse, error) {
	s.logger.Info("Stats: fetching calendar stats")

	if role != domain.RoleAdmin {
		s.logger.Warn("Stats: non-admin attempt")
		return nil, ErrAccessDenied
	}

	now := s.timeProvider.Now().In(s.loc)
	cutoff := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)

	stats, err := s.slotRepo.Stats(ctx, cutoff)
	if err != nil {
		s.logger.Error("Stats: repository error: %v", err)
		return nil, fmt.Errorf("%w: Stats - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainStats(stats), nil
}
