package generate_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/plenkanet/CleanNet-Backend/internal/domain"
	"github.com/plenkanet/CleanNet-Backend/pkg/types"
)

// UseCase use case для пакетной генерации слотов календаря
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

// Execute генерирует слоты на каждый день диапазона по шаблонам времени.
// Генерация идемпотентна: кандидаты, совпадающие с уже существующими слотами,
// пропускаются, поэтому повторный запуск по тому же диапазону ничего не меняет.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GenerateSlots: user=%s, range=%s..%s, templates=%d, skipWeekends=%v",
		req.UserID, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat),
		len(req.Templates), req.SkipWeekends)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GenerateSlots: validation failed: %v", err)
		return nil, err
	}

	templates, err := parseTemplates(req.Templates)
	if err != nil {
		uc.logger.Warn("GenerateSlots: template validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	candidates := uc.buildCandidates(req, templates, now)
	if len(candidates) == 0 {
		uc.logger.Info("GenerateSlots: no future candidates in range")
		return &Response{CreatedCount: 0}, nil
	}

	// Отсекаем времена, на которые слот уже существует (включая зарезервированные).
	// Гонку двух конкурентных генераций добивает ON CONFLICT на уровне хранилища.
	rangeFrom, rangeTo := candidateBounds(candidates)
	existing, err := uc.slotRepo.ListByDateRange(ctx, rangeFrom, rangeTo)
	if err != nil {
		uc.logger.Error("GenerateSlots: failed to list existing slots: %v", err)
		return nil, fmt.Errorf("%w: failed to list existing slots: %v", ErrInternal, err)
	}

	fresh := filterExisting(candidates, existing)

	created, err := uc.slotRepo.BulkCreate(ctx, fresh)
	if err != nil {
		uc.logger.Error("GenerateSlots: failed to bulk create slots: %v", err)
		return nil, fmt.Errorf("%w: failed to bulk create slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GenerateSlots: created %d of %d candidates", created, len(candidates))

	return &Response{CreatedCount: created}, nil
}

// buildCandidates перебирает дни диапазона (включительно) и составляет
// кандидатов "день + шаблон" в часовом поясе сервиса.
// Выходные пропускаются по флагу, прошедшие времена - всегда.
func (uc *UseCase) buildCandidates(req *Request, templates []types.TimeString, now time.Time) []time.Time {
	start := req.StartDate.In(uc.loc)
	end := req.EndDate.In(uc.loc)

	startDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, uc.loc)
	endDay := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, uc.loc)

	candidates := make([]time.Time, 0, len(templates))

	for day := startDay; !day.After(endDay); day = day.AddDate(0, 0, 1) {
		if req.SkipWeekends && isWeekend(day) {
			continue
		}

		for _, tmpl := range templates {
			slotTime := time.Date(day.Year(), day.Month(), day.Day(), tmpl.Hour(), tmpl.Minute(), 0, 0, uc.loc)
			if !slotTime.After(now) {
				continue
			}
			candidates = append(candidates, slotTime)
		}
	}

	return candidates
}

// candidateBounds возвращает минимальное и максимальное время среди кандидатов.
// Кандидаты упорядочены только по дням: внутри дня они следуют порядку
// шаблонов, поэтому первый и последний элементы границами не являются.
func candidateBounds(candidates []time.Time) (time.Time, time.Time) {
	from, to := candidates[0], candidates[0]
	for _, c := range candidates[1:] {
		if c.Before(from) {
			from = c
		}
		if c.After(to) {
			to = c
		}
	}
	return from, to
}

// filterExisting убирает кандидатов, на время которых слот уже существует
func filterExisting(candidates []time.Time, existing []*domain.Slot) []time.Time {
	taken := make(map[int64]struct{}, len(existing))
	for _, s := range existing {
		taken[s.SlotTime.Unix()] = struct{}{}
	}

	fresh := make([]time.Time, 0, len(candidates))
	for _, c := range candidates {
		if _, ok := taken[c.Unix()]; ok {
			continue
		}
		fresh = append(fresh, c)
	}

	return fresh
}

// isWeekend возвращает true для субботы и воскресенья
func isWeekend(day time.Time) bool {
	wd := day.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
