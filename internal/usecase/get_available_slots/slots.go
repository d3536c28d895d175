package get_available_slots

import (
	"sort"
	"time"

	"github.com/plenkanet/CleanNet-Backend/internal/domain"
)

// filterAvailable оставляет только слоты, доступные для бронирования:
// время в будущем относительно now и слот не зарезервирован
func filterAvailable(slots []*domain.Slot, now time.Time) []*domain.Slot {
	available := make([]*domain.Slot, 0, len(slots))
	for _, s := range slots {
		if s.IsAvailable(now) {
			available = append(available, s)
		}
	}
	return available
}

// sortByTime сортирует слоты по возрастанию времени
func sortByTime(slots []*domain.Slot) {
	sort.Slice(slots, func(i, j int) bool {
		return slots[i].SlotTime.Before(slots[j].SlotTime)
	})
}

// groupByDay группирует отсортированные слоты по календарным дням в часовом
// поясе loc, а внутри дня - по частям суток. Дни без слотов не включаются.
func groupByDay(slots []*domain.Slot, loc *time.Location) []Day {
	days := make([]Day, 0)

	var currentDay *Day
	for _, s := range slots {
		local := s.SlotTime.In(loc)
		dayStart := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)

		if currentDay == nil || !currentDay.Date.Equal(dayStart) {
			days = append(days, Day{Date: dayStart})
			currentDay = &days[len(days)-1]
		}

		period := domain.PeriodForHour(local.Hour())
		appendToPeriod(currentDay, period, Slot{ID: s.ID, SlotTime: s.SlotTime})
	}

	return days
}

// appendToPeriod добавляет слот в нужную часть дня, создавая её при необходимости.
// Слоты приходят отсортированными, поэтому части дня образуются в правильном порядке.
func appendToPeriod(day *Day, period domain.DayPeriod, slot Slot) {
	for i := range day.Periods {
		if day.Periods[i].Name == period {
			day.Periods[i].Slots = append(day.Periods[i].Slots, slot)
			return
		}
	}
	day.Periods = append(day.Periods, Period{
		Name:  period,
		Slots: []Slot{slot},
	})
}
