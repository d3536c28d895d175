package domain

import "time"

// Slot временной слот выезда, доступный для бронирования.
// Пара "дата + время" является естественным ключом: два свободных слота
// с одинаковым временем существовать не могут.
type Slot struct {
	ID         int64
	SlotTime   time.Time
	Reserved   bool
	ReservedBy *string
	ReservedAt *time.Time
	CreatedAt  time.Time
}

// IsAvailable возвращает true, если слот можно забронировать прямо сейчас:
// время слота в будущем и слот не зарезервирован
func (s *Slot) IsAvailable(now time.Time) bool {
	return !s.Reserved && s.SlotTime.After(now)
}

// IsExpired возвращает true, если время слота уже прошло
func (s *Slot) IsExpired(now time.Time) bool {
	return !s.SlotTime.After(now)
}

// DayPeriod часть суток для группировки слотов в календаре
type DayPeriod string

const (
	PeriodMorning   DayPeriod = "morning"   // 00:00 - 11:59
	PeriodAfternoon DayPeriod = "afternoon" // 12:00 - 16:59
	PeriodEvening   DayPeriod = "evening"   // 17:00 - 23:59
)

// PeriodForHour классифицирует час суток (0-23) по части дня
func PeriodForHour(hour int) DayPeriod {
	switch {
	case hour < MorningEndHour:
		return PeriodMorning
	case hour < AfternoonEndHour:
		return PeriodAfternoon
	default:
		return PeriodEvening
	}
}

// CalendarStats сводная статистика календаря для админки
type CalendarStats struct {
	TotalSlots     int
	AvailableSlots int
	ReservedSlots  int
	ExpiredSlots   int
}
