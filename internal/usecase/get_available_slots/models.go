package get_available_slots

import (
	"time"

	"github.com/plenkanet/CleanNet-Backend/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	UserID string // идентификатор пользователя (для логирования, не влияет на результат)
}

// Response модель ответа с доступными слотами, сгруппированными по дням
type Response struct {
	Days []Day // дни в хронологическом порядке
}

// Day доступные слоты одного календарного дня
type Day struct {
	Date    time.Time // начало дня в часовом поясе сервиса
	Periods []Period  // части дня в порядке утро/день/вечер
}

// Period слоты одной части дня
type Period struct {
	Name  domain.DayPeriod
	Slots []Slot
}

// Slot модель доступного временного слота
type Slot struct {
	ID       int64
	SlotTime time.Time
}
