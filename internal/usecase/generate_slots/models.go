package generate_slots

import "time"

// Request модель запроса на пакетную генерацию слотов
type Request struct {
	UserID string // идентификатор администратора (для логирования)
	Role   string // роль вызывающей стороны

	StartDate time.Time // первый день диапазона (включительно)
	EndDate   time.Time // последний день диапазона (включительно)

	// Шаблоны времени в формате HH:MM; пустой список означает
	// предустановленный набор шаблонов
	Templates []string

	SkipWeekends bool // пропускать субботу и воскресенье
}

// Response модель ответа генератора
type Response struct {
	CreatedCount int // количество реально записанных слотов
}
