package domain

import (
	"math"
	"time"
)

// OrderStatus статус заказа
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // создан без подтвержденного времени
	OrderStatusConfirmed OrderStatus = "confirmed" // время выезда зарезервировано
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// OrderItems состав заказа на чистку
type OrderItems struct {
	CarpetArea    float64 // площадь ковров, кв.м
	ChairCount    int
	ArmchairCount int
	SofaCount     int
	MattressCount int
	WithPillows   bool // чистка подушек дивана
}

// IsEmpty возвращает true, если в заказе не выбрано ни одной позиции
func (i OrderItems) IsEmpty() bool {
	return i.CarpetArea <= 0 &&
		i.ChairCount <= 0 &&
		i.ArmchairCount <= 0 &&
		i.SofaCount <= 0 &&
		i.MattressCount <= 0
}

// Price возвращает стоимость заказа по плоскому тарифу, в злотых
func (i OrderItems) Price() float64 {
	total := float64(i.SofaCount) * TariffSofa
	if i.WithPillows {
		total += float64(i.SofaCount) * TariffSofaPillows
	}
	total += float64(i.ArmchairCount) * TariffArmchair
	total += float64(i.ChairCount) * TariffChair
	total += float64(i.MattressCount) * TariffMattress
	total += i.CarpetArea * TariffCarpetPerSqM
	return total
}

// EstimatedMinutes возвращает оценку длительности работ в минутах
func (i OrderItems) EstimatedMinutes() int {
	minutes := float64(i.SofaCount)*MinutesPerSofa +
		float64(i.ArmchairCount)*MinutesPerArmchair +
		float64(i.ChairCount)*MinutesPerChair +
		float64(i.MattressCount)*MinutesPerMattress +
		i.CarpetArea*MinutesPerCarpetSqM
	return int(math.Round(minutes))
}

// Order заказ на выездную чистку
type Order struct {
	ID     int64
	Number string // публичный номер заказа (uuid)

	UserID    string // идентификатор пользователя из identity-провайдера
	UserEmail string
	UserName  string

	Items          OrderItems
	Address        string
	AdditionalInfo *string
	PhotoURLs      []string

	Price            float64
	EstimatedMinutes int

	ScheduledAt *time.Time // зарезервированный слот; nil = время согласуется по телефону
	Status      OrderStatus

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive возвращает true, если заказ не отменен и не завершен
func (o *Order) IsActive() bool {
	return o.Status == OrderStatusPending || o.Status == OrderStatusConfirmed
}

// CanBeCancelled возвращает true, если заказ можно отменить
func (o *Order) CanBeCancelled() bool {
	return o.Status == OrderStatusPending || o.Status == OrderStatusConfirmed
}

// HasScheduledSlot возвращает true, если за заказом закреплен временной слот
func (o *Order) HasScheduledSlot() bool {
	return o.ScheduledAt != nil
}
