package domain

import "time"

// ServiceType тип услуги, к которой относится отзыв
type ServiceType string

const (
	ServiceFurniture ServiceType = "furniture"
	ServiceCarpet    ServiceType = "carpet"
	ServiceMattress  ServiceType = "mattress"
)

// ValidServiceType возвращает true для известного типа услуги
func ValidServiceType(s ServiceType) bool {
	switch s {
	case ServiceFurniture, ServiceCarpet, ServiceMattress:
		return true
	default:
		return false
	}
}

// Review отзыв клиента. Публикуется только после модерации.
type Review struct {
	ID          int64
	UserID      string
	UserName    string
	Rating      int // 1-5
	Comment     string
	ServiceType ServiceType
	Approved    bool // одобрен модератором
	Published   bool // виден на публичной странице
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsVisible возвращает true, если отзыв показывается на публичной странице
func (r *Review) IsVisible() bool {
	return r.Approved && r.Published
}

// ReviewsFilter фильтр для выборки отзывов в админке
type ReviewsFilter struct {
	Approved *bool // nil - без фильтра по статусу модерации
	Rating   *int  // nil - любой рейтинг
}
