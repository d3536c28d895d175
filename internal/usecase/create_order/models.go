package create_order

import (
	"time"

	"github.com/plenkanet/CleanNet-Backend/internal/domain"
)

// Request модель запроса на создание заказа
type Request struct {
	UserID    string
	UserEmail string
	UserName  string

	Items          domain.OrderItems
	Address        string
	AdditionalInfo *string
	PhotoURLs      []string

	// Выбранный слот выезда; nil = время согласуется по телефону
	ScheduledAt *time.Time
}

// Response модель ответа с созданным заказом
type Response struct {
	ID               int64
	Number           string
	Status           string
	Price            float64
	EstimatedMinutes int
	ScheduledAt      *time.Time
	CreatedAt        time.Time
}
