package cancel_order

import "time"

// Request модель запроса на отмену заказа
type Request struct {
	OrderID int64
	UserID  string // вызывающая сторона; должен совпадать с владельцем заказа
	Role    string // администратор может отменить любой заказ
	Reason  string
}

// Response модель ответа с отмененным заказом
type Response struct {
	ID          int64
	Number      string
	Status      string
	CancelledAt *time.Time
}
