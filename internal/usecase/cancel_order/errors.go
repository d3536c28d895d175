package cancel_order

import "errors"

var (
	// ErrOrderNotFound возвращается, когда заказ не найден
	ErrOrderNotFound = errors.New("cancel_order: order not found")

	// ErrForbidden возвращается, когда заказ отменяет не владелец и не администратор
	ErrForbidden = errors.New("cancel_order: access denied")

	// ErrCannotBeCancelled возвращается, когда заказ уже завершен или отменен
	ErrCannotBeCancelled = errors.New("cancel_order: order cannot be cancelled")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cancel_order: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_order: internal error")
)
