package create_order

import "errors"

var (
	// ErrEmptyItems возвращается, когда в заказе не выбрано ни одной позиции
	ErrEmptyItems = errors.New("create_order: order has no items")

	// ErrInvalidAddress возвращается при слишком коротком или пустом адресе
	ErrInvalidAddress = errors.New("create_order: invalid address")

	// ErrScheduledInPast возвращается, когда выбранное время выезда уже прошло
	ErrScheduledInPast = errors.New("create_order: scheduled time is in the past")

	// ErrSlotNotAvailable возвращается, когда выбранный слот занят или не существует
	ErrSlotNotAvailable = errors.New("create_order: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_order: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_order: internal error")
)
