package calendar

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("slot not found")

	// ErrSlotInPast возвращается при попытке создать слот на прошедшее время
	ErrSlotInPast = errors.New("slot time is in the past")

	// ErrDuplicateSlot возвращается, когда свободный слот на это время уже существует
	ErrDuplicateSlot = errors.New("slot already exists at this time")

	// ErrAccessDenied возвращается, когда операцию выполняет не администратор
	ErrAccessDenied = errors.New("access denied")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
