package telegram

import "errors"

var (
	// ErrSendFailed возвращается при ошибке отправки сообщения.
	// Вызывающая сторона обязана трактовать её как некритичную:
	// уведомление не влияет на корректность бронирования.
	ErrSendFailed = errors.New("telegram client: failed to send message")

	// ErrInit возвращается при ошибке инициализации бота
	ErrInit = errors.New("telegram client: failed to initialize bot")
)
