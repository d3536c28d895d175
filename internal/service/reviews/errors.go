package reviews

import "errors"

var (
	// ErrReviewNotFound возвращается, когда отзыв не найден
	ErrReviewNotFound = errors.New("review not found")

	// ErrAccessDenied возвращается, когда операцию выполняет не администратор
	ErrAccessDenied = errors.New("access denied")

	// ErrValidation возвращается при некорректных данных отзыва
	ErrValidation = errors.New("review validation failed")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
