package generate_slots

import "errors"

var (
	// ErrForbidden возвращается, когда генерацию запускает не администратор
	ErrForbidden = errors.New("generate_slots: admin role required")

	// ErrInvalidRange возвращается, когда дата начала диапазона позже даты конца
	ErrInvalidRange = errors.New("generate_slots: start date is after end date")

	// ErrInvalidTemplate возвращается при некорректном шаблоне времени
	ErrInvalidTemplate = errors.New("generate_slots: invalid time template")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("generate_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("generate_slots: internal error")
)
