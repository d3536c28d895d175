package sweep_slots

import "errors"

var (
	// ErrForbidden возвращается, когда чистку запускает не администратор
	ErrForbidden = errors.New("sweep_slots: admin role required")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("sweep_slots: internal error")
)
