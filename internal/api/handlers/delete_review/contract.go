package delete_review

import "context"

type ReviewsService interface {
	Delete(ctx context.Context, id int64, role string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
