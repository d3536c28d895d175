package reviews

import (
	"context"

	"github.com/plenkanet/CleanNet-Backend/internal/domain"
)

// ReviewRepository интерфейс репозитория отзывов
type ReviewRepository interface {
	Create(ctx context.Context, rev *domain.Review) (*domain.Review, error)
	GetByID(ctx context.Context, id int64) (*domain.Review, error)
	ListPublished(ctx context.Context) ([]*domain.Review, error)
	ListWithFilter(ctx context.Context, filter domain.ReviewsFilter) ([]*domain.Review, error)
	AverageRating(ctx context.Context) (float64, error)
	SetModeration(ctx context.Context, id int64, approved, published bool) error
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
