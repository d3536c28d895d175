package get_reviews

import (
	"context"

	"github.com/plenkanet/CleanNet-Backend/internal/service/reviews/models"
)

type ReviewsService interface {
	ListPublished(ctx context.Context) (*models.ReviewListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
