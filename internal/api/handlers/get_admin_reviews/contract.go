package get_admin_reviews

import (
	"context"

	"github.com/plenkanet/CleanNet-Backend/internal/service/reviews/models"
)

type ReviewsService interface {
	ListAll(ctx context.Context, req *models.ReviewsFilterRequest, role string) (*models.ReviewListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
