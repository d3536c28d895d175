package create_review

import (
	"context"

	"github.com/plenkanet/CleanNet-Backend/internal/service/reviews/models"
)

type ReviewsService interface {
	Create(ctx context.Context, req *models.CreateReviewRequest) (*models.ReviewResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
