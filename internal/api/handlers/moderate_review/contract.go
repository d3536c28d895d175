package moderate_review

import (
	"context"

	"github.com/plenkanet/CleanNet-Backend/internal/service/reviews/models"
)

type ReviewsService interface {
	Moderate(ctx context.Context, id int64, req *models.ModerateReviewRequest, role string) (*models.ReviewResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
