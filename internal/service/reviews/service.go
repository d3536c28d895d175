package reviews

import (
	"context"
	"errors"
	"fmt"

	"github.com/plenkanet/CleanNet-Backend/internal/domain"
	reviewRepo "github.com/plenkanet/CleanNet-Backend/internal/infra/storage/review"
	"github.com/plenkanet/CleanNet-Backend/internal/service/reviews/models"
)

// Service сервис для работы с отзывами клиентов
type Service struct {
	reviewRepo ReviewRepository
	validator  *reviewValidator
	logger     Logger
}

// NewService создает новый экземпляр сервиса отзывов
func NewService(reviewRepo ReviewRepository, logger Logger) *Service {
	return &Service{
		reviewRepo: reviewRepo,
		validator:  newReviewValidator(),
		logger:     logger,
	}
}

// Create создает отзыв. Новый отзыв не одобрен и не опубликован:
// на публичной странице он появится только после модерации.
func (s *Service) Create(ctx context.Context, req *models.CreateReviewRequest) (*models.ReviewResponse, error) {
	s.logger.Info("CreateReview: user=%s, rating=%d, service=%s", req.UserID, req.Rating, req.ServiceType)

	if err := s.validator.Validate(req); err != nil {
		s.logger.Warn("CreateReview: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	review := &domain.Review{
		UserID:      req.UserID,
		UserName:    req.UserName,
		Rating:      req.Rating,
		Comment:     req.Comment,
		ServiceType: domain.ServiceType(req.ServiceType),
		Approved:    false,
		Published:   false,
	}

	created, err := s.reviewRepo.Create(ctx, review)
	if err != nil {
		s.logger.Error("CreateReview: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateReview: created review id=%d", created.ID)
	return models.FromDomainReview(created), nil
}

// ListPublished возвращает опубликованные отзывы и средний рейтинг.
// Публичная операция, доступна без авторизации.
func (s *Service) ListPublished(ctx context.Context) (*models.ReviewListResponse, error) {
	s.logger.Info("ListPublished: fetching published reviews")

	reviews, err := s.reviewRepo.ListPublished(ctx)
	if err != nil {
		s.logger.Error("ListPublished: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListPublished - repository error: %v", ErrInternal, err)
	}

	avg, err := s.reviewRepo.AverageRating(ctx)
	if err != nil {
		s.logger.Error("ListPublished: failed to get average rating: %v", err)
		return nil, fmt.Errorf("%w: ListPublished - failed to get average rating: %v", ErrInternal, err)
	}

	result := models.FromDomainReviewList(reviews)
	result.AverageRating = avg

	s.logger.Info("ListPublished: fetched %d reviews, avg=%.2f", result.Total, avg)
	return result, nil
}

// ListAll возвращает отзывы по фильтру для админки
func (s *Service) ListAll(ctx context.Context, req *models.ReviewsFilterRequest, role string) (*models.ReviewListResponse, error) {
	s.logger.Info("ListAll: fetching reviews for moderation")

	if role != domain.RoleAdmin {
		s.logger.Warn("ListAll: non-admin attempt")
		return nil, ErrAccessDenied
	}

	reviews, err := s.reviewRepo.ListWithFilter(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListAll: fetched %d reviews", len(reviews))
	return models.FromDomainReviewList(reviews), nil
}

// Moderate выставляет отзыву флаги модерации
func (s *Service) Moderate(ctx context.Context, id int64, req *models.ModerateReviewRequest, role string) (*models.ReviewResponse, error) {
	s.logger.Info("Moderate: review id=%d, approved=%v, published=%v", id, req.Approved, req.Published)

	if role != domain.RoleAdmin {
		s.logger.Warn("Moderate: non-admin attempt on review id=%d", id)
		return nil, ErrAccessDenied
	}

	if err := s.reviewRepo.SetModeration(ctx, id, req.Approved, req.Published); err != nil {
		if errors.Is(err, reviewRepo.ErrReviewNotFound) {
			s.logger.Warn("Moderate: review id=%d not found", id)
			return nil, ErrReviewNotFound
		}
		s.logger.Error("Moderate: repository error for review id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Moderate - repository error: %v", ErrInternal, err)
	}

	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Moderate: failed to reload review id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Moderate - failed to reload review: %v", ErrInternal, err)
	}

	s.logger.Info("Moderate: review id=%d moderated", id)
	return models.FromDomainReview(review), nil
}

// Delete удаляет отзыв
func (s *Service) Delete(ctx context.Context, id int64, role string) error {
	s.logger.Info("Delete: review id=%d", id)

	if role != domain.RoleAdmin {
		s.logger.Warn("Delete: non-admin attempt on review id=%d", id)
		return ErrAccessDenied
	}

	if err := s.reviewRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, reviewRepo.ErrReviewNotFound) {
			s.logger.Warn("Delete: review id=%d not found", id)
			return ErrReviewNotFound
		}
		s.logger.Error("Delete: repository error for review id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: deleted review id=%d", id)
	return nil
}
