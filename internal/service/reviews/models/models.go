package models

import (
	"time"

	"github.com/plenkanet/CleanNet-Backend/internal/domain"
)

// CreateReviewRequest запрос на создание отзыва.
// Теги validate описывают границы: рейтинг 1-5, комментарий от 10 символов,
// тип услуги из фиксированного перечня.
type CreateReviewRequest struct {
	UserID      string `json:"userId" validate:"required"`
	UserName    string `json:"userName" validate:"required"`
	Rating      int    `json:"rating" validate:"required,min=1,max=5"`
	Comment     string `json:"comment" validate:"required,min=10"`
	ServiceType string `json:"serviceType" validate:"required,oneof=furniture carpet mattress"`
}

// ModerateReviewRequest запрос на модерацию отзыва
type ModerateReviewRequest struct {
	Approved  bool `json:"approved"`
	Published bool `json:"published"`
}

// ReviewsFilterRequest фильтр выборки отзывов в админке
type ReviewsFilterRequest struct {
	Approved *bool `json:"approved,omitempty"`
	Rating   *int  `json:"rating,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ReviewsFilterRequest) ToDomainFilter() domain.ReviewsFilter {
	return domain.ReviewsFilter{
		Approved: r.Approved,
		Rating:   r.Rating,
	}
}

// ReviewResponse ответ с данными отзыва
type ReviewResponse struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"userId"`
	UserName    string    `json:"userName"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment"`
	ServiceType string    `json:"serviceType"`
	Approved    bool      `json:"approved"`
	Published   bool      `json:"published"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ReviewListResponse ответ со списком отзывов
type ReviewListResponse struct {
	Reviews       []ReviewResponse `json:"reviews"`
	Total         int              `json:"total"`
	AverageRating float64          `json:"averageRating,omitempty"`
}

// FromDomainReview конвертирует domain отзыв в response
func FromDomainReview(r *domain.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:          r.ID,
		UserID:      r.UserID,
		UserName:    r.UserName,
		Rating:      r.Rating,
		Comment:     r.Comment,
		ServiceType: string(r.ServiceType),
		Approved:    r.Approved,
		Published:   r.Published,
		CreatedAt:   r.CreatedAt,
	}
}

// FromDomainReviewList конвертирует список domain отзывов в response
func FromDomainReviewList(reviews []*domain.Review) *ReviewListResponse {
	result := &ReviewListResponse{
		Reviews: make([]ReviewResponse, 0, len(reviews)),
		Total:   len(reviews),
	}
	for _, r := range reviews {
		result.Reviews = append(result.Reviews, *FromDomainReview(r))
	}
	return result
}
