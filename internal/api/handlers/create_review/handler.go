package create_review

import (
	"errors"
	"net/http"

	"github.com/plenkanet/CleanNet-Backend/internal/api/handlers"
	"github.com/plenkanet/CleanNet-Backend/internal/api/middleware"
	"github.com/plenkanet/CleanNet-Backend/internal/service/reviews"
	"github.com/plenkanet/CleanNet-Backend/internal/service/reviews/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
)

// CreateReviewRequest HTTP request model
type CreateReviewRequest struct {
	Rating      int    `json:"rating"`
	Comment     string `json:"comment"`
	ServiceType string `json:"serviceType"`
}

type Handler struct {
	service ReviewsService
	logger  Logger
}

func NewHandler(service ReviewsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReviewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reviews - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	ctx := r.Context()
	result, err := h.service.Create(ctx, &models.CreateReviewRequest{
		UserID:      middleware.GetUserID(ctx),
		UserName:    middleware.GetUserName(ctx),
		Rating:      req.Rating,
		Comment:     req.Comment,
		ServiceType: req.ServiceType,
	})
	if err != nil {
		switch {
		case errors.Is(err, reviews.ErrValidation):
			h.logger.Warn("POST /reviews - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /reviews - Failed to create review: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reviews - Review created: id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
