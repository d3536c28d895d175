package get_admin_reviews

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/plenkanet/CleanNet-Backend/internal/api/handlers"
	"github.com/plenkanet/CleanNet-Backend/internal/api/middleware"
	"github.com/plenkanet/CleanNet-Backend/internal/service/reviews"
	"github.com/plenkanet/CleanNet-Backend/internal/service/reviews/models"
	"github.com/plenkanet/CleanNet-Backend/pkg/ptr"
)

const (
	msgAccessDenied   = "требуются права администратора"
	msgInvalidFilter  = "некорректные параметры фильтра"
)

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

// Handle GET /api/v1/admin/reviews
// Query-параметры: approved=true|false, rating=1..5
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		h.logger.Warn("GET /admin/reviews - Invalid filter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	ctx := r.Context()
	result, err := h.service.ListAll(ctx, filter, middleware.GetUserRole(ctx))
	if err != nil {
		switch {
		case errors.Is(err, reviews.ErrAccessDenied):
			h.logger.Warn("GET /admin/reviews - Access denied")
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /admin/reviews - Failed to list reviews: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// parseFilter разбирает query-параметры фильтра
func parseFilter(r *http.Request) (*models.ReviewsFilterRequest, error) {
	filter := &models.ReviewsFilterRequest{}

	if v := r.URL.Query().Get("approved"); v != "" {
		approved, err := strconv.ParseBool(v)
		if err != nil {
			return nil, err
		}
		filter.Approved = ptr.Ptr(approved)
	}

	if v := r.URL.Query().Get("rating"); v != "" {
		rating, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		filter.Rating = ptr.Ptr(rating)
	}

	return filter, nil
}
