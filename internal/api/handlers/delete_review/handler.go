package delete_review

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/plenkanet/CleanNet-Backend/internal/api/handlers"
	"github.com/plenkanet/CleanNet-Backend/internal/api/middleware"
	"github.com/plenkanet/CleanNet-Backend/internal/service/reviews"
)

const (
	msgInvalidReviewID = "некорректный идентификатор отзыва"
	msgReviewNotFound  = "отзыв не найден"
	msgAccessDenied    = "требуются права администратора"
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

// Handle DELETE /api/v1/admin/reviews/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /admin/reviews/{id} - Invalid review id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReviewID)
		return
	}

	if err := h.service.Delete(r.Context(), id, middleware.GetUserRole(r.Context())); err != nil {
		switch {
		case errors.Is(err, reviews.ErrReviewNotFound):
			h.logger.Warn("DELETE /admin/reviews/{id} - Review id=%d not found", id)
			handlers.RespondNotFound(w, msgReviewNotFound)

		case errors.Is(err, reviews.ErrAccessDenied):
			h.logger.Warn("DELETE /admin/reviews/{id} - Access denied")
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("DELETE /admin/reviews/{id} - Failed to delete review id=%d: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/reviews/{id} - Review id=%d deleted", id)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
