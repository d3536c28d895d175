package calendar_stats

import (
	"errors"
	"net/http"

	"github.com/plenkanet/CleanNet-Backend/internal/api/handlers"
	"github.com/plenkanet/CleanNet-Backend/internal/api/middleware"
	"github.com/plenkanet/CleanNet-Backend/internal/service/calendar"
)

const (
	msgAccessDenied = "требуются права администратора"
)

type Handler struct {
	service CalendarService
	logger  Logger
}

func NewHandler(service CalendarService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/slots/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Stats(r.Context(), middleware.GetUserRole(r.Context()))
	if err != nil {
		switch {
		case errors.Is(err, calendar.ErrAccessDenied):
			h.logger.Warn("GET /admin/slots/stats - Access denied")
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /admin/slots/stats - Failed to get stats: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
