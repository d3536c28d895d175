package delete_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/plenkanet/CleanNet-Backend/internal/api/handlers"
	"github.com/plenkanet/CleanNet-Backend/internal/api/middleware"
	"github.com/plenkanet/CleanNet-Backend/internal/service/calendar"
)

const (
	msgInvalidSlotID = "некорректный идентификатор слота"
	msgSlotNotFound  = "слот не найден"
	msgAccessDenied  = "требуются права администратора"
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

// Handle DELETE /api/v1/admin/slots/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /admin/slots/{id} - Invalid slot id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	if err := h.service.DeleteSlot(r.Context(), id, middleware.GetUserRole(r.Context())); err != nil {
		switch {
		case errors.Is(err, calendar.ErrSlotNotFound):
			h.logger.Warn("DELETE /admin/slots/{id} - Slot id=%d not found", id)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, calendar.ErrAccessDenied):
			h.logger.Warn("DELETE /admin/slots/{id} - Access denied")
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("DELETE /admin/slots/{id} - Failed to delete slot id=%d: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/slots/{id} - Slot id=%d deleted", id)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
