package create_slot

import (
	"errors"
	"net/http"
	"time"

	"github.com/plenkanet/CleanNet-Backend/internal/api/handlers"
	"github.com/plenkanet/CleanNet-Backend/internal/api/middleware"
	"github.com/plenkanet/CleanNet-Backend/internal/service/calendar"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSlotTime    = "некорректный формат времени слота, ожидается RFC3339"
	msgSlotInPast         = "время слота уже прошло"
	msgDuplicateSlot      = "свободный слот на это время уже существует"
	msgAccessDenied       = "требуются права администратора"
)

// CreateSlotRequest HTTP request model
type CreateSlotRequest struct {
	SlotTime string `json:"slotTime"` // RFC3339
}

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

// Handle POST /api/v1/admin/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	slotTime, err := time.Parse(time.RFC3339, req.SlotTime)
	if err != nil {
		h.logger.Warn("POST /admin/slots - Invalid slot time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotTime)
		return
	}

	result, err := h.service.AddSlot(r.Context(), slotTime, middleware.GetUserRole(r.Context()))
	if err != nil {
		switch {
		case errors.Is(err, calendar.ErrSlotInPast):
			h.logger.Warn("POST /admin/slots - Slot time in past: %s", req.SlotTime)
			handlers.RespondBadRequest(w, msgSlotInPast)

		case errors.Is(err, calendar.ErrDuplicateSlot):
			h.logger.Warn("POST /admin/slots - Duplicate slot: %s", req.SlotTime)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateSlot)

		case errors.Is(err, calendar.ErrAccessDenied):
			h.logger.Warn("POST /admin/slots - Access denied")
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("POST /admin/slots - Failed to create slot: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/slots - Slot created: id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
