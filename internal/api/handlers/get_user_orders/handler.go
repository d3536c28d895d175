package get_user_orders

import (
	"errors"
	"net/http"

	"github.com/plenkanet/CleanNet-Backend/internal/api/handlers"
	"github.com/plenkanet/CleanNet-Backend/internal/api/middleware"
	"github.com/plenkanet/CleanNet-Backend/internal/service/orders"
)

const (
	msgAccessDenied = "доступ запрещен"
)

type Handler struct {
	service OrdersService
	logger  Logger
}

func NewHandler(service OrdersService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/orders
// Query-параметр userId позволяет администратору смотреть чужую историю
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	callerID := middleware.GetUserID(ctx)

	targetUserID := r.URL.Query().Get("userId")
	if targetUserID == "" {
		targetUserID = callerID
	}

	result, err := h.service.GetUserOrders(ctx, targetUserID, callerID, middleware.GetUserRole(ctx))
	if err != nil {
		switch {
		case errors.Is(err, orders.ErrAccessDenied):
			h.logger.Warn("GET /orders - Access denied: caller=%s, target=%s", callerID, targetUserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /orders - Failed to get orders for user=%s: %v", targetUserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
