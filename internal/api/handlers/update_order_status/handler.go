package update_order_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/plenkanet/CleanNet-Backend/internal/api/handlers"
	"github.com/plenkanet/CleanNet-Backend/internal/api/middleware"
	"github.com/plenkanet/CleanNet-Backend/internal/service/orders"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidOrderID     = "некорректный идентификатор заказа"
	msgInvalidStatus      = "недопустимый статус заказа"
	msgOrderNotFound      = "заказ не найден"
	msgAccessDenied       = "требуются права администратора"
)

type request struct {
	Status string `json:"status"`
}

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

// Handle PATCH /api/v1/admin/orders/{id}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /admin/orders/{id}/status - Invalid order id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOrderID)
		return
	}

	var req request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/orders/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	ctx := r.Context()
	result, err := h.service.UpdateStatus(ctx, id, req.Status, middleware.GetUserRole(ctx))
	if err != nil {
		switch {
		case errors.Is(err, orders.ErrOrderNotFound):
			h.logger.Warn("PATCH /admin/orders/{id}/status - Order id=%d not found", id)
			handlers.RespondNotFound(w, msgOrderNotFound)

		case errors.Is(err, orders.ErrInvalidStatus):
			h.logger.Warn("PATCH /admin/orders/{id}/status - Invalid status %q for order id=%d", req.Status, id)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, orders.ErrAccessDenied):
			h.logger.Warn("PATCH /admin/orders/{id}/status - Access denied")
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("PATCH /admin/orders/{id}/status - Failed to update order id=%d: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/orders/{id}/status - Order id=%d moved to status=%s", id, req.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
