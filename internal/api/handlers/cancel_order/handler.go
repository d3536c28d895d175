package cancel_order

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/plenkanet/CleanNet-Backend/internal/api/handlers"
	"github.com/plenkanet/CleanNet-Backend/internal/api/middleware"
	cancelOrder "github.com/plenkanet/CleanNet-Backend/internal/usecase/cancel_order"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidOrderID     = "некорректный идентификатор заказа"
	msgOrderNotFound      = "заказ не найден"
	msgAccessDenied       = "доступ запрещен"
	msgCannotBeCancelled  = "заказ нельзя отменить в текущем статусе"
	msgInvalidInput       = "некорректные данные запроса"
)

// CancelOrderRequest HTTP request model
type CancelOrderRequest struct {
	Reason string `json:"reason,omitempty"`
}

// CancelOrderResponse HTTP response model
type CancelOrderResponse struct {
	ID          int64   `json:"id"`
	Number      string  `json:"number"`
	Status      string  `json:"status"`
	CancelledAt *string `json:"cancelledAt,omitempty"`
}

type Handler struct {
	useCase CancelOrderUseCase
	logger  Logger
}

func NewHandler(useCase CancelOrderUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/orders/{id}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /orders/{id}/cancel - Invalid order id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOrderID)
		return
	}

	var req CancelOrderRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /orders/{id}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	ctx := r.Context()
	result, err := h.useCase.Execute(ctx, &cancelOrder.Request{
		OrderID: id,
		UserID:  middleware.GetUserID(ctx),
		Role:    middleware.GetUserRole(ctx),
		Reason:  req.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, cancelOrder.ErrOrderNotFound):
			h.logger.Warn("POST /orders/{id}/cancel - Order id=%d not found", id)
			handlers.RespondNotFound(w, msgOrderNotFound)

		case errors.Is(err, cancelOrder.ErrForbidden):
			h.logger.Warn("POST /orders/{id}/cancel - Access denied to order id=%d", id)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, cancelOrder.ErrCannotBeCancelled):
			h.logger.Warn("POST /orders/{id}/cancel - Order id=%d cannot be cancelled", id)
			handlers.RespondError(w, http.StatusConflict, msgCannotBeCancelled)

		case errors.Is(err, cancelOrder.ErrInvalidInput):
			h.logger.Warn("POST /orders/{id}/cancel - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /orders/{id}/cancel - Failed to cancel order id=%d: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := &CancelOrderResponse{
		ID:     result.ID,
		Number: result.Number,
		Status: result.Status,
	}
	if result.CancelledAt != nil {
		s := result.CancelledAt.Format(time.RFC3339)
		response.CancelledAt = &s
	}

	h.logger.Info("POST /orders/{id}/cancel - Order id=%d cancelled", id)
	handlers.RespondJSON(w, http.StatusOK, response)
}
