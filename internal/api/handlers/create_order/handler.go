package create_order

import (
	"errors"
	"net/http"

	"github.com/plenkanet/CleanNet-Backend/internal/api/handlers"
	"github.com/plenkanet/CleanNet-Backend/internal/api/middleware"
	createOrder "github.com/plenkanet/CleanNet-Backend/internal/usecase/create_order"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidScheduledAt = "некорректный формат времени выезда, ожидается RFC3339"
	msgEmptyItems         = "в заказе не выбрано ни одной позиции"
	msgInvalidAddress     = "адрес слишком короткий"
	msgScheduledInPast    = "выбранное время выезда уже прошло"
	msgSlotNotAvailable   = "выбранное время уже занято, обновите список доступных слотов"
	msgInvalidInput       = "некорректные данные заказа"
)

type Handler struct {
	useCase CreateOrderUseCase
	logger  Logger
}

func NewHandler(useCase CreateOrderUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/orders
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /orders - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	ctx := r.Context()
	useCaseReq, err := req.ToUseCaseRequest(
		middleware.GetUserID(ctx),
		middleware.GetUserEmail(ctx),
		middleware.GetUserName(ctx),
	)
	if err != nil {
		h.logger.Warn("POST /orders - Failed to parse scheduledAt: %v", err)
		handlers.RespondBadRequest(w, msgInvalidScheduledAt)
		return
	}

	result, err := h.useCase.Execute(ctx, useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createOrder.ErrSlotNotAvailable):
			h.logger.Warn("POST /orders - Slot not available: user=%s", useCaseReq.UserID)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createOrder.ErrEmptyItems):
			h.logger.Warn("POST /orders - Empty items: user=%s", useCaseReq.UserID)
			handlers.RespondBadRequest(w, msgEmptyItems)

		case errors.Is(err, createOrder.ErrInvalidAddress):
			h.logger.Warn("POST /orders - Invalid address: user=%s", useCaseReq.UserID)
			handlers.RespondBadRequest(w, msgInvalidAddress)

		case errors.Is(err, createOrder.ErrScheduledInPast):
			h.logger.Warn("POST /orders - Scheduled time in past: user=%s", useCaseReq.UserID)
			handlers.RespondBadRequest(w, msgScheduledInPast)

		case errors.Is(err, createOrder.ErrInvalidInput):
			h.logger.Warn("POST /orders - Invalid input: user=%s: %v", useCaseReq.UserID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /orders - Failed to create order: user=%s, error=%v", useCaseReq.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /orders - Order created successfully: number=%s, user=%s", result.Number, useCaseReq.UserID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
