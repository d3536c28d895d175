package cancel_order

import (
	"context"
	"errors"
	"fmt"

	"github.com/plenkanet/CleanNet-Backend/internal/domain"
	orderRepo "github.com/plenkanet/CleanNet-Backend/internal/infra/storage/order"
	slotRepo "github.com/plenkanet/CleanNet-Backend/internal/infra/storage/slot"
)

// UseCase use case для отмены заказа
type UseCase struct {
	orderRepo OrderRepository
	slotRepo  SlotRepository
	txManager TransactionManager
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	orderRepo OrderRepository,
	slotRepo SlotRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		orderRepo: orderRepo,
		slotRepo:  slotRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute отменяет заказ и возвращает его слот в календарь.
// Отмена и освобождение слота выполняются в одной транзакции.
// Отсутствие зарезервированного слота на время заказа не считается ошибкой:
// слот мог быть удален чисткой просроченных записей.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelOrder: order=%d, user=%s", req.OrderID, req.UserID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CancelOrder: validation failed: %v", err)
		return nil, err
	}

	order, err := uc.orderRepo.GetByID(ctx, req.OrderID)
	if err != nil {
		if errors.Is(err, orderRepo.ErrOrderNotFound) {
			uc.logger.Warn("CancelOrder: order id=%d not found", req.OrderID)
			return nil, ErrOrderNotFound
		}
		uc.logger.Error("CancelOrder: failed to get order id=%d: %v", req.OrderID, err)
		return nil, fmt.Errorf("%w: failed to get order: %v", ErrInternal, err)
	}

	if order.UserID != req.UserID && req.Role != domain.RoleAdmin {
		uc.logger.Warn("CancelOrder: user=%s is not the owner of order id=%d", req.UserID, req.OrderID)
		return nil, ErrForbidden
	}

	if !order.CanBeCancelled() {
		uc.logger.Warn("CancelOrder: order id=%d in status %s cannot be cancelled", req.OrderID, order.Status)
		return nil, ErrCannotBeCancelled
	}

	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := uc.orderRepo.Cancel(txCtx, order.ID, req.Reason); err != nil {
			uc.logger.Error("CancelOrder: failed to cancel order id=%d: %v", order.ID, err)
			return fmt.Errorf("%w: failed to cancel order: %v", ErrInternal, err)
		}

		if order.HasScheduledSlot() {
			err := uc.slotRepo.Release(txCtx, *order.ScheduledAt)
			if err != nil && !errors.Is(err, slotRepo.ErrSlotNotFound) {
				uc.logger.Error("CancelOrder: failed to release slot for order id=%d: %v", order.ID, err)
				return fmt.Errorf("%w: failed to release slot: %v", ErrInternal, err)
			}
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				uc.logger.Info("CancelOrder: slot for order id=%d already gone, nothing to release", order.ID)
			}
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	cancelled, err := uc.orderRepo.GetByID(ctx, order.ID)
	if err != nil {
		uc.logger.Error("CancelOrder: failed to reload order id=%d: %v", order.ID, err)
		return nil, fmt.Errorf("%w: failed to reload order: %v", ErrInternal, err)
	}

	uc.logger.Info("CancelOrder: successfully cancelled order number=%s", cancelled.Number)

	return &Response{
		ID:          cancelled.ID,
		Number:      cancelled.Number,
		Status:      string(cancelled.Status),
		CancelledAt: cancelled.CancelledAt,
	}, nil
}

// validateRequest проверяет корректность входных данных отмены
func validateRequest(req *Request) error {
	if req.OrderID <= 0 {
		return fmt.Errorf("%w: order id is required", ErrInvalidInput)
	}
	if req.UserID == "" {
		return fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if len(req.Reason) > domain.MaxReasonLength {
		return fmt.Errorf("%w: reason is too long, max %d characters", ErrInvalidInput, domain.MaxReasonLength)
	}
	return nil
}
