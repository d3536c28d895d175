package create_order

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/plenkanet/CleanNet-Backend/internal/domain"
	slotRepo "github.com/plenkanet/CleanNet-Backend/internal/infra/storage/slot"
)

// UseCase use case для создания заказа на чистку
type UseCase struct {
	orderRepo    OrderRepository
	slotRepo     SlotRepository
	notifier     Notifier
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	orderRepo OrderRepository,
	slotRepo SlotRepository,
	notifier Notifier,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		orderRepo:    orderRepo,
		slotRepo:     slotRepo,
		notifier:     notifier,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute создает заказ. Если клиент выбрал время выезда, слот резервируется
// и заказ создаются в одной транзакции: резервирование идет первым, поэтому
// проигравший гонку за слот не оставляет после себя заказа. Уведомление
// оператору отправляется после коммита и на результат не влияет.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateOrder: user=%s, scheduled=%v", req.UserID, req.ScheduledAt)

	now := uc.timeProvider.Now()

	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("CreateOrder: validation failed: %v", err)
		return nil, err
	}

	order := &domain.Order{
		Number:           uuid.New().String(),
		UserID:           req.UserID,
		UserEmail:        req.UserEmail,
		UserName:         req.UserName,
		Items:            req.Items,
		Address:          req.Address,
		AdditionalInfo:   req.AdditionalInfo,
		PhotoURLs:        req.PhotoURLs,
		Price:            req.Items.Price(),
		EstimatedMinutes: req.Items.EstimatedMinutes(),
		ScheduledAt:      req.ScheduledAt,
		Status:           domain.OrderStatusPending,
	}
	if req.ScheduledAt != nil {
		order.Status = domain.OrderStatusConfirmed
	}

	var result *domain.Order

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		if req.ScheduledAt != nil {
			if _, err := uc.slotRepo.Reserve(txCtx, *req.ScheduledAt, req.UserID); err != nil {
				if errors.Is(err, slotRepo.ErrSlotNotAvailable) {
					uc.logger.Warn("CreateOrder: slot %s already taken, user=%s",
						req.ScheduledAt.Format("2006-01-02 15:04"), req.UserID)
					return ErrSlotNotAvailable
				}
				uc.logger.Error("CreateOrder: failed to reserve slot: %v", err)
				return fmt.Errorf("%w: failed to reserve slot: %v", ErrInternal, err)
			}
		}

		created, err := uc.orderRepo.Create(txCtx, order)
		if err != nil {
			uc.logger.Error("CreateOrder: failed to create order: %v", err)
			return fmt.Errorf("%w: failed to create order: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateOrder: successfully created order number=%s, status=%s", result.Number, result.Status)

	// Уведомление не входит в транзакцию: его падение не должно откатывать заказ
	go func(order *domain.Order) {
		if err := uc.notifier.SendOrderCreated(order); err != nil {
			uc.logger.Error("CreateOrder: failed to send notification for order=%s: %v", order.Number, err)
		}
	}(result)

	return &Response{
		ID:               result.ID,
		Number:           result.Number,
		Status:           string(result.Status),
		Price:            result.Price,
		EstimatedMinutes: result.EstimatedMinutes,
		ScheduledAt:      result.ScheduledAt,
		CreatedAt:        result.CreatedAt,
	}, nil
}
