package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/plenkanet/CleanNet-Backend/internal/domain"
	orderRepo "github.com/plenkanet/CleanNet-Backend/internal/infra/storage/order"
	"github.com/plenkanet/CleanNet-Backend/internal/service/orders/models"
)

// Service сервис для работы с заказами
type Service struct {
	orderRepo OrderRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса заказов
func NewService(orderRepo OrderRepository, logger Logger) *Service {
	return &Service{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

// GetByID получает заказ по ID.
// Пользователь видит только свой заказ, администратор - любой.
func (s *Service) GetByID(ctx context.Context, id int64, userID, role string) (*models.OrderResponse, error) {
	s.logger.Info("GetByID: fetching order id=%d for user=%s", id, userID)

	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, orderRepo.ErrOrderNotFound) {
			s.logger.Warn("GetByID: order id=%d not found", id)
			return nil, ErrOrderNotFound
		}
		s.logger.Error("GetByID: repository error for order id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if order.UserID != userID && role != domain.RoleAdmin {
		s.logger.Warn("GetByID: access denied for user=%s to order id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched order id=%d", id)
	return models.FromDomainOrder(order), nil
}

// GetUserOrders получает историю заказов пользователя.
// Чужую историю может смотреть только администратор.
func (s *Service) GetUserOrders(ctx context.Context, targetUserID, callerID, role string) (*models.OrderListResponse, error) {
	s.logger.Info("GetUserOrders: fetching orders for user=%s, caller=%s", targetUserID, callerID)

	if targetUserID != callerID && role != domain.RoleAdmin {
		s.logger.Warn("GetUserOrders: access denied for caller=%s to orders of user=%s", callerID, targetUserID)
		return nil, ErrAccessDenied
	}

	orders, err := s.orderRepo.GetByUserID(ctx, targetUserID)
	if err != nil {
		s.logger.Error("GetUserOrders: repository error for user=%s: %v", targetUserID, err)
		return nil, fmt.Errorf("%w: GetUserOrders - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserOrders: successfully fetched %d orders for user=%s", len(orders), targetUserID)
	return models.FromDomainOrderList(orders), nil
}

// UpdateStatus меняет статус заказа. Доступно только администратору.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status, role string) (*models.OrderResponse, error) {
	s.logger.Info("UpdateStatus: order id=%d, status=%s", id, status)

	if role != domain.RoleAdmin {
		s.logger.Warn("UpdateStatus: non-admin attempt on order id=%d", id)
		return nil, ErrAccessDenied
	}

	domainStatus, err := models.ToDomainOrderStatus(status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for order id=%d", status, id)
		return nil, ErrInvalidStatus
	}

	if err := s.orderRepo.UpdateStatus(ctx, id, domainStatus); err != nil {
		if errors.Is(err, orderRepo.ErrOrderNotFound) {
			s.logger.Warn("UpdateStatus: order id=%d not found", id)
			return nil, ErrOrderNotFound
		}
		s.logger.Error("UpdateStatus: repository error for order id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("UpdateStatus: failed to reload order id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - failed to reload order: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: order id=%d moved to status=%s", id, status)
	return models.FromDomainOrder(order), nil
}
