package get_user_orders

import (
	"context"

	"github.com/plenkanet/CleanNet-Backend/internal/service/orders/models"
)

type OrdersService interface {
	GetUserOrders(ctx context.Context, targetUserID, callerID, role string) (*models.OrderListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
