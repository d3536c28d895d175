package get_order

import (
	"context"

	"github.com/plenkanet/CleanNet-Backend/internal/service/orders/models"
)

type OrdersService interface {
	GetByID(ctx context.Context, id int64, userID, role string) (*models.OrderResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
