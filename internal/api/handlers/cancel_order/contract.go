package cancel_order

import (
	"context"

	cancelOrder "github.com/plenkanet/CleanNet-Backend/internal/usecase/cancel_order"
)

type CancelOrderUseCase interface {
	Execute(ctx context.Context, req *cancelOrder.Request) (*cancelOrder.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
