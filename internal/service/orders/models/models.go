package models

import (
	"errors"
	"time"

	"github.com/plenkanet/CleanNet-Backend/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid order status")
)

// OrderItemsResponse состав заказа
type OrderItemsResponse struct {
	CarpetArea    float64 `json:"carpetArea,omitempty"`
	ChairCount    int     `json:"chairCount,omitempty"`
	ArmchairCount int     `json:"armchairCount,omitempty"`
	SofaCount     int     `json:"sofaCount,omitempty"`
	MattressCount int     `json:"mattressCount,omitempty"`
	WithPillows   bool    `json:"withPillows,omitempty"`
}

// OrderResponse ответ с данными заказа
type OrderResponse struct {
	ID                 int64              `json:"id"`
	Number             string             `json:"number"`
	UserID             string             `json:"userId"`
	UserEmail          string             `json:"userEmail"`
	UserName           string             `json:"userName"`
	Items              OrderItemsResponse `json:"items"`
	Address            string             `json:"address"`
	AdditionalInfo     *string            `json:"additionalInfo,omitempty"`
	PhotoURLs          []string           `json:"photoUrls,omitempty"`
	Price              float64            `json:"price"`
	EstimatedMinutes   int                `json:"estimatedMinutes"`
	ScheduledAt        *time.Time         `json:"scheduledAt,omitempty"`
	Status             string             `json:"status"`
	CancellationReason *string            `json:"cancellationReason,omitempty"`
	CancelledAt        *time.Time         `json:"cancelledAt,omitempty"`
	CreatedAt          time.Time          `json:"createdAt"`
	UpdatedAt          time.Time          `json:"updatedAt"`
}

// OrderListResponse ответ со списком заказов
type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	Total  int             `json:"total"`
}

// FromDomainOrder конвертирует domain заказ в response
func FromDomainOrder(o *domain.Order) *OrderResponse {
	return &OrderResponse{
		ID:        o.ID,
		Number:    o.Number,
		UserID:    o.UserID,
		UserEmail: o.UserEmail,
		UserName:  o.UserName,
		Items: OrderItemsResponse{
			CarpetArea:    o.Items.CarpetArea,
			ChairCount:    o.Items.ChairCount,
			ArmchairCount: o.Items.ArmchairCount,
			SofaCount:     o.Items.SofaCount,
			MattressCount: o.Items.MattressCount,
			WithPillows:   o.Items.WithPillows,
		},
		Address:            o.Address,
		AdditionalInfo:     o.AdditionalInfo,
		PhotoURLs:          o.PhotoURLs,
		Price:              o.Price,
		EstimatedMinutes:   o.EstimatedMinutes,
		ScheduledAt:        o.ScheduledAt,
		Status:             string(o.Status),
		CancellationReason: o.CancellationReason,
		CancelledAt:        o.CancelledAt,
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
	}
}

// FromDomainOrderList конвертирует список domain заказов в response
func FromDomainOrderList(orders []*domain.Order) *OrderListResponse {
	result := &OrderListResponse{
		Orders: make([]OrderResponse, 0, len(orders)),
		Total:  len(orders),
	}
	for _, o := range orders {
		result.Orders = append(result.Orders, *FromDomainOrder(o))
	}
	return result
}

// ToDomainOrderStatus конвертирует строку в domain статус
func ToDomainOrderStatus(s string) (domain.OrderStatus, error) {
	switch domain.OrderStatus(s) {
	case domain.OrderStatusPending, domain.OrderStatusConfirmed,
		domain.OrderStatusCompleted, domain.OrderStatusCancelled:
		return domain.OrderStatus(s), nil
	default:
		return "", ErrInvalidStatus
	}
}
