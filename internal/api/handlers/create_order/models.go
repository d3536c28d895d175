package create_order

import (
	"time"

	"github.com/plenkanet/CleanNet-Backend/internal/domain"
	createOrder "github.com/plenkanet/CleanNet-Backend/internal/usecase/create_order"
)

// CreateOrderRequest HTTP request model
type CreateOrderRequest struct {
	CarpetArea    float64 `json:"carpetArea,omitempty"`
	ChairCount    int     `json:"chairCount,omitempty"`
	ArmchairCount int     `json:"armchairCount,omitempty"`
	SofaCount     int     `json:"sofaCount,omitempty"`
	MattressCount int     `json:"mattressCount,omitempty"`
	WithPillows   bool    `json:"withPillows,omitempty"`

	Address        string   `json:"address"`
	AdditionalInfo *string  `json:"additionalInfo,omitempty"`
	PhotoURLs      []string `json:"photoUrls,omitempty"`

	// RFC3339; отсутствие поля означает согласование времени по телефону
	ScheduledAt *string `json:"scheduledAt,omitempty"`
}

// OrderResponse HTTP response model
type OrderResponse struct {
	ID               int64   `json:"id"`
	Number           string  `json:"number"`
	Status           string  `json:"status"`
	Price            float64 `json:"price"`
	EstimatedMinutes int     `json:"estimatedMinutes"`
	ScheduledAt      *string `json:"scheduledAt,omitempty"`
	CreatedAt        string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateOrderRequest) ToUseCaseRequest(userID, userEmail, userName string) (*createOrder.Request, error) {
	var scheduledAt *time.Time
	if r.ScheduledAt != nil {
		t, err := time.Parse(time.RFC3339, *r.ScheduledAt)
		if err != nil {
			return nil, err
		}
		scheduledAt = &t
	}

	return &createOrder.Request{
		UserID:    userID,
		UserEmail: userEmail,
		UserName:  userName,
		Items: domain.OrderItems{
			CarpetArea:    r.CarpetArea,
			ChairCount:    r.ChairCount,
			ArmchairCount: r.ArmchairCount,
			SofaCount:     r.SofaCount,
			MattressCount: r.MattressCount,
			WithPillows:   r.WithPillows,
		},
		Address:        r.Address,
		AdditionalInfo: r.AdditionalInfo,
		PhotoURLs:      r.PhotoURLs,
		ScheduledAt:    scheduledAt,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createOrder.Response) *OrderResponse {
	var scheduledAt *string
	if resp.ScheduledAt != nil {
		s := resp.ScheduledAt.Format(time.RFC3339)
		scheduledAt = &s
	}

	return &OrderResponse{
		ID:               resp.ID,
		Number:           resp.Number,
		Status:           resp.Status,
		Price:            resp.Price,
		EstimatedMinutes: resp.EstimatedMinutes,
		ScheduledAt:      scheduledAt,
		CreatedAt:        resp.CreatedAt.Format(time.RFC3339),
	}
}
