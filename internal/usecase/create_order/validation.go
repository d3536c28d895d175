package create_order

import (
	"fmt"
	"strings"
	"time"

	"github.com/plenkanet/CleanNet-Backend/internal/domain"
)

// validateRequest проверяет корректность входных данных заказа
func validateRequest(req *Request, now time.Time) error {
	if req.UserID == "" {
		return fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	if req.Items.IsEmpty() {
		return ErrEmptyItems
	}

	if err := validateItems(req.Items); err != nil {
		return err
	}

	if len(strings.TrimSpace(req.Address)) < domain.MinAddressLength {
		return ErrInvalidAddress
	}

	if len(req.PhotoURLs) > domain.MaxPhotoCount {
		return fmt.Errorf("%w: too many photos, max %d", ErrInvalidInput, domain.MaxPhotoCount)
	}

	if req.ScheduledAt != nil && !req.ScheduledAt.After(now) {
		return ErrScheduledInPast
	}

	return nil
}

// validateItems проверяет разумность количеств в составе заказа
func validateItems(items domain.OrderItems) error {
	if items.CarpetArea < 0 || items.CarpetArea > domain.MaxCarpetAreaSqM {
		return fmt.Errorf("%w: carpet area must be between 0 and %d", ErrInvalidInput, domain.MaxCarpetAreaSqM)
	}

	counts := []int{items.ChairCount, items.ArmchairCount, items.SofaCount, items.MattressCount}
	for _, c := range counts {
		if c < 0 || c > domain.MaxItemCount {
			return fmt.Errorf("%w: item count must be between 0 and %d", ErrInvalidInput, domain.MaxItemCount)
		}
	}

	return nil
}
