package generate_slots

import (
	"fmt"

	"github.com/plenkanet/CleanNet-Backend/internal/domain"
	"github.com/plenkanet/CleanNet-Backend/pkg/types"
)

// validateRequest проверяет корректность входных данных генератора
func validateRequest(req *Request) error {
	if req.Role != domain.RoleAdmin {
		return ErrForbidden
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: start and end dates are required", ErrInvalidInput)
	}

	if !req.StartDate.Before(req.EndDate) {
		return ErrInvalidRange
	}

	return nil
}

// parseTemplates валидирует шаблоны времени и возвращает их разобранными.
// Пустой список заменяется предустановленным набором шаблонов.
func parseTemplates(templates []string) ([]types.TimeString, error) {
	if len(templates) == 0 {
		templates = domain.DefaultSlotTemplates()
	}

	parsed := make([]types.TimeString, 0, len(templates))
	for _, t := range templates {
		ts, err := types.NewTimeStringFromString(t)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidTemplate, t, err)
		}
		parsed = append(parsed, ts)
	}

	return parsed, nil
}
