package sweep_slots

import (
	"errors"
	"net/http"

	"github.com/plenkanet/CleanNet-Backend/internal/api/handlers"
	"github.com/plenkanet/CleanNet-Backend/internal/api/middleware"
	sweepSlots "github.com/plenkanet/CleanNet-Backend/internal/usecase/sweep_slots"
)

const (
	msgAccessDenied = "требуются права администратора"
)

// SweepSlotsResponse HTTP response model
type SweepSlotsResponse struct {
	DeletedCount int `json:"deletedCount"`
}

type Handler struct {
	useCase SweepSlotsUseCase
	logger  Logger
}

func NewHandler(useCase SweepSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/slots/sweep
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	result, err := h.useCase.Execute(ctx, &sweepSlots.Request{
		UserID: middleware.GetUserID(ctx),
		Role:   middleware.GetUserRole(ctx),
	})
	if err != nil {
		switch {
		case errors.Is(err, sweepSlots.ErrForbidden):
			h.logger.Warn("POST /admin/slots/sweep - Access denied")
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("POST /admin/slots/sweep - Failed to sweep slots: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/slots/sweep - Deleted %d slots", result.DeletedCount)
	handlers.RespondJSON(w, http.StatusOK, &SweepSlotsResponse{DeletedCount: result.DeletedCount})
}
