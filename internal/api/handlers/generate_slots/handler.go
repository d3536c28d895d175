package generate_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/plenkanet/CleanNet-Backend/internal/api/handlers"
	"github.com/plenkanet/CleanNet-Backend/internal/api/middleware"
	"github.com/plenkanet/CleanNet-Backend/internal/domain"
	generateSlots "github.com/plenkanet/CleanNet-Backend/internal/usecase/generate_slots"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange       = "дата начала должна быть раньше даты окончания"
	msgInvalidTemplate    = "некорректный шаблон времени, ожидается HH:MM"
	msgAccessDenied       = "требуются права администратора"
	msgInvalidInput       = "некорректные данные запроса"
)

// GenerateSlotsRequest HTTP request model
type GenerateSlotsRequest struct {
	StartDate    string   `json:"startDate"` // "2025-10-01"
	EndDate      string   `json:"endDate"`   // "2025-10-31"
	Templates    []string `json:"templates,omitempty"`
	SkipWeekends bool     `json:"skipWeekends,omitempty"`
}

// GenerateSlotsResponse HTTP response model
type GenerateSlotsResponse struct {
	CreatedCount int `json:"createdCount"`
}

type Handler struct {
	useCase GenerateSlotsUseCase
	loc     *time.Location
	logger  Logger
}

func NewHandler(useCase GenerateSlotsUseCase, loc *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		loc:     loc,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/slots/generate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req GenerateSlotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/slots/generate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Даты разбираются в таймзоне сервиса: полночь UTC западнее Гринвича
	// сдвинула бы диапазон на день назад
	startDate, err := time.ParseInLocation(domain.DateFormat, req.StartDate, h.loc)
	if err != nil {
		h.logger.Warn("POST /admin/slots/generate - Invalid start date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	endDate, err := time.ParseInLocation(domain.DateFormat, req.EndDate, h.loc)
	if err != nil {
		h.logger.Warn("POST /admin/slots/generate - Invalid end date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	ctx := r.Context()
	result, err := h.useCase.Execute(ctx, &generateSlots.Request{
		UserID:       middleware.GetUserID(ctx),
		Role:         middleware.GetUserRole(ctx),
		StartDate:    startDate,
		EndDate:      endDate,
		Templates:    req.Templates,
		SkipWeekends: req.SkipWeekends,
	})
	if err != nil {
		switch {
		case errors.Is(err, generateSlots.ErrForbidden):
			h.logger.Warn("POST /admin/slots/generate - Access denied")
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, generateSlots.ErrInvalidRange):
			h.logger.Warn("POST /admin/slots/generate - Invalid range: %s..%s", req.StartDate, req.EndDate)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, generateSlots.ErrInvalidTemplate):
			h.logger.Warn("POST /admin/slots/generate - Invalid template: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTemplate)

		case errors.Is(err, generateSlots.ErrInvalidInput):
			h.logger.Warn("POST /admin/slots/generate - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /admin/slots/generate - Failed to generate slots: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/slots/generate - Generated %d slots", result.CreatedCount)
	handlers.RespondJSON(w, http.StatusCreated, &GenerateSlotsResponse{CreatedCount: result.CreatedCount})
}
