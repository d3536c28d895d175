package get_available_slots

import (
	"time"

	"github.com/plenkanet/CleanNet-Backend/internal/domain"
	getAvailableSlots "github.com/plenkanet/CleanNet-Backend/internal/usecase/get_available_slots"
)

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Days []DayResponse `json:"days"`
}

// DayResponse слоты одного дня
type DayResponse struct {
	Date    string           `json:"date"` // "2025-10-15"
	Periods []PeriodResponse `json:"periods"`
}

// PeriodResponse слоты одной части дня
type PeriodResponse struct {
	Name  string         `json:"name"` // morning / afternoon / evening
	Slots []SlotResponse `json:"slots"`
}

// SlotResponse один доступный слот
type SlotResponse struct {
	ID       int64  `json:"id"`
	SlotTime string `json:"slotTime"` // RFC3339
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	result := &SlotsResponse{Days: make([]DayResponse, 0, len(resp.Days))}

	for _, day := range resp.Days {
		dayResp := DayResponse{
			Date:    day.Date.Format(domain.DateFormat),
			Periods: make([]PeriodResponse, 0, len(day.Periods)),
		}
		for _, period := range day.Periods {
			periodResp := PeriodResponse{
				Name:  string(period.Name),
				Slots: make([]SlotResponse, 0, len(period.Slots)),
			}
			for _, slot := range period.Slots {
				periodResp.Slots = append(periodResp.Slots, SlotResponse{
					ID:       slot.ID,
					SlotTime: slot.SlotTime.Format(time.RFC3339),
				})
			}
			dayResp.Periods = append(dayResp.Periods, periodResp)
		}
		result.Days = append(result.Days, dayResp)
	}

	return result
}
