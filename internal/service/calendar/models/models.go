package models

import (
	"time"

	"github.com/plenkanet/CleanNet-Backend/internal/domain"
)

// SlotResponse ответ с данными слота
type SlotResponse struct {
	ID         int64      `json:"id"`
	SlotTime   time.Time  `json:"slotTime"`
	Reserved   bool       `json:"reserved"`
	ReservedBy *string    `json:"reservedBy,omitempty"`
	ReservedAt *time.Time `json:"reservedAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// StatsResponse сводная статистика календаря
type StatsResponse struct {
	TotalSlots     int `json:"totalSlots"`
	AvailableSlots int `json:"availableSlots"`
	ReservedSlots  int `json:"reservedSlots"`
	ExpiredSlots   int `json:"expiredSlots"`
}

// FromDomainSlot конвертирует domain слот в response
func FromDomainSlot(s *domain.Slot) *SlotResponse {
	return &SlotResponse{
		ID:         s.ID,
		SlotTime:   s.SlotTime,
		Reserved:   s.Reserved,
		ReservedBy: s.ReservedBy,
		ReservedAt: s.ReservedAt,
		CreatedAt:  s.CreatedAt,
	}
}

// FromDomainStats конвертирует domain статистику в response
func FromDomainStats(st *domain.CalendarStats) *StatsResponse {
	return &StatsResponse{
		TotalSlots:     st.TotalSlots,
		AvailableSlots: st.AvailableSlots,
		ReservedSlots:  st.ReservedSlots,
		ExpiredSlots:   st.ExpiredSlots,
	}
}
