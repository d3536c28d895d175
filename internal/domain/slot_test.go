package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSlot_IsAvailable(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		slot Slot
		want bool
	}{
		{
			name: "future and free",
			slot: Slot{SlotTime: now.Add(time.Hour)},
			want: true,
		},
		{
			name: "future but reserved",
			slot: Slot{SlotTime: now.Add(time.Hour), Reserved: true},
			want: false,
		},
		{
			name: "past and free",
			slot: Slot{SlotTime: now.Add(-time.Hour)},
			want: false,
		},
		{
			name: "exactly now",
			slot: Slot{SlotTime: now},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.slot.IsAvailable(now))
		})
	}
}

func TestPeriodForHour(t *testing.T) {
	assert.Equal(t, PeriodMorning, PeriodForHour(0))
	assert.Equal(t, PeriodMorning, PeriodForHour(8))
	assert.Equal(t, PeriodMorning, PeriodForHour(11))
	assert.Equal(t, PeriodAfternoon, PeriodForHour(12))
	assert.Equal(t, PeriodAfternoon, PeriodForHour(16))
	assert.Equal(t, PeriodEvening, PeriodForHour(17))
	assert.Equal(t, PeriodEvening, PeriodForHour(23))
}

func TestDefaultSlotTemplates(t *testing.T) {
	templates := DefaultSlotTemplates()

	assert.Len(t, templates, 26)
	assert.Equal(t, "08:00", templates[0])
	assert.Equal(t, "20:30", templates[len(templates)-1])
}
