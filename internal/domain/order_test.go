package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderItems_Price(t *testing.T) {
	tests := []struct {
		name  string
		items OrderItems
		want  float64
	}{
		{
			name:  "one sofa without pillows",
			items: OrderItems{SofaCount: 1},
			want:  180,
		},
		{
			name:  "one sofa with pillows",
			items: OrderItems{SofaCount: 1, WithPillows: true},
			want:  680,
		},
		{
			name:  "two sofas with pillows",
			items: OrderItems{SofaCount: 2, WithPillows: true},
			want:  2*180 + 2*500,
		},
		{
			name:  "carpet per square meter",
			items: OrderItems{CarpetArea: 10},
			want:  150,
		},
		{
			name: "mixed order",
			items: OrderItems{
				CarpetArea:    4.5,
				ChairCount:    4,
				ArmchairCount: 2,
				MattressCount: 1,
			},
			want: 4.5*15 + 4*20 + 2*40 + 90,
		},
		{
			name:  "empty order",
			items: OrderItems{},
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.items.Price(), 0.001)
		})
	}
}

func TestOrderItems_EstimatedMinutes(t *testing.T) {
	tests := []struct {
		name  string
		items OrderItems
		want  int
	}{
		{
			name:  "one sofa",
			items: OrderItems{SofaCount: 1},
			want:  90,
		},
		{
			name:  "carpet rounds to nearest minute",
			items: OrderItems{CarpetArea: 2.5},
			want:  45,
		},
		{
			name:  "full set",
			items: OrderItems{SofaCount: 1, ArmchairCount: 1, ChairCount: 2, MattressCount: 1},
			want:  90 + 45 + 60 + 60,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.items.EstimatedMinutes())
		})
	}
}

func TestOrderItems_IsEmpty(t *testing.T) {
	assert.True(t, OrderItems{}.IsEmpty())
	assert.True(t, OrderItems{WithPillows: true}.IsEmpty())
	assert.False(t, OrderItems{ChairCount: 1}.IsEmpty())
	assert.False(t, OrderItems{CarpetArea: 0.5}.IsEmpty())
}

func TestOrder_CanBeCancelled(t *testing.T) {
	assert.True(t, (&Order{Status: OrderStatusPending}).CanBeCancelled())
	assert.True(t, (&Order{Status: OrderStatusConfirmed}).CanBeCancelled())
	assert.False(t, (&Order{Status: OrderStatusCompleted}).CanBeCancelled())
	assert.False(t, (&Order{Status: OrderStatusCancelled}).CanBeCancelled())
}
