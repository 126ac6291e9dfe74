//go:build unit

package availability_test

import (
	"testing"

	"starclip/domain/availability"

	"github.com/stretchr/testify/assert"
)

func TestSlotNormalized(t *testing.T) {
	tests := []struct {
		name string
		in   availability.Slot
		want availability.Slot
	}{
		{
			name: "unavailable day forces zero capacity",
			in:   availability.Slot{DayOfWeek: 1, Available: false, MaxRequests: 12},
			want: availability.Slot{DayOfWeek: 1, Available: false, MaxRequests: 0},
		},
		{
			name: "capacity clamped to upper bound",
			in:   availability.Slot{DayOfWeek: 2, Available: true, MaxRequests: 99},
			want: availability.Slot{DayOfWeek: 2, Available: true, MaxRequests: availability.MaxMaxRequests},
		},
		{
			name: "negative capacity clamped to zero",
			in:   availability.Slot{DayOfWeek: 3, Available: true, MaxRequests: -4},
			want: availability.Slot{DayOfWeek: 3, Available: true, MaxRequests: 0},
		},
		{
			name: "valid slot unchanged",
			in:   availability.Slot{DayOfWeek: 4, Available: true, MaxRequests: 5},
			want: availability.Slot{DayOfWeek: 4, Available: true, MaxRequests: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Normalized())
		})
	}
}

func TestWeekValidate(t *testing.T) {
	assert.NoError(t, availability.DefaultWeek().Validate())

	short := availability.DefaultWeek()[:6]
	assert.ErrorIs(t, short.Validate(), availability.ErrIncompleteWeek)

	dup := availability.DefaultWeek()
	dup[6].DayOfWeek = 0
	assert.ErrorIs(t, dup.Validate(), availability.ErrIncompleteWeek)

	bad := availability.DefaultWeek()
	bad[0].DayOfWeek = 7
	assert.ErrorIs(t, bad.Validate(), availability.ErrInvalidDay)
}

func TestWeekCapacity(t *testing.T) {
	week := availability.DefaultWeek()
	assert.Equal(t, availability.DaysPerWeek*availability.DefaultMaxRequests, week.Capacity())

	week[0].Available = false
	week[1].MaxRequests = 20
	assert.Equal(t, 5*availability.DefaultMaxRequests+availability.MaxMaxRequests, week.Capacity())

	// an unavailable day contributes nothing even with a stale capacity value
	week[2].Available = false
	week[2].MaxRequests = 11
	assert.Equal(t, 4*availability.DefaultMaxRequests+availability.MaxMaxRequests, week.Capacity())
}

func TestWeekNormalizedSortsByDay(t *testing.T) {
	week := availability.Week{
		{DayOfWeek: 3, Available: true, MaxRequests: 2},
		{DayOfWeek: 0, Available: false, MaxRequests: 9},
		{DayOfWeek: 1, Available: true, MaxRequests: 30},
	}

	got := week.Normalized()
	assert.Equal(t, availability.Week{
		{DayOfWeek: 0, Available: false, MaxRequests: 0},
		{DayOfWeek: 1, Available: true, MaxRequests: 20},
		{DayOfWeek: 3, Available: true, MaxRequests: 2},
	}, got)
}
