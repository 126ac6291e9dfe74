package availability

import (
	"sort"

	"starclip/internal/pkg/errs"
)

const (
	DaysPerWeek        = 7
	MinMaxRequests     = 0
	MaxMaxRequests     = 20
	DefaultMaxRequests = 5
)

var (
	ErrInvalidDay     = errs.New("day of week must be between 0 and 6")
	ErrIncompleteWeek = errs.New("schedule must cover all seven days exactly once")
)

// Slot is one day-of-week of the creator's availability schedule.
// MaxRequests is always 0 for an unavailable day; toggling a day back on
// restores the default capacity.
type Slot struct {
	DayOfWeek   int  `json:"dayOfWeek"`
	Available   bool `json:"available"`
	MaxRequests int  `json:"maxRequests"`
}

// Normalized enforces the slot invariants: capacity is clamped to
// [MinMaxRequests, MaxMaxRequests] and forced to zero when the day is off.
func (s Slot) Normalized() Slot {
	if !s.Available {
		s.MaxRequests = 0
		return s
	}
	if s.MaxRequests < MinMaxRequests {
		s.MaxRequests = MinMaxRequests
	}
	if s.MaxRequests > MaxMaxRequests {
		s.MaxRequests = MaxMaxRequests
	}
	return s
}

// Week is a full seven-day schedule, ordered by day of week.
type Week []Slot

// DefaultWeek returns a schedule with every day available at the default
// capacity.
func DefaultWeek() Week {
	week := make(Week, DaysPerWeek)
	for day := range week {
		week[day] = Slot{DayOfWeek: day, Available: true, MaxRequests: DefaultMaxRequests}
	}
	return week
}

// Validate checks that the week covers each day 0-6 exactly once.
func (w Week) Validate() error {
	if len(w) != DaysPerWeek {
		return ErrIncompleteWeek
	}
	var seen [DaysPerWeek]bool
	for _, s := range w {
		if s.DayOfWeek < 0 || s.DayOfWeek >= DaysPerWeek {
			return ErrInvalidDay
		}
		if seen[s.DayOfWeek] {
			return ErrIncompleteWeek
		}
		seen[s.DayOfWeek] = true
	}
	return nil
}

// Normalized returns a copy sorted by day with every slot's invariants
// applied.
func (w Week) Normalized() Week {
	out := make(Week, len(w))
	for i, s := range w {
		out[i] = s.Normalized()
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DayOfWeek < out[j].DayOfWeek })
	return out
}

// Capacity is the total number of requests the creator accepts per week.
func (w Week) Capacity() int {
	total := 0
	for _, s := range w {
		if s.Available {
			total += s.Normalized().MaxRequests
		}
	}
	return total
}
