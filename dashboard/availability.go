package dashboard

import (
	"context"
	"log/slog"
	"sync"

	"starclip/client"
	"starclip/domain/availability"
	"starclip/internal/pkg/errs"

	"github.com/jinzhu/copier"
)

var (
	ErrScheduleNotLoaded = errs.New("availability schedule not loaded")
	ErrDayUnavailable    = errs.New("day is not available")
	ErrSaveInProgress    = errs.New("availability save already in flight")
)

// AvailabilityEditor is a client-side draft buffer over the creator's weekly
// schedule. Edits touch only the draft; nothing reaches the server until an
// explicit Save, and Reset restores the last-fetched snapshot. Dropping the
// editor discards unsaved edits, there is no teardown persistence.
type AvailabilityEditor struct {
	api    AvailabilityAPI
	logger *slog.Logger

	mu       sync.Mutex
	snapshot availability.Week
	draft    availability.Week
	saving   bool
	notice   string
}

func NewAvailabilityEditor(api AvailabilityAPI, logger *slog.Logger) *AvailabilityEditor {
	return &AvailabilityEditor{api: api, logger: logger}
}

// Load fetches the persisted schedule and seeds both snapshot and draft.
func (e *AvailabilityEditor) Load(ctx context.Context) error {
	week, err := e.api.FetchAvailability(ctx)
	if err != nil {
		e.logger.Error("load availability failed", slog.String("error", err.Error()))
		e.mu.Lock()
		e.notice = client.ErrorMessage(err)
		e.mu.Unlock()
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.snapshot = week
	e.draft = cloneWeek(week)
	e.notice = ""
	return nil
}

// Draft returns a copy of the working schedule.
func (e *AvailabilityEditor) Draft() availability.Week {
	e.mu.Lock()
	defer e.mu.Unlock()
	return cloneWeek(e.draft)
}

// Dirty reports whether the draft differs from the last-fetched snapshot.
func (e *AvailabilityEditor) Dirty() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.draft) != len(e.snapshot) {
		return true
	}
	for i := range e.draft {
		if e.draft[i] != e.snapshot[i] {
			return true
		}
	}
	return false
}

// Toggle flips one day. Turning a day off zeroes its capacity; turning it
// back on restores the default.
func (e *AvailabilityEditor) Toggle(day int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	slot, err := e.draftSlotLocked(day)
	if err != nil {
		return err
	}

	slot.Available = !slot.Available
	if slot.Available {
		slot.MaxRequests = availability.DefaultMaxRequests
	} else {
		slot.MaxRequests = 0
	}
	return nil
}

// SetMaxRequests updates one day's capacity, clamped to the allowed range.
// Editing an unavailable day is refused so the zero-capacity invariant
// holds.
func (e *AvailabilityEditor) SetMaxRequests(day, n int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	slot, err := e.draftSlotLocked(day)
	if err != nil {
		return err
	}
	if !slot.Available {
		return ErrDayUnavailable
	}

	if n < availability.MinMaxRequests {
		n = availability.MinMaxRequests
	}
	if n > availability.MaxMaxRequests {
		n = availability.MaxMaxRequests
	}
	slot.MaxRequests = n
	return nil
}

// Reset discards every unsaved edit, restoring the last-fetched snapshot.
func (e *AvailabilityEditor) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft = cloneWeek(e.snapshot)
}

// Save persists the whole draft in one call. On success the server's answer
// becomes the new snapshot.
func (e *AvailabilityEditor) Save(ctx context.Context) error {
	e.mu.Lock()
	if len(e.draft) == 0 {
		e.mu.Unlock()
		return ErrScheduleNotLoaded
	}
	if e.saving {
		e.mu.Unlock()
		return ErrSaveInProgress
	}
	e.saving = true
	week := cloneWeek(e.draft)
	e.mu.Unlock()

	saved, err := e.api.SaveAvailability(ctx, week)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.saving = false
	if err != nil {
		e.logger.Error("save availability failed", slog.String("error", err.Error()))
		e.notice = client.ErrorMessage(err)
		return err
	}
	e.snapshot = saved
	e.draft = cloneWeek(saved)
	e.notice = ""
	return nil
}

// Notice returns the message from the last failed Load/Save, empty once a
// call succeeds.
func (e *AvailabilityEditor) Notice() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.notice
}

func (e *AvailabilityEditor) draftSlotLocked(day int) (*availability.Slot, error) {
	if len(e.draft) == 0 {
		return nil, ErrScheduleNotLoaded
	}
	for i := range e.draft {
		if e.draft[i].DayOfWeek == day {
			return &e.draft[i], nil
		}
	}
	return nil, availability.ErrInvalidDay
}

func cloneWeek(week availability.Week) availability.Week {
	var out availability.Week
	if err := copier.CopyWithOption(&out, &week, copier.Option{DeepCopy: true}); err != nil {
		out = make(availability.Week, len(week))
		copy(out, week)
	}
	return out
}
