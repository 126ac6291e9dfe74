// Package projection holds the pure, side-effect-free derivations the
// dashboard views render: the visible subset under status filter and text
// search, status tab counts, quick stats and capacity. Every function here
// is safe to call on each keystroke; debouncing belongs to input widgets.
package projection

import (
	"strings"

	"starclip/domain/request"
)

// StatusFilter is one of the four statuses or the wildcard All.
type StatusFilter string

const (
	FilterAll       StatusFilter = "all"
	FilterPending   StatusFilter = StatusFilter(request.StatusPending)
	FilterApproved  StatusFilter = StatusFilter(request.StatusApproved)
	FilterCompleted StatusFilter = StatusFilter(request.StatusCompleted)
	FilterRejected  StatusFilter = StatusFilter(request.StatusRejected)
)

func (f StatusFilter) matches(s request.Status) bool {
	return f == FilterAll || string(f) == string(s)
}

// Visible derives the rendered subset: status filter and case-insensitive
// substring search composed with AND semantics, input order preserved. An
// empty or whitespace-only query matches everything.
func Visible(list []request.Request, filter StatusFilter, query string) []request.Request {
	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]request.Request, 0, len(list))
	for _, r := range list {
		if filter.matches(r.Status) && matchesQuery(r, q) {
			out = append(out, r)
		}
	}
	return out
}

func matchesQuery(r request.Request, q string) bool {
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.BuyerName), q) ||
		strings.Contains(strings.ToLower(r.Recipient), q) ||
		strings.Contains(strings.ToLower(r.VideoType), q)
}

// StatusCounts are the tab badge numbers. They are computed over the
// unfiltered list so badges reflect true totals per status regardless of the
// current search text.
type StatusCounts struct {
	All       int
	Pending   int
	Approved  int
	Completed int
	Rejected  int
}

func Counts(list []request.Request) StatusCounts {
	var c StatusCounts
	c.All = len(list)
	for _, r := range list {
		switch r.Status {
		case request.StatusPending:
			c.Pending++
		case request.StatusApproved:
			c.Approved++
		case request.StatusCompleted:
			c.Completed++
		case request.StatusRejected:
			c.Rejected++
		}
	}
	return c
}

// For returns the badge count matching one filter tab.
func (c StatusCounts) For(filter StatusFilter) int {
	switch filter {
	case FilterPending:
		return c.Pending
	case FilterApproved:
		return c.Approved
	case FilterCompleted:
		return c.Completed
	case FilterRejected:
		return c.Rejected
	default:
		return c.All
	}
}
