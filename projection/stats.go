package projection

import (
	"sort"
	"time"

	"starclip/domain/availability"
	"starclip/domain/request"
)

// QuickStats feeds the sidebar counters. Derived from whatever snapshot the
// caller holds; it may lag in-flight transitions until the next fetch.
type QuickStats struct {
	Pending   int
	Completed int
	Total     int
}

func QuickStatsOf(list []request.Request) QuickStats {
	c := Counts(list)
	return QuickStats{Pending: c.Pending, Completed: c.Completed, Total: c.All}
}

// WeeklyCapacity is the number of requests the creator accepts per week
// under the given schedule.
func WeeklyCapacity(week availability.Week) int {
	return week.Capacity()
}

// ExpiringSoon returns open requests (pending or approved) whose deadline
// falls within the window, soonest first. Already-expired requests are
// included; the server decides what happens to them.
func ExpiringSoon(list []request.Request, now time.Time, window time.Duration) []request.Request {
	cutoff := now.Add(window)

	out := make([]request.Request, 0)
	for _, r := range list {
		if r.Status.IsTerminal() {
			continue
		}
		if !r.Deadline.IsZero() && r.Deadline.Before(cutoff) {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Deadline.Before(out[j].Deadline) })
	return out
}
