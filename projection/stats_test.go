//go:build unit

package projection_test

import (
	"testing"
	"time"

	"starclip/domain/availability"
	"starclip/domain/request"
	"starclip/projection"
	"starclip/tests/common/builder"

	"github.com/stretchr/testify/assert"
)

func TestQuickStatsOf(t *testing.T) {
	list := []request.Request{
		builder.NewRequestBuilder().WithStatus(request.StatusPending).Build(),
		builder.NewRequestBuilder().WithStatus(request.StatusPending).Build(),
		builder.NewRequestBuilder().WithStatus(request.StatusCompleted).Build(),
		builder.NewRequestBuilder().WithStatus(request.StatusRejected).Build(),
	}

	stats := projection.QuickStatsOf(list)
	assert.Equal(t, projection.QuickStats{Pending: 2, Completed: 1, Total: 4}, stats)
}

func TestWeeklyCapacity(t *testing.T) {
	week := availability.DefaultWeek()
	week[0].Available = false
	week[0].MaxRequests = 0
	week[6].MaxRequests = 20

	assert.Equal(t, 5*availability.DefaultMaxRequests+20, projection.WeeklyCapacity(week))
}

func TestExpiringSoon(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	mk := func(id string, status request.Status, deadline time.Time) request.Request {
		return builder.NewRequestBuilder().WithID(id).WithStatus(status).With(func(b *builder.RequestBuilder) {
			b.Deadline = deadline
		}).Build()
	}

	list := []request.Request{
		mk("late", request.StatusPending, now.Add(-2*time.Hour)),
		mk("soon", request.StatusApproved, now.Add(6*time.Hour)),
		mk("later", request.StatusPending, now.Add(20*time.Hour)),
		mk("far", request.StatusPending, now.Add(96*time.Hour)),
		mk("done", request.StatusCompleted, now.Add(1*time.Hour)),
		mk("dropped", request.StatusRejected, now.Add(1*time.Hour)),
	}

	got := projection.ExpiringSoon(list, now, 24*time.Hour)

	ids := make([]string, 0, len(got))
	for _, r := range got {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"late", "soon", "later"}, ids)
}
