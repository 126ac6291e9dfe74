//go:build unit

package request_test

import (
	"testing"

	"starclip/domain/request"

	"github.com/stretchr/testify/assert"
)

func TestStatusCanTransitionTo(t *testing.T) {
	statuses := []request.Status{
		request.StatusPending,
		request.StatusApproved,
		request.StatusCompleted,
		request.StatusRejected,
	}

	allowed := map[request.Status][]request.Status{
		request.StatusPending:  {request.StatusApproved, request.StatusRejected},
		request.StatusApproved: {request.StatusCompleted},
	}

	for _, from := range statuses {
		for _, to := range statuses {
			want := false
			for _, next := range allowed[from] {
				if next == to {
					want = true
				}
			}
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestStatusTerminal(t *testing.T) {
	assert.False(t, request.StatusPending.IsTerminal())
	assert.False(t, request.StatusApproved.IsTerminal())
	assert.True(t, request.StatusCompleted.IsTerminal())
	assert.True(t, request.StatusRejected.IsTerminal())

	// terminal statuses offer no outgoing edge at all
	for _, to := range []request.Status{
		request.StatusPending,
		request.StatusApproved,
		request.StatusCompleted,
		request.StatusRejected,
	} {
		assert.False(t, request.StatusCompleted.CanTransitionTo(to))
		assert.False(t, request.StatusRejected.CanTransitionTo(to))
	}
}

func TestStatusIsValid(t *testing.T) {
	assert.True(t, request.StatusPending.IsValid())
	assert.True(t, request.StatusApproved.IsValid())
	assert.True(t, request.StatusCompleted.IsValid())
	assert.True(t, request.StatusRejected.IsValid())
	assert.False(t, request.Status("archived").IsValid())
	assert.False(t, request.Status("").IsValid())
}
