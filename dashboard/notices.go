package dashboard

import (
	"time"

	"github.com/google/uuid"
)

// Notice is a transient, auto-dismissing error banner scoped to the action
// that failed. Other rows stay interactive; retry is simply pressing the
// action again.
type Notice struct {
	ID       uuid.UUID
	Message  string
	PostedAt time.Time
}

// Notices returns the banners currently visible, oldest first.
func (c *Controller) Notices() []Notice {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Notice, len(c.notices))
	copy(out, c.notices)
	return out
}

// Dismiss removes a notice before its timeout, for views with a close
// affordance. Dismissing an unknown id is a no-op.
func (c *Controller) Dismiss(id uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dismissLocked(id)
}

// postNotice appends a banner and schedules its auto-dismiss. Callers hold
// c.mu.
func (c *Controller) postNotice(msg string) {
	if msg == "" {
		return
	}
	n := Notice{ID: uuid.New(), Message: msg, PostedAt: c.clock.Now()}
	c.notices = append(c.notices, n)

	time.AfterFunc(c.noticeTTL, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.dismissLocked(n.ID)
	})
}

func (c *Controller) dismissLocked(id uuid.UUID) {
	for i := range c.notices {
		if c.notices[i].ID == id {
			c.notices = append(c.notices[:i], c.notices[i+1:]...)
			return
		}
	}
}
