// Package dashboard owns the creator-side request fulfillment workflow: the
// canonical in-memory request list, the per-request in-flight guard, the
// video upload sub-flow and the availability draft editor. It is the single
// writer of the list; views read snapshots and never mutate.
package dashboard

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"starclip/client"
	"starclip/domain/request"
	"starclip/internal/pkg/clock"
	"starclip/internal/pkg/errs"
)

var (
	ErrRequestNotFound = errs.New("request not found")
	ErrNotActionable   = errs.New("request is not awaiting a decision")
	ErrNotApproved     = errs.New("request is not approved for fulfillment")
	ErrActionInFlight  = errs.New("another action is already in flight for this request")
	ErrUploadOpen      = errs.New("an upload is already open for this request")
)

const (
	defaultNoticeTTL        = 4 * time.Second
	defaultUploadCloseDelay = 1500 * time.Millisecond
)

// Controller is the request lifecycle controller for one dashboard session.
// Transitions are applied only after server confirmation; a failed call
// leaves the local record untouched and surfaces a transient notice.
type Controller struct {
	api    RequestAPI
	logger *slog.Logger
	clock  clock.Clock

	noticeTTL        time.Duration
	uploadCloseDelay time.Duration

	mu          sync.Mutex
	requests    []request.Request
	inflight    map[string]struct{}
	fetchSeq    uint64
	openUploads map[string]*UploadFlow
	notices     []Notice
}

type ControllerOption func(*Controller)

func WithClock(clk clock.Clock) ControllerOption {
	return func(c *Controller) { c.clock = clk }
}

// WithNoticeTTL overrides how long a transient error banner stays visible.
func WithNoticeTTL(ttl time.Duration) ControllerOption {
	return func(c *Controller) { c.noticeTTL = ttl }
}

// WithUploadCloseDelay overrides the pause between a successful upload and
// the sub-flow closing itself.
func WithUploadCloseDelay(d time.Duration) ControllerOption {
	return func(c *Controller) { c.uploadCloseDelay = d }
}

func NewController(api RequestAPI, logger *slog.Logger, opts ...ControllerOption) *Controller {
	c := &Controller{
		api:              api,
		logger:           logger,
		clock:            clock.NewRealClock(),
		noticeTTL:        defaultNoticeTTL,
		uploadCloseDelay: defaultUploadCloseDelay,
		inflight:         make(map[string]struct{}),
		openUploads:      make(map[string]*UploadFlow),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Refresh replaces the canonical list from the server. Each call supersedes
// any still-running one: a response arriving for a stale fetch token is
// dropped so it cannot overwrite newer state.
func (c *Controller) Refresh(ctx context.Context, status request.Status) error {
	c.mu.Lock()
	c.fetchSeq++
	token := c.fetchSeq
	c.mu.Unlock()

	list, err := c.api.ListRequests(ctx, status)

	c.mu.Lock()
	defer c.mu.Unlock()
	if token != c.fetchSeq {
		// superseded by a newer refresh
		return nil
	}
	if err != nil {
		c.postNotice(client.ErrorMessage(err))
		return err
	}
	c.requests = list
	return nil
}

// Requests returns a snapshot of the canonical list in server order.
func (c *Controller) Requests() []request.Request {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]request.Request, len(c.requests))
	copy(out, c.requests)
	return out
}

// Request returns the current copy of one request.
func (c *Controller) Request(id string) (request.Request, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i := c.indexOf(id); i >= 0 {
		return c.requests[i], true
	}
	return request.Request{}, false
}

// InFlight reports whether id has an outstanding action, so views can
// disable that row's buttons regardless of which component renders it.
func (c *Controller) InFlight(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.inflight[id]
	return ok
}

// Approve moves a pending request to approved after server confirmation.
func (c *Controller) Approve(ctx context.Context, id string) error {
	return c.patchStatus(ctx, id, request.StatusApproved)
}

// Reject moves a pending request to rejected after server confirmation.
// Rejected is terminal.
func (c *Controller) Reject(ctx context.Context, id string) error {
	return c.patchStatus(ctx, id, request.StatusRejected)
}

func (c *Controller) patchStatus(ctx context.Context, id string, next request.Status) error {
	if err := c.beginAction(id, next); err != nil {
		return err
	}

	patch, err := c.api.PatchRequestStatus(ctx, id, next)

	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.inflight, id)

	if err != nil {
		c.postNotice(client.ErrorMessage(err))
		return err
	}
	c.applyStatusLocked(patch.ID, patch.Status)
	return nil
}

// beginAction validates the transition against the current local copy and
// claims the in-flight slot. No network call is issued when it fails.
func (c *Controller) beginAction(id string, next request.Status) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return ErrRequestNotFound
	}
	if !c.requests[i].Status.CanTransitionTo(next) {
		return ErrNotActionable
	}
	if _, ok := c.inflight[id]; ok {
		return ErrActionInFlight
	}
	c.inflight[id] = struct{}{}
	return nil
}

// applyStatusLocked reconciles a confirmed transition by id, never by index,
// so out-of-order completions cannot touch unrelated rows.
func (c *Controller) applyStatusLocked(id string, status request.Status) {
	i := c.indexOf(id)
	if i < 0 {
		// the row was filtered out by a refresh while the call was in flight
		return
	}
	if !c.requests[i].Status.CanTransitionTo(status) && c.requests[i].Status != status {
		c.logger.Warn("dropping stale status confirmation",
			slog.String("request_id", id),
			slog.String("local", c.requests[i].Status.String()),
			slog.String("confirmed", status.String()),
		)
		return
	}
	c.requests[i].Status = status
}

func (c *Controller) indexOf(id string) int {
	for i := range c.requests {
		if c.requests[i].ID == id {
			return i
		}
	}
	return -1
}
