package dashboard

import (
	"context"
	"io"
	"sync"
	"time"

	"starclip/client"
	"starclip/domain/request"
	"starclip/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNoFileSelected   = errs.New("no valid video file selected")
	ErrUploadInProgress = errs.New("upload already in progress")
	ErrUploadClosed     = errs.New("upload flow is closed")
)

type UploadState string

const (
	UploadStateIdle      UploadState = "idle"
	UploadStateSelected  UploadState = "selected"
	UploadStateUploading UploadState = "uploading"
	UploadStateSucceeded UploadState = "succeeded"
	UploadStateClosed    UploadState = "closed"
)

type UploadEventKind string

const (
	UploadEventProgress  UploadEventKind = "progress"
	UploadEventSucceeded UploadEventKind = "succeeded"
	UploadEventFailed    UploadEventKind = "failed"
	UploadEventClosed    UploadEventKind = "closed"
)

// UploadEvent is the typed stream the hosting modal consumes. Progress
// carries a whole percent 0-100; Failed carries a banner-ready message.
type UploadEvent struct {
	Kind     UploadEventKind
	Progress int
	Message  string
}

// UploadFlow is one invocation of the video upload sub-flow for a single
// approved request. It has exactly one subscriber; Close is the unsubscribe
// and every late callback afterwards is a no-op. On success the parent
// controller applies the approved -> completed transition and the flow
// closes itself after a short delay so the success state can be perceived.
type UploadFlow struct {
	id         uuid.UUID
	requestID  string
	api        RequestAPI
	closeDelay time.Duration

	onCompleted func(requestID string)
	onClosed    func(requestID string)

	mu       sync.Mutex
	state    UploadState
	file     request.VideoFile
	content  io.Reader
	progress int
	closed   bool
	events   chan UploadEvent
}

func newUploadFlow(api RequestAPI, requestID string, closeDelay time.Duration, onCompleted, onClosed func(string)) *UploadFlow {
	return &UploadFlow{
		id:          uuid.New(),
		requestID:   requestID,
		api:         api,
		closeDelay:  closeDelay,
		onCompleted: onCompleted,
		onClosed:    onClosed,
		state:       UploadStateIdle,
		events:      make(chan UploadEvent, 64),
	}
}

// OpenUpload starts the upload sub-flow for an approved request. At most one
// flow may be open per request id; a second open attempt fails until the
// first closes.
func (c *Controller) OpenUpload(id string) (*UploadFlow, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return nil, ErrRequestNotFound
	}
	if c.requests[i].Status != request.StatusApproved {
		return nil, ErrNotApproved
	}
	if _, ok := c.openUploads[id]; ok {
		return nil, ErrUploadOpen
	}

	f := newUploadFlow(c.api, id, c.uploadCloseDelay, c.completeUpload, c.releaseUpload)
	c.openUploads[id] = f
	return f, nil
}

// UploadOpen reports whether a flow is currently open for id.
func (c *Controller) UploadOpen(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.openUploads[id]
	return ok
}

func (c *Controller) completeUpload(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.applyStatusLocked(id, request.StatusCompleted)
}

func (c *Controller) releaseUpload(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.openUploads, id)
}

func (f *UploadFlow) ID() uuid.UUID     { return f.id }
func (f *UploadFlow) RequestID() string { return f.requestID }

func (f *UploadFlow) State() UploadState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *UploadFlow) Progress() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.progress
}

// File returns the current selection, zero when nothing valid was picked yet.
func (f *UploadFlow) File() request.VideoFile {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.file
}

// Events is the flow's event stream. It is closed when the flow closes.
func (f *UploadFlow) Events() <-chan UploadEvent {
	return f.events
}

// Select validates a candidate file. Manual file-pick and drag-and-drop both
// land here, so the acceptance rules cannot diverge. A rejected candidate
// leaves any previously valid selection in place.
func (f *UploadFlow) Select(name, mimeType string, size int64, content io.Reader) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.state {
	case UploadStateClosed:
		return ErrUploadClosed
	case UploadStateUploading:
		return ErrUploadInProgress
	}

	file, err := request.NewVideoFile(name, mimeType, size)
	if err != nil {
		return err
	}

	f.file = file
	f.content = content
	f.progress = 0
	f.state = UploadStateSelected
	return nil
}

// Start transfers the selected file. It blocks until the server responds, so
// the caller runs it off the UI loop and watches Events. There is no
// automatic retry: a failed transfer returns the flow to the selected state
// and the user may start again with the same file.
func (f *UploadFlow) Start(ctx context.Context) error {
	f.mu.Lock()
	switch {
	case f.closed:
		f.mu.Unlock()
		return ErrUploadClosed
	case f.state == UploadStateUploading:
		f.mu.Unlock()
		return ErrUploadInProgress
	case f.state != UploadStateSelected:
		f.mu.Unlock()
		return ErrNoFileSelected
	}
	f.state = UploadStateUploading
	f.progress = 0
	file, content := f.file, f.content
	f.mu.Unlock()

	_, err := f.api.UploadRequestVideo(ctx, f.requestID, file, content, f.reportProgress)

	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return err
	}
	if err != nil {
		f.state = UploadStateSelected
		f.emitLocked(UploadEvent{Kind: UploadEventFailed, Message: client.ErrorMessage(err)})
		f.mu.Unlock()
		return err
	}
	f.state = UploadStateSucceeded
	f.progress = 100
	f.emitLocked(UploadEvent{Kind: UploadEventSucceeded, Progress: 100})
	f.mu.Unlock()

	f.onCompleted(f.requestID)
	time.AfterFunc(f.closeDelay, f.Close)
	return nil
}

// Close tears the flow down. Idempotent; all later events and callbacks are
// dropped.
func (f *UploadFlow) Close() {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return
	}
	f.closed = true
	f.state = UploadStateClosed
	f.emitLocked(UploadEvent{Kind: UploadEventClosed})
	close(f.events)
	f.mu.Unlock()

	f.onClosed(f.requestID)
}

func (f *UploadFlow) reportProgress(pct int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed || f.state != UploadStateUploading || pct <= f.progress {
		return
	}
	if pct > 100 {
		pct = 100
	}
	f.progress = pct
	f.emitLocked(UploadEvent{Kind: UploadEventProgress, Progress: pct})
}

// emitLocked never blocks the transport: if the sole subscriber has fallen
// 64 events behind, intermediate progress is droppable.
func (f *UploadFlow) emitLocked(ev UploadEvent) {
	select {
	case f.events <- ev:
	default:
	}
}
