// Package orders is the fan-facing read path: for each completed order it
// fetches a time-bounded signed playback URL on demand. Each card fails and
// retries on its own; one broken fetch never blocks sibling cards.
package orders

import (
	"context"
	"sync"

	"starclip/client"
	"starclip/domain/request"
	"starclip/internal/pkg/errs"

	"github.com/jinzhu/copier"
)

var (
	ErrOrderNotFound = errs.New("order not found")
	ErrNotCompleted  = errs.New("order has no video yet")
	ErrFetchInFlight = errs.New("video URL fetch already in flight")
)

// SignedURLAPI is the slice of the repository adapter this viewer needs.
// *client.Client satisfies it.
type SignedURLAPI interface {
	FetchOrderVideoURL(ctx context.Context, orderID string) (string, error)
}

// Card is one order as the fan sees it. SignedURL is populated per card and
// never stored beyond this view; ErrorMessage holds that card's last fetch
// failure.
type Card struct {
	ID           string
	Recipient    string
	VideoType    string
	Price        int64
	Status       request.Status
	SignedURL    string
	Fetching     bool
	ErrorMessage string
}

// Viewer tracks signed-URL state for one fan's order list.
type Viewer struct {
	api SignedURLAPI

	mu     sync.Mutex
	order  []string
	cards  map[string]*Card
	closed bool
}

func NewViewer(api SignedURLAPI, list []request.Request) *Viewer {
	v := &Viewer{
		api:   api,
		order: make([]string, 0, len(list)),
		cards: make(map[string]*Card, len(list)),
	}
	for i := range list {
		card := &Card{}
		if err := copier.Copy(card, &list[i]); err != nil {
			card = &Card{ID: list[i].ID, Status: list[i].Status}
		}
		v.order = append(v.order, card.ID)
		v.cards[card.ID] = card
	}
	return v
}

// Cards returns the current card states in list order.
func (v *Viewer) Cards() []Card {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]Card, 0, len(v.order))
	for _, id := range v.order {
		out = append(out, *v.cards[id])
	}
	return out
}

// LoadURL fetches the signed playback URL for one completed order. Retry is
// the same call again; it clears that card's previous error and touches no
// other card.
func (v *Viewer) LoadURL(ctx context.Context, id string) error {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return nil
	}
	card, ok := v.cards[id]
	if !ok {
		v.mu.Unlock()
		return ErrOrderNotFound
	}
	if card.Status != request.StatusCompleted {
		v.mu.Unlock()
		return ErrNotCompleted
	}
	if card.Fetching {
		v.mu.Unlock()
		return ErrFetchInFlight
	}
	card.Fetching = true
	card.ErrorMessage = ""
	v.mu.Unlock()

	url, err := v.api.FetchOrderVideoURL(ctx, id)

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		// late answer after teardown is a no-op
		return nil
	}
	card.Fetching = false
	if err != nil {
		card.ErrorMessage = client.ErrorMessage(err)
		return err
	}
	card.SignedURL = url
	return nil
}

// Close marks the viewer torn down; any in-flight fetch result is discarded.
func (v *Viewer) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closed = true
}
