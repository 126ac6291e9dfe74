//go:build unit || e2e

package builder

import (
	"fmt"
	"time"

	"starclip/domain/request"

	"github.com/google/uuid"
)

type RequestBuilder struct {
	ID           string
	BuyerName    string
	BuyerAvatar  string
	Recipient    string
	VideoType    string
	Instructions string
	Price        int64
	Deadline     time.Time
	Status       request.Status
	VideoURL     string
	CreatedAt    time.Time
}

func NewRequestBuilder() *RequestBuilder {
	now := time.Now().Truncate(time.Second)
	return &RequestBuilder{
		ID:           uuid.NewString(),
		BuyerName:    "Milica Petrović",
		Recipient:    "Stefan",
		VideoType:    "Birthday",
		Instructions: "Wish my brother a happy 30th!",
		Price:        3500,
		Deadline:     now.Add(72 * time.Hour),
		Status:       request.StatusPending,
		CreatedAt:    now,
	}
}

func (b *RequestBuilder) With(mutate func(*RequestBuilder)) *RequestBuilder {
	mutate(b)
	return b
}

func (b *RequestBuilder) WithID(id string) *RequestBuilder {
	b.ID = id
	return b
}

func (b *RequestBuilder) WithStatus(s request.Status) *RequestBuilder {
	b.Status = s
	return b
}

func (b *RequestBuilder) Build() request.Request {
	return request.Request{
		ID:           b.ID,
		BuyerName:    b.BuyerName,
		BuyerAvatar:  b.BuyerAvatar,
		Recipient:    b.Recipient,
		VideoType:    b.VideoType,
		Instructions: b.Instructions,
		Price:        b.Price,
		Deadline:     b.Deadline,
		Status:       b.Status,
		VideoURL:     b.VideoURL,
		CreatedAt:    b.CreatedAt,
	}
}

// BuildList produces n requests with distinct ids, cycling through the four
// statuses so list fixtures cover every tab.
func BuildList(n int) []request.Request {
	statuses := []request.Status{
		request.StatusPending,
		request.StatusApproved,
		request.StatusCompleted,
		request.StatusRejected,
	}

	out := make([]request.Request, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, NewRequestBuilder().
			WithID(fmt.Sprintf("req-%03d", i)).
			WithStatus(statuses[i%len(statuses)]).
			Build())
	}
	return out
}
