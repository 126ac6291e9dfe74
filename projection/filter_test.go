//go:build unit

package projection_test

import (
	"testing"

	"starclip/domain/request"
	"starclip/projection"
	"starclip/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestVisibleAllWithEmptyQueryReturnsListUnchanged(t *testing.T) {
	list := builder.BuildList(8)

	got := projection.Visible(list, projection.FilterAll, "")
	assert.Empty(t, cmp.Diff(list, got))

	// whitespace-only query is equivalent to no query
	got = projection.Visible(list, projection.FilterAll, "   \t ")
	assert.Empty(t, cmp.Diff(list, got))
}

func TestVisibleComposesWithANDSemantics(t *testing.T) {
	list := []request.Request{
		builder.NewRequestBuilder().WithID("a").WithStatus(request.StatusPending).With(func(b *builder.RequestBuilder) {
			b.BuyerName = "Ana Kovač"
		}).Build(),
		builder.NewRequestBuilder().WithID("b").WithStatus(request.StatusApproved).With(func(b *builder.RequestBuilder) {
			b.BuyerName = "Ana Kovač"
		}).Build(),
		builder.NewRequestBuilder().WithID("c").WithStatus(request.StatusPending).With(func(b *builder.RequestBuilder) {
			b.BuyerName = "Marko Simić"
		}).Build(),
	}

	got := projection.Visible(list, projection.FilterPending, "ana")
	if assert.Len(t, got, 1) {
		assert.Equal(t, "a", got[0].ID)
	}

	// every element of the result satisfies both predicates
	for _, r := range got {
		assert.Equal(t, request.StatusPending, r.Status)
	}
}

func TestVisibleSearchFields(t *testing.T) {
	r := builder.NewRequestBuilder().With(func(b *builder.RequestBuilder) {
		b.BuyerName = "Jelena Ilić"
		b.Recipient = "Nikola"
		b.VideoType = "Graduation"
	}).Build()
	list := []request.Request{r}

	tests := []struct {
		name  string
		query string
		found bool
	}{
		{name: "buyer name, case-insensitive", query: "JELENA", found: true},
		{name: "recipient substring", query: "ikol", found: true},
		{name: "video type label", query: "graduation", found: true},
		{name: "instructions are not searched", query: "happy 30th", found: false},
		{name: "no match", query: "wedding", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := projection.Visible(list, projection.FilterAll, tt.query)
			assert.Equal(t, tt.found, len(got) == 1)
		})
	}
}

func TestCountsIgnoreSearchText(t *testing.T) {
	list := builder.BuildList(10)
	counts := projection.Counts(list)

	assert.Equal(t, len(list), counts.All)
	assert.Equal(t, counts.All, counts.Pending+counts.Approved+counts.Completed+counts.Rejected)

	// counting via the projection for a single status must agree with the
	// badge numbers computed from the unfiltered list
	for _, f := range []projection.StatusFilter{
		projection.FilterPending,
		projection.FilterApproved,
		projection.FilterCompleted,
		projection.FilterRejected,
	} {
		assert.Equal(t, counts.For(f), len(projection.Visible(list, f, "")))
	}
}

func TestVisibleDoesNotMutateInput(t *testing.T) {
	list := builder.BuildList(6)
	before := make([]request.Request, len(list))
	copy(before, list)

	projection.Visible(list, projection.FilterRejected, "milica")
	assert.Empty(t, cmp.Diff(before, list))
}
