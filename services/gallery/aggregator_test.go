package gallery

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkhaus/models"
)

type stubSource struct {
	pages map[string]models.FeedPage // keyed by cursor; "" is the first page
	errs  map[string]error
	calls []string
}

func (s *stubSource) Configured() bool { return true }

func (s *stubSource) FetchPage(ctx context.Context, limit int, after string) (models.FeedPage, error) {
	s.calls = append(s.calls, after)
	if err := s.errs[after]; err != nil {
		return models.FeedPage{}, err
	}
	return s.pages[after], nil
}

func mediaItems(ids ...string) []models.MediaItem {
	out := make([]models.MediaItem, 0, len(ids))
	for _, id := range ids {
		out = append(out, models.MediaItem{
			ID:        id,
			MediaType: models.MediaImage,
			MediaURL:  "https://cdn.example/" + id + ".jpg",
			Permalink: "https://instagram.example/p/" + id,
			Timestamp: "2026-01-01T00:00:00+0000",
		})
	}
	return out
}

func itemIDs(items []models.MediaItem) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID)
	}
	return out
}

func TestLoadFirstAndLoadMore(t *testing.T) {
	src := &stubSource{pages: map[string]models.FeedPage{
		"":   {Items: mediaItems("a", "b"), NextCursor: "c1", HasMore: true},
		"c1": {Items: mediaItems("c", "d"), NextCursor: "", HasMore: false},
	}}
	agg := NewAggregator(src, 24)

	agg.LoadFirst(context.Background())
	assert.Equal(t, []string{"a", "b"}, itemIDs(agg.Items()))
	assert.True(t, agg.HasMore())
	assert.Equal(t, "c1", agg.NextCursor())

	require.True(t, agg.LoadMore(context.Background()))
	assert.Equal(t, []string{"a", "b", "c", "d"}, itemIDs(agg.Items()))
	assert.False(t, agg.HasMore())
	assert.Empty(t, agg.NextCursor())

	// Exhausted: further load-more triggers do nothing.
	assert.False(t, agg.LoadMore(context.Background()))
	assert.Equal(t, []string{"", "c1"}, src.calls)
}

func TestLoadFirstDegradesOnSourceFailure(t *testing.T) {
	src := &stubSource{errs: map[string]error{"": errors.New("upstream down")}}
	agg := NewAggregator(src, 24)

	agg.LoadFirst(context.Background())

	assert.Empty(t, agg.Items())
	assert.False(t, agg.HasMore())
	assert.Empty(t, agg.NextCursor())
}

func TestMergeDropsDuplicatesKeepsOrder(t *testing.T) {
	agg := NewAggregator(&stubSource{}, 24)
	agg.Merge(models.FeedPage{Items: mediaItems("a", "b", "c"), NextCursor: "c1", HasMore: true})

	// Overlapping page: the already-seen items are dropped, the rest
	// appended in received order.
	agg.Merge(models.FeedPage{Items: mediaItems("b", "d", "a", "e"), NextCursor: "c2", HasMore: true})
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, itemIDs(agg.Items()))
	assert.Equal(t, "c2", agg.NextCursor())

	// Merging the same page twice changes nothing but the cursor state.
	before := itemIDs(agg.Items())
	agg.Merge(models.FeedPage{Items: mediaItems("b", "d", "a", "e"), NextCursor: "c2", HasMore: true})
	assert.Equal(t, before, itemIDs(agg.Items()))
}

func TestMergeAllDuplicatesStillAdvancesCursor(t *testing.T) {
	agg := NewAggregator(&stubSource{}, 24)
	agg.Merge(models.FeedPage{Items: mediaItems("a", "b"), NextCursor: "c1", HasMore: true})
	agg.Merge(models.FeedPage{Items: mediaItems("a", "b"), NextCursor: "c2", HasMore: true})

	assert.Equal(t, []string{"a", "b"}, itemIDs(agg.Items()))
	assert.Equal(t, "c2", agg.NextCursor())
	assert.True(t, agg.HasMore())
}

func TestHasMoreRequiresCursor(t *testing.T) {
	agg := NewAggregator(&stubSource{}, 24)

	// A page claiming more results without a cursor cannot be believed.
	agg.Merge(models.FeedPage{Items: mediaItems("a"), NextCursor: "", HasMore: true})
	assert.False(t, agg.HasMore())
	assert.False(t, agg.LoadMore(context.Background()))
}

func TestLoadMorePreservesStateOnFailure(t *testing.T) {
	src := &stubSource{
		pages: map[string]models.FeedPage{
			"": {Items: mediaItems("a", "b"), NextCursor: "c1", HasMore: true},
		},
		errs: map[string]error{"c1": errors.New("rate limited")},
	}
	agg := NewAggregator(src, 24)
	agg.LoadFirst(context.Background())

	require.True(t, agg.LoadMore(context.Background()))

	// Accumulated items, cursor, and hasMore all survive the failure so
	// the identical fetch can be retried.
	assert.Equal(t, []string{"a", "b"}, itemIDs(agg.Items()))
	assert.Equal(t, "c1", agg.NextCursor())
	assert.True(t, agg.HasMore())
	assert.Equal(t, "Could not load more posts right now.", agg.LastError())

	// Retry succeeds and clears the error.
	delete(src.errs, "c1")
	src.pages["c1"] = models.FeedPage{Items: mediaItems("c")}
	require.True(t, agg.LoadMore(context.Background()))
	assert.Equal(t, []string{"a", "b", "c"}, itemIDs(agg.Items()))
	assert.Empty(t, agg.LastError())
	assert.False(t, agg.HasMore())
}
