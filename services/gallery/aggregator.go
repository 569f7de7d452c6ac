// File: gallery/aggregator.go
package gallery

import (
	"context"

	"inkhaus/models"
)

// Aggregator accumulates fetched media pages into one de-duplicated,
// ordered collection with cursor-based "load more". It is driven from a
// single event flow; the loading flag guards against overlapping fetches,
// not parallel goroutines.
type Aggregator struct {
	Source FeedSource
	Limit  int

	items       []models.MediaItem
	seen        map[string]struct{}
	nextCursor  string
	hasMore     bool
	loadingMore bool
	lastError   string
}

// NewAggregator creates an empty aggregator over the given source.
func NewAggregator(source FeedSource, limit int) *Aggregator {
	return &Aggregator{
		Source: source,
		Limit:  limit,
		items:  []models.MediaItem{},
		seen:   map[string]struct{}{},
	}
}

// Items exposes the accumulated collection read-only. Nothing is ever
// removed or reordered once merged.
func (a *Aggregator) Items() []models.MediaItem { return a.items }

// HasMore reports whether another page can be fetched.
func (a *Aggregator) HasMore() bool { return a.hasMore }

// NextCursor returns the current pagination cursor ("" when exhausted).
func (a *Aggregator) NextCursor() string { return a.nextCursor }

// LastError returns the retryable load-more error, if any.
func (a *Aggregator) LastError() string { return a.lastError }

// LoadFirst fetches the first page. An unreachable or failing source
// degrades to an empty collection with hasMore=false; the caller renders
// "connect your feed" guidance instead of an error.
func (a *Aggregator) LoadFirst(ctx context.Context) {
	page, err := a.Source.FetchPage(ctx, a.Limit, "")
	if err != nil {
		a.items = []models.MediaItem{}
		a.seen = map[string]struct{}{}
		a.nextCursor = ""
		a.hasMore = false
		return
	}
	a.items = []models.MediaItem{}
	a.seen = map[string]struct{}{}
	a.Merge(page)
}

// LoadMore fetches the next page and merges it. Overlapping triggers and
// calls without a cursor are no-ops. On failure the accumulated items,
// cursor, and hasMore are all preserved so the same fetch can be retried;
// only the retryable error flag changes. Reports whether a fetch ran.
func (a *Aggregator) LoadMore(ctx context.Context) bool {
	if !a.hasMore || a.nextCursor == "" || a.loadingMore {
		return false
	}
	a.loadingMore = true
	defer func() { a.loadingMore = false }()

	a.lastError = ""
	page, err := a.Source.FetchPage(ctx, a.Limit, a.nextCursor)
	if err != nil {
		a.lastError = "Could not load more posts right now."
		return true
	}
	a.Merge(page)
	return true
}

// Merge folds one fetched page into the accumulated collection: incoming
// items whose id is already present are dropped, the rest are appended in
// received order. The cursor and hasMore always follow the page, even when
// every item was a duplicate.
func (a *Aggregator) Merge(page models.FeedPage) {
	for _, item := range page.Items {
		if _, dup := a.seen[item.ID]; dup {
			continue
		}
		a.seen[item.ID] = struct{}{}
		a.items = append(a.items, item)
	}
	a.nextCursor = page.NextCursor
	a.hasMore = page.HasMore && page.NextCursor != ""
}
