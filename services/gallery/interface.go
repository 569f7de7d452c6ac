package gallery

import (
	"context"
	"net/http"

	"inkhaus/models"
)

// FeedSource supplies pages of gallery media from an upstream API.
type FeedSource interface {
	// Configured reports whether the upstream credential is present. An
	// unconfigured source is a valid, fully-degraded state, not an error.
	Configured() bool
	// FetchPage fetches one page of media. after is an opaque cursor;
	// empty means the first page.
	FetchPage(ctx context.Context, limit int, after string) (models.FeedPage, error)
}

// InstagramSource implements FeedSource against the Instagram Graph API.
// It is the only component that ever sees the access token.
type InstagramSource struct {
	AccessToken string
	BaseURL     string
	HTTPClient  *http.Client
}
