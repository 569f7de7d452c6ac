package models

// MediaType mirrors the Instagram Graph API media_type values.
type MediaType string

const (
	MediaImage    MediaType = "IMAGE"
	MediaVideo    MediaType = "VIDEO"
	MediaCarousel MediaType = "CAROUSEL_ALBUM"
)

// MediaItem is one normalized gallery entry. Immutable once fetched.
type MediaItem struct {
	ID           string    `json:"id"`
	Caption      string    `json:"caption"`
	MediaType    MediaType `json:"mediaType"`
	MediaURL     string    `json:"mediaUrl"`
	ThumbnailURL string    `json:"thumbnailUrl,omitempty"` // render fallback for video
	Permalink    string    `json:"permalink"`
	Timestamp    string    `json:"timestamp"`
	Username     string    `json:"username,omitempty"`
}

// FeedPage is one fetched page of media. Items keep source order (newest
// first per upstream convention). An empty NextCursor means no cursor;
// HasMore is true only when a cursor is present.
type FeedPage struct {
	Items      []MediaItem `json:"items"`
	NextCursor string      `json:"nextCursor,omitempty"`
	HasMore    bool        `json:"hasMore"`
}
