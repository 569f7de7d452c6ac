// File: gallery/instagram.go
package gallery

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"inkhaus/models"
)

const defaultGraphBaseURL = "https://graph.instagram.com"

// graphFields is the field list requested per media item, including one
// level of carousel children for the media-URL fallback.
const graphFields = "id,caption,media_type,media_url,thumbnail_url,permalink,timestamp,username,children{media_type,media_url,thumbnail_url}"

// NewInstagramSource creates a Graph API source for the given token.
func NewInstagramSource(accessToken string) *InstagramSource {
	return &InstagramSource{
		AccessToken: accessToken,
		BaseURL:     defaultGraphBaseURL,
		HTTPClient:  &http.Client{Timeout: 10 * time.Second},
	}
}

// graphResponse mirrors the Graph API /me/media reply.
type graphResponse struct {
	Data []struct {
		ID           string `json:"id"`
		Caption      string `json:"caption"`
		MediaType    string `json:"media_type"`
		MediaURL     string `json:"media_url"`
		ThumbnailURL string `json:"thumbnail_url"`
		Permalink    string `json:"permalink"`
		Timestamp    string `json:"timestamp"`
		Username     string `json:"username"`
		Children     *struct {
			Data []struct {
				MediaType    string `json:"media_type"`
				MediaURL     string `json:"media_url"`
				ThumbnailURL string `json:"thumbnail_url"`
			} `json:"data"`
		} `json:"children"`
	} `json:"data"`
	Paging *struct {
		Cursors *struct {
			After string `json:"after"`
		} `json:"cursors"`
		Next string `json:"next"`
	} `json:"paging"`
}

// Configured reports whether an access token is present.
func (s *InstagramSource) Configured() bool {
	return s.AccessToken != ""
}

// FetchPage requests one page of media from the Graph API and normalizes
// it. Items missing an id, a resolvable media URL, a permalink, or a
// timestamp are excluded entirely. For carousels the media URL falls back
// to the first child's media URL/thumbnail.
func (s *InstagramSource) FetchPage(ctx context.Context, limit int, after string) (models.FeedPage, error) {
	if !s.Configured() {
		return models.FeedPage{Items: []models.MediaItem{}}, nil
	}

	base := s.BaseURL
	if base == "" {
		base = defaultGraphBaseURL
	}
	endpoint, err := url.Parse(base + "/me/media")
	if err != nil {
		return models.FeedPage{}, fmt.Errorf("gallery: invalid graph URL: %w", err)
	}
	q := endpoint.Query()
	q.Set("fields", graphFields)
	q.Set("limit", strconv.Itoa(limit))
	q.Set("access_token", s.AccessToken)
	if after != "" {
		q.Set("after", after)
	}
	endpoint.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return models.FeedPage{}, fmt.Errorf("gallery: failed to build request: %w", err)
	}
	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return models.FeedPage{}, fmt.Errorf("gallery: graph request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.FeedPage{}, fmt.Errorf("gallery: graph API failed (%d)", resp.StatusCode)
	}

	var graph graphResponse
	if err := json.NewDecoder(resp.Body).Decode(&graph); err != nil {
		return models.FeedPage{}, fmt.Errorf("gallery: failed to decode graph response: %w", err)
	}

	items := make([]models.MediaItem, 0, len(graph.Data))
	for _, raw := range graph.Data {
		mediaURL := raw.MediaURL
		thumbnailURL := raw.ThumbnailURL
		if raw.Children != nil && len(raw.Children.Data) > 0 {
			first := raw.Children.Data[0]
			if mediaURL == "" {
				mediaURL = first.MediaURL
			}
			if thumbnailURL == "" {
				thumbnailURL = first.ThumbnailURL
			}
		}
		if raw.ID == "" || mediaURL == "" || raw.Permalink == "" || raw.Timestamp == "" {
			continue
		}
		items = append(items, models.MediaItem{
			ID:           raw.ID,
			Caption:      raw.Caption,
			MediaType:    models.MediaType(raw.MediaType),
			MediaURL:     mediaURL,
			ThumbnailURL: thumbnailURL,
			Permalink:    raw.Permalink,
			Timestamp:    raw.Timestamp,
			Username:     raw.Username,
		})
	}

	var nextCursor string
	hasNext := false
	if graph.Paging != nil {
		if graph.Paging.Cursors != nil {
			nextCursor = graph.Paging.Cursors.After
		}
		hasNext = graph.Paging.Next != ""
	}

	// A page never claims more results without a cursor to fetch them.
	return models.FeedPage{
		Items:      items,
		NextCursor: nextCursor,
		HasMore:    hasNext && nextCursor != "",
	}, nil
}
