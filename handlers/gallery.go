package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"inkhaus/models"
	"inkhaus/services/gallery"
	"inkhaus/utils"
)

// Feed limit bounds. Clients may ask for anything; the server clamps.
const (
	DefaultFeedLimit = 24
	MinFeedLimit     = 1
	MaxFeedLimit     = 60
)

// GalleryHandler serves the internal feed endpoint. It is the boundary
// that keeps the upstream access token off the browser.
type GalleryHandler struct {
	Source     gallery.FeedSource
	ProfileURL string
	Logger     *zap.Logger
}

// NewGalleryHandler creates a new GalleryHandler instance.
func NewGalleryHandler(source gallery.FeedSource, profileURL string, logger *zap.Logger) *GalleryHandler {
	return &GalleryHandler{Source: source, ProfileURL: profileURL, Logger: logger}
}

// feedResponse is the wire shape of the internal feed endpoint.
type feedResponse struct {
	Configured bool               `json:"configured"`
	Count      int                `json:"count"`
	Items      []models.MediaItem `json:"items"`
	NextCursor *string            `json:"nextCursor"`
	HasMore    bool               `json:"hasMore"`
	ProfileURL string             `json:"profileUrl,omitempty"`
}

// GetFeed handles GET /api/instagram. An absent upstream credential yields
// a successful unconfigured response; an upstream failure on the first
// page degrades to an empty page, while cursor fetches surface a retryable
// error so the client keeps its accumulated items.
func (h *GalleryHandler) GetFeed(c *gin.Context) {
	if !h.Source.Configured() {
		c.JSON(http.StatusOK, gin.H{"configured": false, "items": []models.MediaItem{}})
		return
	}

	limit := DefaultFeedLimit
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = clampLimit(n)
		}
	}
	after := c.Query("after")

	ctx := c.Request.Context()
	if after == "" {
		if cached, ok := h.cachedFirstPage(ctx, limit); ok {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	page, err := h.Source.FetchPage(ctx, limit, after)
	if err != nil {
		if after != "" {
			h.Logger.Warn("gallery: load more fetch failed", zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "failed to load more media"})
			return
		}
		h.Logger.Warn("gallery: first page fetch failed, serving empty feed", zap.Error(err))
		page = models.FeedPage{Items: []models.MediaItem{}}
	}

	resp := h.buildResponse(page)
	if after == "" && err == nil {
		h.storeFirstPage(ctx, limit, resp)
	}
	c.JSON(http.StatusOK, resp)
}

func (h *GalleryHandler) buildResponse(page models.FeedPage) feedResponse {
	items := page.Items
	if items == nil {
		items = []models.MediaItem{}
	}
	var cursor *string
	if page.NextCursor != "" {
		cursor = &page.NextCursor
	}
	return feedResponse{
		Configured: true,
		Count:      len(items),
		Items:      items,
		NextCursor: cursor,
		HasMore:    page.HasMore && page.NextCursor != "",
		ProfileURL: h.ProfileURL,
	}
}

// First-page responses are cached briefly so gallery loads don't hammer
// the upstream API. Cursor pages are never cached.
func (h *GalleryHandler) cachedFirstPage(ctx context.Context, limit int) (feedResponse, bool) {
	key := utils.FeedCachePrefix + "first:" + strconv.Itoa(limit)
	data, err := utils.GetCacheClient().Get(ctx, key).Result()
	if err != nil {
		return feedResponse{}, false
	}
	var resp feedResponse
	if err := json.Unmarshal([]byte(data), &resp); err != nil {
		return feedResponse{}, false
	}
	return resp, true
}

func (h *GalleryHandler) storeFirstPage(ctx context.Context, limit int, resp feedResponse) {
	data, err := json.Marshal(resp)
	if err != nil {
		return
	}
	key := utils.FeedCachePrefix + "first:" + strconv.Itoa(limit)
	if err := utils.GetCacheClient().Set(ctx, key, data, utils.FeedCacheTTL).Err(); err != nil {
		h.Logger.Warn("gallery: failed to cache first page", zap.Error(err))
	}
}

func clampLimit(n int) int {
	if n < MinFeedLimit {
		return MinFeedLimit
	}
	if n > MaxFeedLimit {
		return MaxFeedLimit
	}
	return n
}
