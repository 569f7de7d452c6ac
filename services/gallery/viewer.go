// File: gallery/viewer.go
package gallery

import "inkhaus/models"

// Filter selects which media types the grid shows.
type Filter string

const (
	FilterAll   Filter = "all"
	FilterImage Filter = "image"
	FilterVideo Filter = "video"
)

// FilterFor maps a media type to its filter bucket. Video matches exactly
// the video type; everything else, carousels included, counts as image.
func FilterFor(t models.MediaType) Filter {
	if t == models.MediaVideo {
		return FilterVideo
	}
	return FilterImage
}

// FilterItems returns the view of items matching the filter. The
// underlying collection is never mutated.
func FilterItems(items []models.MediaItem, filter Filter) []models.MediaItem {
	if filter == FilterAll {
		return items
	}
	out := make([]models.MediaItem, 0, len(items))
	for _, item := range items {
		if FilterFor(item.MediaType) == filter {
			out = append(out, item)
		}
	}
	return out
}

// Viewer is the lightbox state over the aggregated collection. Selection
// is tracked by item id so merges never shift the open item. Navigation
// always cycles the full accumulated collection regardless of the active
// filter.
type Viewer struct {
	Filter     Filter
	selectedID string
}

// NewViewer starts with the unfiltered grid and nothing selected.
func NewViewer() *Viewer {
	return &Viewer{Filter: FilterAll}
}

// Select opens the lightbox on the given item.
func (v *Viewer) Select(id string) { v.selectedID = id }

// Close dismisses the lightbox.
func (v *Viewer) Close() { v.selectedID = "" }

// Selected resolves the open item against the collection.
func (v *Viewer) Selected(items []models.MediaItem) (models.MediaItem, bool) {
	if v.selectedID == "" {
		return models.MediaItem{}, false
	}
	for _, item := range items {
		if item.ID == v.selectedID {
			return item, true
		}
	}
	return models.MediaItem{}, false
}

// Next advances the lightbox to the following item, wrapping around. A
// no-op with fewer than two items or no valid selection.
func (v *Viewer) Next(items []models.MediaItem) {
	v.step(items, 1)
}

// Previous steps the lightbox back one item, wrapping around.
func (v *Viewer) Previous(items []models.MediaItem) {
	v.step(items, -1)
}

func (v *Viewer) step(items []models.MediaItem, delta int) {
	if len(items) < 2 || v.selectedID == "" {
		return
	}
	idx := -1
	for i, item := range items {
		if item.ID == v.selectedID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	v.selectedID = items[(idx+delta+len(items))%len(items)].ID
}
