// Package gallery derives the rendered order of artworks and drives the
// lightbox viewer.
package gallery

import "github.com/gpedrosad/mapra2/internal/artwork"

// DefaultLastOnWideID is the piece pushed to the end on wide viewports.
const DefaultLastOnWideID = "c3"

// DisplayList returns a new slice ordered for display. On wide viewports the
// item identified by lastOnWideID moves to the end; otherwise the source order
// is kept. items is never modified.
func DisplayList(items []artwork.Artwork, wide bool, lastOnWideID string) []artwork.Artwork {
	out := make([]artwork.Artwork, 0, len(items))
	if !wide || lastOnWideID == "" {
		return append(out, items...)
	}
	picked := -1
	for i, it := range items {
		if it.ID == lastOnWideID && picked < 0 {
			picked = i
			continue
		}
		out = append(out, it)
	}
	if picked < 0 {
		return append(out[:0], items...)
	}
	return append(out, items[picked])
}

// Wrap maps i onto [0, n) circularly. n must be positive.
func Wrap(i, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i % n) + n) % n
}
