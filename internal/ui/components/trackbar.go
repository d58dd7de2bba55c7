package components

import (
	"strings"

	"github.com/Akashdeep-Patra/carousel/internal/ui"
)

// RenderTrackbar returns a one-row horizontal bar showing which part of
// the track is in view. The thumb is proportional to the visible portion
// and positioned by offset within [0, maxOffset].
//
// Returns a blank row when everything fits (no scrolling possible).
//
//	Parameters:
//	  styles     – application styles (for theming)
//	  width      – total width of the bar (cells)
//	  trackWidth – total width of the laid-out items
//	  viewWidth  – width of the visible window
//	  offset     – current scroll offset, 0..maxOffset
func RenderTrackbar(styles ui.Styles, width, trackWidth, viewWidth, offset int) string {
	if width < 1 {
		return ""
	}
	if trackWidth <= viewWidth || viewWidth < 1 {
		return strings.Repeat(" ", width)
	}

	thumbSize := width * viewWidth / trackWidth
	thumbSize = max(thumbSize, 1)
	thumbSize = min(thumbSize, width)

	maxOffset := trackWidth - viewWidth
	room := width - thumbSize
	thumbStart := 0
	if maxOffset > 0 {
		thumbStart = room * min(max(offset, 0), maxOffset) / maxOffset
	}

	var b strings.Builder
	b.Grow(width * 4)
	if thumbStart > 0 {
		b.WriteString(styles.Track.Render(strings.Repeat("─", thumbStart)))
	}
	b.WriteString(styles.TrackThumb.Render(strings.Repeat("━", thumbSize)))
	if rest := width - thumbStart - thumbSize; rest > 0 {
		b.WriteString(styles.Track.Render(strings.Repeat("─", rest)))
	}
	return b.String()
}
