package carousel

// IsVisible reports whether e lies entirely inside the window
// [offset, offset+slideWidth]. An item that only partly overlaps the window
// is not visible.
func IsVisible(e Extent, offset, slideWidth int) bool {
	return e.Left-offset >= 0 && e.Right-offset <= slideWidth
}

// MaxOffset is the furthest the track can scroll: the right edge of the last
// item minus the viewport width. It is zero for an empty snapshot and when
// the whole track already fits in the viewport.
func MaxOffset(g Geometry) int {
	if len(g.Extents) == 0 {
		return 0
	}
	return max(g.Extents[len(g.Extents)-1].Right-g.SlideWidth, 0)
}

// Offset returns the clamped scroll offset for anchor index: the item's left
// edge, but never past MaxOffset. index must be a valid item index.
func Offset(g Geometry, index int) int {
	if len(g.Extents) == 0 {
		return 0
	}
	return min(g.Extents[index].Left, MaxOffset(g))
}

// VisibleIndexes lists the items fully inside the window at offset.
func VisibleIndexes(g Geometry, offset int) []int {
	var out []int
	for i, e := range g.Extents {
		if IsVisible(e, offset, g.SlideWidth) {
			out = append(out, i)
		}
	}
	return out
}
