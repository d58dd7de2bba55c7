// Package carousel implements the navigation and layout-geometry engine of a
// horizontally paged item carousel. It is independent of any renderer: the
// terminal view feeds it measured cell extents and reads back a Presentation.
//
// The engine has two paging regimes selected by ItemsPerSlide:
//   - free mode (ItemsPerSlide == 0): one press scrolls by roughly one
//     viewport, item by item, honouring variable item widths.
//   - fixed-slide mode (ItemsPerSlide > 0): one press moves exactly one slide.
package carousel

// Extent is the horizontal span of one item, in cells, relative to the start
// of the track. Right is exclusive of the following gap.
type Extent struct {
	Left  int
	Right int
}

// Width returns the extent's width in cells.
func (e Extent) Width() int { return e.Right - e.Left }

// Geometry is one measurement pass: every item's extent plus the width of the
// viewport the track is shown through. It is replaced as a whole, never
// patched item by item.
type Geometry struct {
	Extents    []Extent
	SlideWidth int
}

// Len returns the number of measured items.
func (g Geometry) Len() int { return len(g.Extents) }

// Measurer is the measurement primitive: it reports where item i sits inside
// its container and how wide the container is.
type Measurer interface {
	Measure(i int) (left, width int)
	ContainerWidth() int
}

// Snapshot reads n items and the container width from m in a single pass.
func Snapshot(m Measurer, n int) Geometry {
	g := Geometry{
		Extents:    make([]Extent, n),
		SlideWidth: m.ContainerWidth(),
	}
	for i := 0; i < n; i++ {
		left, width := m.Measure(i)
		g.Extents[i] = Extent{Left: left, Right: left + width}
	}
	return g
}

// TrackLayout lays items out left to right with a fixed gap between them, the
// way a flex row would. It is the Measurer used by the terminal renderer.
type TrackLayout struct {
	lefts  []int
	widths []int
	width  int
}

// Compile-time check.
var _ Measurer = (*TrackLayout)(nil)

// NewTrackLayout positions items of the given widths inside a container of
// containerWidth cells. Negative widths and gaps are treated as zero.
func NewTrackLayout(widths []int, gap, containerWidth int) *TrackLayout {
	gap = max(gap, 0)
	t := &TrackLayout{
		lefts:  make([]int, len(widths)),
		widths: make([]int, len(widths)),
		width:  max(containerWidth, 0),
	}
	x := 0
	for i, w := range widths {
		w = max(w, 0)
		t.lefts[i] = x
		t.widths[i] = w
		x += w + gap
	}
	return t
}

// Measure returns the left offset and width of item i.
func (t *TrackLayout) Measure(i int) (left, width int) {
	return t.lefts[i], t.widths[i]
}

// ContainerWidth returns the viewport width.
func (t *TrackLayout) ContainerWidth() int { return t.width }

// TrackWidth returns the total width of the laid-out items, gaps included
// between items but not after the last one.
func (t *TrackLayout) TrackWidth() int {
	n := len(t.widths)
	if n == 0 {
		return 0
	}
	return t.lefts[n-1] + t.widths[n-1]
}
