package carousel

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// geometryOf builds a snapshot from parallel left/right slices.
func geometryOf(slideWidth int, lefts, rights []int) Geometry {
	g := Geometry{SlideWidth: slideWidth, Extents: make([]Extent, len(lefts))}
	for i := range lefts {
		g.Extents[i] = Extent{Left: lefts[i], Right: rights[i]}
	}
	return g
}

func items(n int) []Item {
	out := make([]Item, n)
	for i := range out {
		out[i] = Item{Title: fmt.Sprintf("item %d", i)}
	}
	return out
}

// freeGeometry is the variable-width track used by the free-mode scenarios.
func freeGeometry() Geometry {
	return geometryOf(150,
		[]int{0, 50, 120, 200, 300},
		[]int{40, 110, 190, 290, 400},
	)
}

func TestIsVisible(t *testing.T) {
	tests := []struct {
		name       string
		extent     Extent
		offset     int
		slideWidth int
		want       bool
	}{
		{"fully inside", Extent{10, 50}, 0, 100, true},
		{"touching both edges", Extent{0, 100}, 0, 100, true},
		{"partial overlap at head", Extent{0, 100}, 10, 100, false},
		{"partial overlap at tail", Extent{50, 120}, 0, 100, false},
		{"entirely before window", Extent{0, 20}, 30, 100, false},
		{"entirely after window", Extent{200, 220}, 0, 100, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsVisible(tt.extent, tt.offset, tt.slideWidth))
		})
	}
}

func TestMaxOffsetAndOffset(t *testing.T) {
	g := freeGeometry()
	assert.Equal(t, 250, MaxOffset(g))
	assert.Equal(t, 0, Offset(g, 0))
	assert.Equal(t, 200, Offset(g, 3))
	assert.Equal(t, 250, Offset(g, 4), "offset is clamped to the max offset")

	assert.Equal(t, 0, MaxOffset(Geometry{SlideWidth: 100}))
	assert.Equal(t, 0, Offset(Geometry{SlideWidth: 100}, 0))

	narrow := geometryOf(100, []int{0, 30}, []int{20, 60})
	assert.Equal(t, 0, MaxOffset(narrow), "a track narrower than the viewport never scrolls")
}

func TestVisibleIndexes(t *testing.T) {
	g := freeGeometry()
	assert.Equal(t, []int{0, 1}, VisibleIndexes(g, 0))
	assert.Equal(t, []int{2}, VisibleIndexes(g, 120))
	assert.Equal(t, []int{4}, VisibleIndexes(g, 250))
}

func TestEffectiveIndex(t *testing.T) {
	tests := []struct {
		index, ips, want int
	}{
		{0, 0, 0},
		{7, 0, 7},
		{0, 3, 0},
		{4, 3, 3},
		{5, 3, 3},
		{6, 3, 6},
		{11, 4, 8},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d/%d", tt.index, tt.ips), func(t *testing.T) {
			assert.Equal(t, tt.want, EffectiveIndex(tt.index, tt.ips))
		})
	}
}

func TestSlideMetrics(t *testing.T) {
	m := SlideMetrics(9, 0, 3, 2)
	assert.Equal(t, 0, m.Slide)
	assert.Equal(t, 3, m.TotalSlides)

	m = SlideMetrics(9, 7, 3, 2)
	assert.Equal(t, 2, m.Slide, "index 7 belongs to the slide starting at 6")

	m = SlideMetrics(8, 4, 4, 16)
	assert.Equal(t, 1, m.Slide)
	assert.Equal(t, 2, m.TotalSlides)
	assert.Equal(t, "calc(25% - 12px)", m.ItemWidth.String())
}

func TestItemWidth(t *testing.T) {
	assert.Equal(t, "auto", AutoWidth.String())
	assert.Equal(t, 0, AutoWidth.Resolve(80))

	w := ItemWidth{ItemsPerSlide: 3, Gap: 16}
	assert.Equal(t, "calc(33.333333333333336% - 10.666666666666666px)", w.String())
	assert.InDelta(t, 33.3333, w.Percent(), 0.001)
	assert.InDelta(t, 10.6667, w.GapShare(), 0.001)

	w = ItemWidth{ItemsPerSlide: 3, Gap: 2}
	assert.Equal(t, 25, w.Resolve(80))
	assert.LessOrEqual(t, 3*w.Resolve(80)+2*2, 80, "three items and two gaps fit the track")

	assert.Equal(t, 1, ItemWidth{ItemsPerSlide: 4, Gap: 10}.Resolve(5), "never below one cell")
}

func TestFormatStatus(t *testing.T) {
	assert.Equal(t, "Showing Slide 2 of 3 - Carousel", FormatStatus(DefaultStatusLabel, 1, 3))
	assert.Equal(t, "3/3", FormatStatus("{currentSlide}/{totalSlides}", 2, 3))
	assert.Equal(t, "no placeholders", FormatStatus("no placeholders", 0, 1))
}

func TestFormatSlideLabel(t *testing.T) {
	assert.Equal(t, "Slide 4 - Carousel", FormatSlideLabel(DefaultOtherLabel, 3))
	assert.Equal(t, "Current Slide 1 - Carousel", FormatSlideLabel(DefaultCurrentLabel, 0))
}

func TestNextIndex_FixedSlides(t *testing.T) {
	tests := []struct {
		name    string
		current int
		dir     Direction
		want    int
	}{
		{"first to second", 0, Next, 3},
		{"second to third", 3, Next, 6},
		{"clamped at the end", 6, Next, 6},
		{"back from third", 6, Prev, 3},
		{"clamped at the start", 0, Prev, 0},
		{"unaligned index is normalized first", 4, Next, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextIndex(tt.current, tt.dir, 9, Geometry{}, 3))
		})
	}
}

func TestNextIndex_FreeScrollByViewport(t *testing.T) {
	g := freeGeometry()

	assert.Equal(t, 2, NextIndex(0, Next, 5, g, 0))
	assert.Equal(t, 3, NextIndex(2, Next, 5, g, 0))
	assert.Equal(t, 1, NextIndex(3, Prev, 5, g, 0))
	assert.Equal(t, 0, NextIndex(0, Prev, 5, g, 0), "nothing before the first item")
	assert.Equal(t, 4, NextIndex(4, Next, 5, g, 0), "nothing after the last item")
}

func TestNextIndex_FreeUsesCurrentOffsetAsPivot(t *testing.T) {
	g := freeGeometry()
	// Index 4 is clamped to offset 250, so the walk back is measured from 250
	// rather than from item 4's own left edge at 300.
	assert.Equal(t, 2, NextIndex(4, Prev, 5, g, 0))
}

func TestNextIndex_FreeWithoutGeometryIsNoop(t *testing.T) {
	assert.Equal(t, 1, NextIndex(1, Next, 5, Geometry{}, 0))
	assert.Equal(t, 0, NextIndex(0, Next, 0, Geometry{}, 0))
}

func TestNextIndex_StaysInBounds(t *testing.T) {
	g := freeGeometry()
	for ips := 0; ips <= 3; ips++ {
		n := 9
		if ips == 0 {
			n = g.Len()
		}
		hi := n - 1
		if ips > 0 {
			hi = n - ips
		}
		for cur := 0; cur < n; cur++ {
			for _, dir := range []Direction{Prev, Next} {
				got := NextIndex(cur, dir, n, g, ips)
				assert.GreaterOrEqual(t, got, 0)
				assert.LessOrEqual(t, got, hi, "ips=%d cur=%d dir=%s", ips, cur, dir)
			}
		}
	}
}

func TestIndexForSlide(t *testing.T) {
	assert.Equal(t, 8, IndexForSlide(2, 4))
	assert.True(t, ValidSlide(2, 3))
	assert.False(t, ValidSlide(3, 3))
	assert.False(t, ValidSlide(-1, 3))
}

func TestDirection(t *testing.T) {
	assert.True(t, Prev.Valid())
	assert.True(t, Next.Valid())
	assert.False(t, Direction(0).Valid())
	assert.False(t, Direction(2).Valid())
	assert.Equal(t, "next", Next.String())
}

func TestTrackLayout(t *testing.T) {
	l := NewTrackLayout([]int{10, 5, 8}, 2, 20)
	left, width := l.Measure(1)
	assert.Equal(t, 12, left)
	assert.Equal(t, 5, width)
	assert.Equal(t, 20, l.ContainerWidth())
	assert.Equal(t, 27, l.TrackWidth())

	g := Snapshot(l, 3)
	assert.Equal(t, []Extent{{0, 10}, {12, 17}, {19, 27}}, g.Extents)
	assert.Equal(t, 20, g.SlideWidth)

	assert.Equal(t, 0, NewTrackLayout(nil, 2, 20).TrackWidth())
}

func TestListeners(t *testing.T) {
	var l Listeners
	var got []Control
	unsub := l.Subscribe(func(ev Event) { got = append(got, ev.Control) })
	l.Subscribe(func(ev Event) { got = append(got, ev.Control+10) })
	require.Equal(t, 2, l.Len())

	l.Emit(Event{Control: ControlNext})
	assert.Equal(t, []Control{ControlNext, ControlNext + 10}, got)

	unsub()
	unsub()
	assert.Equal(t, 1, l.Len())

	got = nil
	l.Emit(Event{Control: ControlPrev})
	assert.Equal(t, []Control{ControlPrev + 10}, got)
}
