package carousel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// measureFixed lays out n equal items the way the renderer does in
// fixed-slide mode and feeds the snapshot to s.
func measureFixed(t *testing.T, s *State, trackWidth int) {
	t.Helper()
	w := s.ItemWidth().Resolve(trackWidth)
	widths := make([]int, s.Len())
	for i := range widths {
		widths[i] = w
	}
	l := NewTrackLayout(widths, s.Gap(), trackWidth)
	require.NoError(t, s.Measure(Snapshot(l, s.Len())))
}

func TestNew_TruncatesToWholeSlides(t *testing.T) {
	s := New(Config{ItemsPerSlide: 4, Items: items(11)})
	assert.Equal(t, 8, s.Len())
	assert.Equal(t, "item 7", s.Items()[7].Title)
}

func TestNew_MisconfigurationFallsBack(t *testing.T) {
	s := New(Config{ItemsPerSlide: -2, Gap: 0, Index: -5, Items: items(5)})
	assert.False(t, s.FixedSlides())
	assert.Equal(t, 0, s.ItemsPerSlide())
	assert.Equal(t, DefaultGap, s.Gap())
	assert.Equal(t, 0, s.Index())
	assert.Equal(t, 5, s.Len())
	assert.Equal(t, DefaultStatusLabel, s.Templates().Status)
}

func TestNew_KeepsCustomTemplates(t *testing.T) {
	s := New(Config{Templates: Templates{Status: "{currentSlide}/{totalSlides}"}})
	assert.Equal(t, "{currentSlide}/{totalSlides}", s.Templates().Status)
	assert.Equal(t, DefaultPrevLabel, s.Templates().Prev)
}

func TestNew_DoesNotAliasInput(t *testing.T) {
	in := items(3)
	s := New(Config{Items: in})
	in[0].Title = "changed"
	assert.Equal(t, "item 0", s.Items()[0].Title)
}

func TestMeasure_RejectsMismatchedSnapshot(t *testing.T) {
	s := New(Config{Items: items(3)})
	err := s.Measure(Geometry{SlideWidth: 10, Extents: make([]Extent, 2)})
	require.ErrorIs(t, err, ErrGeometryMismatch)
	assert.False(t, s.Measured())
}

func TestMeasure_CopiesExtents(t *testing.T) {
	s := New(Config{Items: items(1)})
	g := Geometry{SlideWidth: 10, Extents: []Extent{{0, 5}}}
	require.NoError(t, s.Measure(g))
	g.Extents[0].Right = 99
	assert.Equal(t, 5, s.Geometry().Extents[0].Right)
}

func TestDerive_Empty(t *testing.T) {
	s := New(Config{ItemsPerSlide: 3})
	require.NoError(t, s.Measure(Geometry{SlideWidth: 80}))

	p := s.Derive()
	assert.Equal(t, 0, p.Offset)
	assert.Equal(t, 0, p.MaxOffset)
	assert.True(t, p.PrevDisabled)
	assert.True(t, p.NextDisabled)
	assert.True(t, p.BothDisabled)
	assert.False(t, p.HasSlides)
	assert.Empty(t, p.Status)
	assert.Empty(t, p.Hidden)

	_, moved := s.Move(Next, nil)
	assert.False(t, moved)
	_, moved = s.JumpTo(0, nil)
	assert.False(t, moved)
}

func TestDerive_BeforeMeasurement(t *testing.T) {
	s := New(Config{ItemsPerSlide: 2, Items: items(4)})
	p := s.Derive()
	assert.False(t, p.Measured)
	assert.True(t, p.BothDisabled)
	assert.Equal(t, []bool{false, false, false, false}, p.Hidden)
	assert.Equal(t, "Showing Slide 1 of 2 - Carousel", p.Status)
}

func TestDerive_FixedSlides(t *testing.T) {
	s := New(Config{ItemsPerSlide: 3, Gap: 2, Items: items(6)})
	measureFixed(t, s, 80)

	p := s.Derive()
	assert.True(t, p.Measured)
	assert.True(t, p.HasSlides)
	assert.Equal(t, 0, p.Offset)
	assert.Equal(t, 80, p.MaxOffset)
	assert.True(t, p.PrevDisabled)
	assert.False(t, p.NextDisabled)
	assert.Equal(t, []bool{false, false, false, true, true, true}, p.Hidden)
	assert.Equal(t, 0, p.Slide)
	assert.Equal(t, 2, p.TotalSlides)
	assert.Equal(t, "Showing Slide 1 of 2 - Carousel", p.Status)
	assert.Equal(t, []string{"Current Slide 1 - Carousel", "Slide 2 - Carousel"}, p.SlideLabels)
	assert.Equal(t, "Previous Slide", p.PrevLabel)

	ev, moved := s.Move(Next, "press")
	require.True(t, moved)
	assert.Equal(t, ControlNext, ev.Control)
	assert.Equal(t, "press", ev.Origin)
	assert.Equal(t, 0, ev.From)
	assert.Equal(t, 3, ev.To)

	p = s.Derive()
	assert.Equal(t, 80, p.Offset)
	assert.False(t, p.PrevDisabled)
	assert.True(t, p.NextDisabled)
	assert.Equal(t, []bool{true, true, true, false, false, false}, p.Hidden)
	assert.Equal(t, "Showing Slide 2 of 2 - Carousel", p.Status)

	_, moved = s.Move(Next, nil)
	assert.False(t, moved, "moving past the end is a no-op")
	assert.Equal(t, 3, s.Index())
}

func TestDerive_FreeMode(t *testing.T) {
	s := New(Config{Items: items(5)})
	require.NoError(t, s.Measure(freeGeometry()))

	p := s.Derive()
	assert.False(t, p.HasSlides)
	assert.Empty(t, p.Status)
	assert.Equal(t, "auto", p.ItemWidth.String())
	assert.Equal(t, []bool{false, false, true, true, true}, p.Hidden)

	ev, moved := s.Move(Next, nil)
	require.True(t, moved)
	assert.Equal(t, 2, ev.To)
	assert.Equal(t, 120, s.Derive().Offset)

	_, moved = s.JumpTo(1, nil)
	assert.False(t, moved, "slide jumps need fixed slides")
}

func TestDerive_Idempotent(t *testing.T) {
	s := New(Config{ItemsPerSlide: 3, Items: items(9), Index: 4})
	measureFixed(t, s, 60)
	assert.Equal(t, s.Derive(), s.Derive())

	f := New(Config{Items: items(5), Index: 3})
	require.NoError(t, f.Measure(freeGeometry()))
	assert.Equal(t, f.Derive(), f.Derive())
}

func TestDerive_IndexBounds(t *testing.T) {
	for n := 0; n <= 9; n++ {
		for ips := 0; ips <= 4; ips++ {
			for idx := 0; idx <= 12; idx++ {
				s := New(Config{ItemsPerSlide: ips, Items: items(n), Index: idx})
				p := s.Derive()
				if s.Len() == 0 {
					assert.Equal(t, 0, p.Index)
					continue
				}
				assert.GreaterOrEqual(t, p.Index, 0)
				assert.Less(t, p.Index, s.Len(), "n=%d ips=%d idx=%d", n, ips, idx)
				if ips > 0 {
					assert.Zero(t, p.Index%ips, "n=%d ips=%d idx=%d", n, ips, idx)
				}
			}
		}
	}
}

func TestSetIndex_RestoredIndexIsNormalized(t *testing.T) {
	s := New(Config{ItemsPerSlide: 3, Items: items(9)})
	measureFixed(t, s, 60)

	s.SetIndex(7)
	assert.Equal(t, 7, s.Index())
	assert.Equal(t, 6, s.Derive().Index)
	assert.Equal(t, 2, s.Derive().Slide)

	s.SetIndex(40)
	assert.Equal(t, 6, s.Derive().Index)

	s.SetIndex(-3)
	assert.Equal(t, 0, s.Index())
}

func TestJumpTo(t *testing.T) {
	s := New(Config{ItemsPerSlide: 4, Items: items(12)})

	ev, moved := s.JumpTo(2, "click")
	require.True(t, moved)
	assert.Equal(t, ControlSlide, ev.Control)
	assert.Equal(t, 8, ev.To)
	assert.Equal(t, 8, s.Index())

	_, moved = s.JumpTo(2, nil)
	assert.False(t, moved, "jumping to the current slide is a no-op")

	_, moved = s.JumpTo(3, nil)
	assert.False(t, moved, "out of range")
	_, moved = s.JumpTo(-1, nil)
	assert.False(t, moved, "out of range")
	assert.Equal(t, 8, s.Index())
}

func TestMove_RejectsInvalidDirection(t *testing.T) {
	s := New(Config{ItemsPerSlide: 1, Items: items(3)})
	_, moved := s.Move(Direction(2), nil)
	assert.False(t, moved)
	_, moved = s.Move(Direction(0), nil)
	assert.False(t, moved)
	assert.Equal(t, 0, s.Index())
}

func TestMove_FixedScenario(t *testing.T) {
	s := New(Config{ItemsPerSlide: 3, Items: items(9)})
	assert.Equal(t, 3, s.Derive().TotalSlides)

	var got []int
	for i := 0; i < 3; i++ {
		s.Move(Next, nil)
		got = append(got, s.Index())
	}
	assert.Equal(t, []int{3, 6, 6}, got)

	ev, moved := s.Move(Prev, nil)
	require.True(t, moved)
	assert.Equal(t, ControlPrev, ev.Control)
	assert.Equal(t, 3, s.Index())
}

func TestVisibleIndexes_State(t *testing.T) {
	s := New(Config{Items: items(5)})
	assert.Nil(t, s.VisibleIndexes())

	require.NoError(t, s.Measure(freeGeometry()))
	assert.Equal(t, []int{0, 1}, s.VisibleIndexes())
	s.SetIndex(4)
	assert.Equal(t, []int{4}, s.VisibleIndexes())
}
