package carousel

import (
	"errors"
	"fmt"
)

// DefaultGap is the spacing between items, in cells, when none is configured.
const DefaultGap = 2

// Default accessibility templates.
const (
	DefaultPrevLabel    = "Previous Slide"
	DefaultNextLabel    = "Next Slide"
	DefaultStatusLabel  = "Showing Slide {currentSlide} of {totalSlides} - Carousel"
	DefaultCurrentLabel = "Current Slide {currentSlide} - Carousel"
	DefaultOtherLabel   = "Slide {slide} - Carousel"
)

// ErrGeometryMismatch is returned by Measure when the snapshot does not
// describe exactly the items of the carousel.
var ErrGeometryMismatch = errors.New("geometry does not match item count")

// Item is one carousel entry. Its content is opaque to the engine.
type Item struct {
	Title string
	Body  string
	Attrs map[string]string
}

// Templates holds the accessibility strings.
type Templates struct {
	Prev    string
	Next    string
	Status  string
	Current string
	Other   string
}

// withDefaults fills empty templates with the built-in ones.
func (t Templates) withDefaults() Templates {
	if t.Prev == "" {
		t.Prev = DefaultPrevLabel
	}
	if t.Next == "" {
		t.Next = DefaultNextLabel
	}
	if t.Status == "" {
		t.Status = DefaultStatusLabel
	}
	if t.Current == "" {
		t.Current = DefaultCurrentLabel
	}
	if t.Other == "" {
		t.Other = DefaultOtherLabel
	}
	return t
}

// Config is the input a carousel is built from.
type Config struct {
	Gap           int
	Index         int
	ItemsPerSlide int
	Templates     Templates
	Items         []Item
}

// State is the authoritative state of one carousel. Navigation is the only
// writer of the index and Measure is the only writer of the geometry.
type State struct {
	items         []Item
	index         int
	itemsPerSlide int
	gap           int
	templates     Templates

	geom     Geometry
	measured bool
}

// New builds a State from cfg. A non-positive ItemsPerSlide selects free
// mode, a non-positive Gap selects DefaultGap, and in fixed-slide mode
// trailing items that do not fill a whole slide are dropped.
func New(cfg Config) *State {
	s := &State{
		index:         max(cfg.Index, 0),
		itemsPerSlide: max(cfg.ItemsPerSlide, 0),
		gap:           cfg.Gap,
		templates:     cfg.Templates.withDefaults(),
	}
	if s.gap <= 0 {
		s.gap = DefaultGap
	}

	n := len(cfg.Items)
	if s.itemsPerSlide > 0 {
		n -= n % s.itemsPerSlide
	}
	s.items = append([]Item(nil), cfg.Items[:n]...)
	return s
}

// Items returns the carousel's items. The slice must not be modified.
func (s *State) Items() []Item { return s.items }

// Len returns the number of items.
func (s *State) Len() int { return len(s.items) }

// Index returns the raw anchor index as last set.
func (s *State) Index() int { return s.index }

// ItemsPerSlide returns the slide size, or 0 in free mode.
func (s *State) ItemsPerSlide() int { return s.itemsPerSlide }

// FixedSlides reports whether the carousel pages by whole slides.
func (s *State) FixedSlides() bool { return s.itemsPerSlide > 0 }

// Gap returns the spacing between items in cells.
func (s *State) Gap() int { return s.gap }

// Templates returns the accessibility templates with defaults applied.
func (s *State) Templates() Templates { return s.templates }

// Measured reports whether at least one measurement pass has completed.
func (s *State) Measured() bool { return s.measured }

// Geometry returns the current snapshot.
func (s *State) Geometry() Geometry { return s.geom }

// ItemWidth returns the width items should be laid out at.
func (s *State) ItemWidth() ItemWidth {
	if s.itemsPerSlide == 0 {
		return AutoWidth
	}
	return ItemWidth{ItemsPerSlide: s.itemsPerSlide, Gap: s.gap}
}

// SetIndex sets the anchor index directly, e.g. when restoring saved state.
// Any non-negative value is accepted; it is normalized when deriving.
func (s *State) SetIndex(i int) {
	s.index = max(i, 0)
}

// Measure replaces the geometry snapshot as a whole.
func (s *State) Measure(g Geometry) error {
	if len(g.Extents) != len(s.items) {
		return fmt.Errorf("measure %d extents for %d items: %w", len(g.Extents), len(s.items), ErrGeometryMismatch)
	}
	g.Extents = append([]Extent(nil), g.Extents...)
	s.geom = g
	s.measured = true
	return nil
}

// anchor is the effective index clamped to the collection.
func (s *State) anchor() int {
	n := len(s.items)
	if n == 0 {
		return 0
	}
	return EffectiveIndex(clamp(s.index, 0, n-1), s.itemsPerSlide)
}

// Move pages one step in dir. It reports false, and leaves the state alone,
// when dir is invalid or the carousel is already at that end.
func (s *State) Move(dir Direction, origin any) (Event, bool) {
	if !dir.Valid() {
		return Event{}, false
	}
	from := s.anchor()
	to := NextIndex(from, dir, len(s.items), s.geom, s.itemsPerSlide)
	if to == from {
		return Event{}, false
	}

	ctl := ControlNext
	if dir == Prev {
		ctl = ControlPrev
	}
	ev := Event{Control: ctl, Origin: origin, From: s.index, To: to}
	s.index = to
	return ev, true
}

// JumpTo moves to the first item of slide. It reports false in free mode,
// for slides out of range, and when slide is already current.
func (s *State) JumpTo(slide int, origin any) (Event, bool) {
	if s.itemsPerSlide == 0 {
		return Event{}, false
	}
	if !ValidSlide(slide, ceilDiv(len(s.items), s.itemsPerSlide)) {
		return Event{}, false
	}
	to := IndexForSlide(slide, s.itemsPerSlide)
	if to == s.anchor() {
		return Event{}, false
	}
	ev := Event{Control: ControlSlide, Origin: origin, From: s.index, To: to}
	s.index = to
	return ev, true
}

// VisibleIndexes lists the items fully visible at the current position.
func (s *State) VisibleIndexes() []int {
	if !s.measured || len(s.items) == 0 {
		return nil
	}
	return VisibleIndexes(s.geom, Offset(s.geom, s.anchor()))
}
