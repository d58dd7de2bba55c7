package carousel

// Direction is a paging direction: Prev (-1) or Next (+1).
type Direction int

const (
	Prev Direction = -1
	Next Direction = 1
)

// Valid reports whether d is one of Prev or Next.
func (d Direction) Valid() bool { return d == Prev || d == Next }

func (d Direction) String() string {
	switch d {
	case Prev:
		return "prev"
	case Next:
		return "next"
	default:
		return "invalid"
	}
}

// NextIndex computes the anchor index one press of dir away from current.
//
// In fixed-slide mode (itemsPerSlide > 0) it moves exactly one slide and
// clamps to [0, n-itemsPerSlide]; n is the collection size. In free mode it
// walks item by item from current while the candidate's left edge stays
// within one viewport of the current offset, using g for the extents.
//
// At either end the result equals current; callers treat that as a no-op.
// dir must be valid and, in free mode, g must come from a completed
// measurement of all n items.
func NextIndex(current int, dir Direction, n int, g Geometry, itemsPerSlide int) int {
	if n == 0 {
		return current
	}
	current = clamp(current, 0, n-1)

	if itemsPerSlide > 0 {
		next := EffectiveIndex(current, itemsPerSlide) + itemsPerSlide*int(dir)
		return clamp(next, 0, max(n-itemsPerSlide, 0))
	}

	if len(g.Extents) != n {
		return current
	}

	// The pivot is where the viewport sits now, not where the candidate is.
	offset := Offset(g, current)
	next := current
	for {
		cand := next + int(dir)
		if cand < 0 || cand >= n {
			break
		}
		if abs(g.Extents[cand].Left-offset) > g.SlideWidth {
			break
		}
		next = cand
	}
	return next
}

// IndexForSlide returns the first item index of slide. The caller must have
// checked the slide with ValidSlide.
func IndexForSlide(slide, itemsPerSlide int) int {
	return slide * itemsPerSlide
}

// ValidSlide reports whether slide addresses one of totalSlides slides.
func ValidSlide(slide, totalSlides int) bool {
	return slide >= 0 && slide < totalSlides
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
