package carousel

// Presentation is everything a renderer needs for one frame. It is derived
// from State on demand and never stored.
type Presentation struct {
	// Index is the effective anchor index the offset is computed from.
	Index     int
	Offset    int
	MaxOffset int

	PrevDisabled bool
	NextDisabled bool
	BothDisabled bool

	// Slide fields are only meaningful when HasSlides is set.
	HasSlides   bool
	Slide       int
	TotalSlides int
	SlideLabels []string

	ItemWidth ItemWidth
	Status    string
	PrevLabel string
	NextLabel string

	// Hidden has one entry per item; true means not fully visible.
	Hidden   []bool
	Measured bool
}

// Derive computes the presentation for the current state. It does not
// modify s, so repeated calls return equal results.
//
// An empty carousel and a carousel that has not been measured yet both sit
// at offset 0 with both controls disabled and nothing hidden.
func (s *State) Derive() Presentation {
	n := len(s.items)
	p := Presentation{
		Index:     s.anchor(),
		ItemWidth: s.ItemWidth(),
		PrevLabel: s.templates.Prev,
		NextLabel: s.templates.Next,
		Measured:  s.measured,
	}

	if s.itemsPerSlide > 0 && n > 0 {
		m := SlideMetrics(n, p.Index, s.itemsPerSlide, s.gap)
		p.HasSlides = true
		p.Slide = m.Slide
		p.TotalSlides = m.TotalSlides
		p.Status = FormatStatus(s.templates.Status, m.Slide, m.TotalSlides)
		p.SlideLabels = make([]string, m.TotalSlides)
		for i := range p.SlideLabels {
			tmpl := s.templates.Other
			if i == m.Slide {
				tmpl = s.templates.Current
			}
			p.SlideLabels[i] = FormatSlideLabel(tmpl, i)
		}
	}

	if n == 0 || !s.measured {
		p.PrevDisabled = true
		p.NextDisabled = true
		p.BothDisabled = true
		if n > 0 {
			p.Hidden = make([]bool, n)
		}
		return p
	}

	p.MaxOffset = MaxOffset(s.geom)
	p.Offset = Offset(s.geom, p.Index)
	p.PrevDisabled = p.Offset == 0
	p.NextDisabled = p.Offset == p.MaxOffset
	p.BothDisabled = p.PrevDisabled && p.NextDisabled

	p.Hidden = make([]bool, n)
	for i, e := range s.geom.Extents {
		p.Hidden[i] = !IsVisible(e, p.Offset, s.geom.SlideWidth)
	}
	return p
}
