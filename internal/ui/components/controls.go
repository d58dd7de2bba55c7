package components

import (
	"strings"

	"github.com/Akashdeep-Patra/carousel/internal/carousel"
	"github.com/Akashdeep-Patra/carousel/internal/ui"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/lipgloss"
)

// ControlsData carries what the controls bar shows.
type ControlsData struct {
	PrevLabel    string
	NextLabel    string
	PrevDisabled bool
	NextDisabled bool

	HasSlides   bool
	Slide       int
	TotalSlides int
}

// ControlZone maps an X range of the controls bar to a control for mouse
// clicking. Slide is only set for ControlSlide.
type ControlZone struct {
	Control carousel.Control
	Slide   int
	Start   int // inclusive X
	End     int // exclusive X
}

// controlsDisplayMode controls how the prev/next buttons are labelled.
type controlsDisplayMode int

const (
	controlsFull controlsDisplayMode = iota // "‹ Previous Slide"
	controlsIcon                            // " ‹ "
)

const (
	prevIcon   = "‹"
	nextIcon   = "›"
	minDotsGap = 2
)

func buttonLabels(d ControlsData, mode controlsDisplayMode) (prev, next string) {
	if mode == controlsFull {
		return prevIcon + " " + d.PrevLabel, d.NextLabel + " " + nextIcon
	}
	return " " + prevIcon + " ", " " + nextIcon + " "
}

// slidePaginator builds the dots indicator for the current slide.
func slidePaginator(styles ui.Styles, d ControlsData) paginator.Model {
	p := paginator.New()
	p.Type = paginator.Dots
	p.ActiveDot = styles.DotActive.Render(" ● ")
	p.InactiveDot = styles.DotInactive.Render(" ○ ")
	p.ArabicFormat = "%d/%d"
	p.TotalPages = d.TotalSlides
	p.Page = d.Slide
	return p
}

// RenderControls renders the prev/next buttons with the slide indicator
// between them, and returns the clickable zones. Disabled buttons get no
// zone. When the dots do not fit they fall back to "n/total", which has no
// per-slide zones.
func RenderControls(styles ui.Styles, d ControlsData, width int) (string, []ControlZone) {
	if width <= 0 {
		return "", nil
	}

	var dots string
	dotZones := false
	dotW := 0
	if d.HasSlides && d.TotalSlides > 0 {
		p := slidePaginator(styles, d)
		dots = p.View()
		dotW = lipgloss.Width(p.InactiveDot)
		dotZones = true
		if lipgloss.Width(dots) > width-2*(lipgloss.Width(" "+prevIcon+" ")+minDotsGap) {
			p.Type = paginator.Arabic
			dots = styles.Muted.Render(p.View())
			dotZones = false
		}
	}
	dotsW := lipgloss.Width(dots)

	mode := controlsFull
	prev, next := buttonLabels(d, mode)
	if lipgloss.Width(prev)+lipgloss.Width(next)+dotsW+2*minDotsGap > width {
		mode = controlsIcon
		prev, next = buttonLabels(d, mode)
	}

	prevStyle, nextStyle := styles.Button, styles.Button
	if d.PrevDisabled {
		prevStyle = styles.ButtonDisabled
	}
	if d.NextDisabled {
		nextStyle = styles.ButtonDisabled
	}
	prevW, nextW := lipgloss.Width(prev), lipgloss.Width(next)

	var zones []ControlZone
	if !d.PrevDisabled {
		zones = append(zones, ControlZone{Control: carousel.ControlPrev, Start: 0, End: prevW})
	}

	// Centre the dots in the whole bar, nudged right if they would overlap
	// the prev button.
	dotsStart := max((width-dotsW)/2, prevW+1)
	if dotZones {
		for i := 0; i < d.TotalSlides; i++ {
			start := dotsStart + i*dotW
			zones = append(zones, ControlZone{
				Control: carousel.ControlSlide,
				Slide:   i,
				Start:   start,
				End:     start + dotW,
			})
		}
	}

	nextStart := max(width-nextW, dotsStart+dotsW+1)
	if !d.NextDisabled {
		zones = append(zones, ControlZone{Control: carousel.ControlNext, Start: nextStart, End: nextStart + nextW})
	}

	var b strings.Builder
	b.Grow(width + 64)
	b.WriteString(prevStyle.Render(prev))
	b.WriteString(strings.Repeat(" ", dotsStart-prevW))
	b.WriteString(dots)
	b.WriteString(strings.Repeat(" ", nextStart-dotsStart-dotsW))
	b.WriteString(nextStyle.Render(next))

	return lipgloss.NewStyle().MaxWidth(width).Render(b.String()), zones
}

// ZoneAt returns the control under column x.
func ZoneAt(zones []ControlZone, x int) (ControlZone, bool) {
	for _, z := range zones {
		if x >= z.Start && x < z.End {
			return z, true
		}
	}
	return ControlZone{}, false
}
