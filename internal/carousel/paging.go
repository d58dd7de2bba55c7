package carousel

import (
	"strconv"
	"strings"
)

// EffectiveIndex normalizes index to the first item of its slide when
// itemsPerSlide is set. In free mode every index is a valid anchor.
func EffectiveIndex(index, itemsPerSlide int) int {
	if itemsPerSlide > 0 {
		return index - index%itemsPerSlide
	}
	return index
}

// ItemWidth is the width each item takes in fixed-slide mode: an equal share
// of the track minus that item's share of the gaps between items. In free mode
// it is Auto and items keep their natural width.
type ItemWidth struct {
	Auto          bool
	ItemsPerSlide int
	Gap           int
}

// AutoWidth is the free-mode item width.
var AutoWidth = ItemWidth{Auto: true}

// Percent is the share of the track one item takes, before gaps.
func (w ItemWidth) Percent() float64 {
	if w.Auto || w.ItemsPerSlide <= 0 {
		return 0
	}
	return 100 / float64(w.ItemsPerSlide)
}

// GapShare is the number of cells subtracted from each item so that
// ItemsPerSlide items and their gaps fill the track exactly.
func (w ItemWidth) GapShare() float64 {
	if w.Auto || w.ItemsPerSlide <= 0 {
		return 0
	}
	return float64((w.ItemsPerSlide-1)*w.Gap) / float64(w.ItemsPerSlide)
}

// String renders the width as a calc() expression, or "auto".
func (w ItemWidth) String() string {
	if w.Auto || w.ItemsPerSlide <= 0 {
		return "auto"
	}
	return "calc(" + formatNumber(w.Percent()) + "% - " + formatNumber(w.GapShare()) + "px)"
}

// Resolve converts the width into whole cells for a track trackWidth cells
// wide. Auto widths resolve to 0, meaning "use the content's own width".
// Fixed widths never resolve below one cell.
func (w ItemWidth) Resolve(trackWidth int) int {
	if w.Auto || w.ItemsPerSlide <= 0 {
		return 0
	}
	cells := (trackWidth - (w.ItemsPerSlide-1)*w.Gap) / w.ItemsPerSlide
	return max(cells, 1)
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Metrics is the fixed-slide bookkeeping used for rendering and status text.
type Metrics struct {
	ItemWidth   ItemWidth
	Slide       int // 0-based
	TotalSlides int
}

// SlideMetrics computes slide count, current slide and item width for a
// collection of n items anchored at index. It must only be called in
// fixed-slide mode (itemsPerSlide > 0).
func SlideMetrics(n, index, itemsPerSlide, gap int) Metrics {
	eff := EffectiveIndex(index, itemsPerSlide)
	return Metrics{
		ItemWidth:   ItemWidth{ItemsPerSlide: itemsPerSlide, Gap: gap},
		Slide:       ceilDiv(eff, itemsPerSlide),
		TotalSlides: ceilDiv(n, itemsPerSlide),
	}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// Template placeholders understood by the accessibility strings.
const (
	PlaceholderCurrentSlide = "{currentSlide}"
	PlaceholderTotalSlides  = "{totalSlides}"
	PlaceholderSlide        = "{slide}"
)

// FormatStatus fills a status template. slide is 0-based and shown 1-based.
func FormatStatus(template string, slide, totalSlides int) string {
	return strings.NewReplacer(
		PlaceholderCurrentSlide, strconv.Itoa(slide+1),
		PlaceholderTotalSlides, strconv.Itoa(totalSlides),
	).Replace(template)
}

// FormatSlideLabel fills a per-indicator label template. Both {slide} and
// {currentSlide} resolve to the 1-based number of the given slide.
func FormatSlideLabel(template string, slide int) string {
	n := strconv.Itoa(slide + 1)
	return strings.NewReplacer(
		PlaceholderSlide, n,
		PlaceholderCurrentSlide, n,
	).Replace(template)
}
