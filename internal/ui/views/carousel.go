// Package views holds the Bubble Tea components rendered by the app.
package views

import (
	"fmt"
	"log"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/Akashdeep-Patra/carousel/internal/carousel"
	"github.com/Akashdeep-Patra/carousel/internal/common"
	"github.com/Akashdeep-Patra/carousel/internal/frame"
	"github.com/Akashdeep-Patra/carousel/internal/ui"
	"github.com/Akashdeep-Patra/carousel/internal/ui/components"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

const (
	// padX is the blank margin left and right of the track.
	padX = 1
	// chromeRows is the trackbar plus the controls bar.
	chromeRows = 2

	minCardWidth = 8
	// maxAutoContent caps a free-mode card's content width.
	maxAutoContent = 48
)

// CarouselView lays out the items of a carousel in a horizontal track and
// shows the window of it selected by the current index.
//
// Layout is never computed inline: size changes and navigation schedule a
// frame, and the frame measures every card and hands the snapshot to the
// state. Until the first frame lands the state is unmeasured and both
// controls stay disabled.
type CarouselView struct {
	state     *carousel.State
	listeners carousel.Listeners
	frames    *frame.Scheduler
	styles    ui.Styles
	keys      KeyMap
	cache     *blockCache

	width  int
	height int

	// trackWidth is the laid-out width of all items at the last measurement.
	trackWidth int
	// navigated is set by a move and cleared by the frame that lays it out.
	navigated bool
}

// NewCarouselView creates a view over a new carousel built from cfg. Frames
// are scheduled interval apart; zero selects frame.DefaultInterval.
func NewCarouselView(cfg carousel.Config, styles ui.Styles, interval time.Duration) *CarouselView {
	return &CarouselView{
		state:  carousel.New(cfg),
		frames: frame.New(interval),
		styles: styles,
		keys:   DefaultKeyMap(),
		cache:  newBlockCache(),
	}
}

// Init schedules the first layout pass.
func (v *CarouselView) Init() tea.Cmd { return v.frames.Schedule() }

// State exposes the carousel state.
func (v *CarouselView) State() *carousel.State { return v.state }

// Presentation derives the current presentation.
func (v *CarouselView) Presentation() carousel.Presentation { return v.state.Derive() }

// Subscribe registers fn for navigation events.
func (v *CarouselView) Subscribe(fn carousel.Listener) (unsubscribe func()) {
	return v.listeners.Subscribe(fn)
}

// SetSize resizes the view and schedules a layout pass if anything changed.
func (v *CarouselView) SetSize(w, h int) tea.Cmd {
	if w == v.width && h == v.height {
		return nil
	}
	v.width = w
	v.height = h
	return v.frames.Schedule()
}

// Reset replaces the carousel with one built from cfg, keeping subscribers.
func (v *CarouselView) Reset(cfg carousel.Config) tea.Cmd {
	v.state = carousel.New(cfg)
	v.cache.invalidate()
	v.trackWidth = 0
	v.navigated = false
	return v.frames.Schedule()
}

// Close cancels any pending layout pass. The view must not be used after.
func (v *CarouselView) Close() { v.frames.Cancel() }

// Update handles frames, keys and mouse input.
func (v *CarouselView) Update(msg tea.Msg) (*CarouselView, tea.Cmd) {
	switch msg := msg.(type) {
	case frame.Msg:
		if !v.frames.Accept(msg) {
			return v, nil
		}
		return v, v.recompute()

	case tea.KeyMsg:
		return v, v.handleKey(msg)

	case tea.MouseMsg:
		return v, v.handleMouse(msg)
	}
	return v, nil
}

// Move pages one step in dir. Disabled directions are ignored.
func (v *CarouselView) Move(dir carousel.Direction, origin any) tea.Cmd {
	p := v.state.Derive()
	if (dir == carousel.Prev && p.PrevDisabled) || (dir == carousel.Next && p.NextDisabled) {
		return nil
	}
	ev, ok := v.state.Move(dir, origin)
	if !ok {
		return nil
	}
	return v.navigatedTo(ev)
}

// JumpTo moves to the first item of the zero-based slide.
func (v *CarouselView) JumpTo(slide int, origin any) tea.Cmd {
	ev, ok := v.state.JumpTo(slide, origin)
	if !ok {
		return nil
	}
	return v.navigatedTo(ev)
}

func (v *CarouselView) navigatedTo(ev carousel.Event) tea.Cmd {
	log.Printf("carousel: %s %d -> %d", ev.Control, ev.From, ev.To)
	v.listeners.Emit(ev)
	v.navigated = true
	return v.frames.Schedule()
}

// recompute runs on an accepted frame: measure, then report what a
// navigation left visible.
func (v *CarouselView) recompute() tea.Cmd {
	if v.width <= 0 || v.height <= 0 {
		return nil
	}
	if err := v.measure(); err != nil {
		log.Printf("carousel: measure: %v", err)
		return common.CmdErr(err)
	}
	if !v.navigated {
		return nil
	}
	v.navigated = false
	ev := carousel.UpdateEvent{VisibleIndexes: v.state.VisibleIndexes()}
	return func() tea.Msg { return common.UpdateMsg{Event: ev} }
}

func (v *CarouselView) measure() error {
	cw := v.containerWidth()
	layout := carousel.NewTrackLayout(v.itemWidths(cw), v.state.Gap(), cw)
	v.trackWidth = layout.TrackWidth()
	return v.state.Measure(carousel.Snapshot(layout, v.state.Len()))
}

// itemWidths is the width of every card: an equal share of the container
// with fixed slides, the content's own width otherwise. Free-mode cards leave
// room for the gap so the next card always starts within one viewport.
func (v *CarouselView) itemWidths(cw int) []int {
	items := v.state.Items()
	widths := make([]int, len(items))
	if w := v.state.ItemWidth().Resolve(cw); w > 0 {
		for i := range widths {
			widths[i] = w
		}
		return widths
	}
	frameW := v.styles.Card.GetHorizontalFrameSize()
	limit := max(cw-v.state.Gap(), 1)
	for i, item := range items {
		w := min(naturalWidth(item), maxAutoContent) + frameW
		widths[i] = min(max(w, minCardWidth), limit)
	}
	return widths
}

// naturalWidth is the widest line of the card's content.
func naturalWidth(item carousel.Item) int {
	w := lipgloss.Width(item.Title)
	for _, line := range strings.Split(item.Body, "\n") {
		w = max(w, lipgloss.Width(line))
	}
	for _, line := range attrLines(item) {
		w = max(w, lipgloss.Width(line))
	}
	return w
}

func attrLines(item carousel.Item) []string {
	if len(item.Attrs) == 0 {
		return nil
	}
	lines := make([]string, 0, len(item.Attrs))
	for _, k := range slices.Sorted(maps.Keys(item.Attrs)) {
		lines = append(lines, k+": "+item.Attrs[k])
	}
	return lines
}

func (v *CarouselView) containerWidth() int { return max(v.width-2*padX, 1) }

func (v *CarouselView) trackHeight() int { return max(v.height-chromeRows, 1) }

// controlsRow is the row of the controls bar within the view.
func (v *CarouselView) controlsRow() int { return v.trackHeight() + 1 }

func (v *CarouselView) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, v.keys.Prev):
		return v.Move(carousel.Prev, msg)
	case key.Matches(msg, v.keys.Next):
		return v.Move(carousel.Next, msg)
	case key.Matches(msg, v.keys.First):
		return v.JumpTo(0, msg)
	case key.Matches(msg, v.keys.Last):
		return v.JumpTo(v.state.Derive().TotalSlides-1, msg)
	}
	if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		return v.JumpTo(int(s[0]-'1'), msg)
	}
	return nil
}

func (v *CarouselView) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
		return v.Move(carousel.Prev, msg)
	case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
		return v.Move(carousel.Next, msg)
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress || msg.Y != v.controlsRow() {
			return nil
		}
		_, zones := v.renderControls(v.state.Derive())
		z, ok := components.ZoneAt(zones, msg.X-padX)
		if !ok {
			return nil
		}
		switch z.Control {
		case carousel.ControlPrev:
			return v.Move(carousel.Prev, msg)
		case carousel.ControlNext:
			return v.Move(carousel.Next, msg)
		case carousel.ControlSlide:
			return v.JumpTo(z.Slide, msg)
		}
	}
	return nil
}

// Position describes where the carousel is, for the status bar. With fixed
// slides it is the accessibility status; otherwise the anchor item.
func (v *CarouselView) Position() string {
	p := v.state.Derive()
	if p.Status != "" {
		return p.Status
	}
	if v.state.Len() == 0 {
		return "No items"
	}
	return fmt.Sprintf("Item %s of %s", humanize.Comma(int64(p.Index+1)), humanize.Comma(int64(v.state.Len())))
}

// View renders the track window, the trackbar and the controls.
func (v *CarouselView) View() string {
	if v.width <= 0 || v.height <= 0 {
		return ""
	}
	p := v.state.Derive()
	cw, th := v.containerWidth(), v.trackHeight()

	var track string
	switch {
	case v.state.Len() == 0:
		track = ui.PlaceCentre(cw, th, v.styles.Muted.Render("No items"))
	case !p.Measured:
		track = ui.Spacer(cw, th)
	default:
		track = v.renderTrack(p, cw, th)
	}

	bar := components.RenderTrackbar(v.styles, cw, v.trackWidth, cw, p.Offset)
	controls, _ := v.renderControls(p)

	body := lipgloss.JoinVertical(lipgloss.Left, track, bar, controls)
	return lipgloss.NewStyle().Padding(0, padX).Render(body)
}

func (v *CarouselView) renderControls(p carousel.Presentation) (string, []components.ControlZone) {
	return components.RenderControls(v.styles, components.ControlsData{
		PrevLabel:    p.PrevLabel,
		NextLabel:    p.NextLabel,
		PrevDisabled: p.PrevDisabled,
		NextDisabled: p.NextDisabled,
		HasSlides:    p.HasSlides,
		Slide:        p.Slide,
		TotalSlides:  p.TotalSlides,
	}, v.containerWidth())
}

// renderTrack draws the cards that intersect the window [offset, offset+cw)
// and cuts the window out of them.
func (v *CarouselView) renderTrack(p carousel.Presentation, cw, th int) string {
	g := v.state.Geometry()
	lo, hi := p.Offset, p.Offset+cw

	var parts []string
	start, prevRight := -1, 0
	for i, e := range g.Extents {
		if e.Right <= lo || e.Left >= hi || e.Width() == 0 {
			continue
		}
		if start < 0 {
			start = e.Left
		} else if gap := e.Left - prevRight; gap > 0 {
			parts = append(parts, ui.Spacer(gap, th))
		}
		parts = append(parts, v.card(i, e.Width(), th, p.Hidden[i]))
		prevRight = e.Right
	}
	if start < 0 {
		return ui.Spacer(cw, th)
	}

	joined := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	return ui.Window(joined, lo-start, cw)
}

// card renders item i as a bordered box exactly width by height cells.
// Cards not fully in view are drawn dimmed.
func (v *CarouselView) card(i, width, height int, hidden bool) string {
	return v.cache.get(blockKey{index: i, width: width, height: height, hidden: hidden}, func() string {
		style := v.styles.Card
		if hidden {
			style = v.styles.CardHidden
		}
		inner := max(width-style.GetHorizontalFrameSize(), 1)
		item := v.state.Items()[i]

		var b strings.Builder
		b.WriteString(v.styles.CardTitle.Render(ui.Truncate(item.Title, inner)))
		if item.Body != "" {
			b.WriteString("\n\n")
			b.WriteString(v.styles.CardBody.Render(item.Body))
		}
		if attrs := attrLines(item); len(attrs) > 0 {
			b.WriteString("\n\n")
			for j, line := range attrs {
				if j > 0 {
					b.WriteByte('\n')
				}
				b.WriteString(v.styles.CardAttr.Render(ui.Truncate(line, inner)))
			}
		}

		return style.
			Width(max(width-style.GetHorizontalBorderSize(), 1)).
			Height(max(height-style.GetVerticalBorderSize(), 1)).
			MaxWidth(width).
			MaxHeight(height).
			Render(b.String())
	})
}
