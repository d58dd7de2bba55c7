package app

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/Akashdeep-Patra/carousel/internal/carousel"
	"github.com/Akashdeep-Patra/carousel/internal/common"
	"github.com/Akashdeep-Patra/carousel/internal/config"
	"github.com/Akashdeep-Patra/carousel/internal/deck"
	"github.com/Akashdeep-Patra/carousel/internal/ui"
	"github.com/Akashdeep-Patra/carousel/internal/ui/components"
	"github.com/Akashdeep-Patra/carousel/internal/ui/views"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

const (
	headerRows = 1
	footerRows = 1

	jumpDialogTag = "jump"
	// maxListedSlides caps the slide list shown in the jump dialog.
	maxListedSlides = 6
)

// PositionStore remembers the carousel index per deck.
type PositionStore interface {
	Position(deck string) (index int, ok bool, err error)
	SavePosition(deck string, index int)
}

// Model is the top-level Bubbletea model. It owns the carousel view and
// everything around it: header, status bar, help overlay and dialog.
type Model struct {
	cfg      *config.Config
	styles   ui.Styles
	keys     KeyMap
	width    int
	height   int
	deck     *deck.Deck
	store    PositionStore
	carousel *views.CarouselView

	showHelp  bool
	statusMsg string
	statusErr bool
	statusExp time.Time
	dialog    *components.Dialog

	// visible is the last reported set of fully visible items.
	visible     []int
	unsubscribe func()
}

// New creates a new application model showing d. store may be nil, in
// which case positions are not remembered.
func New(cfg *config.Config, d *deck.Deck, store PositionStore) *Model {
	m := &Model{
		cfg:    cfg,
		styles: ui.NewStyles(ui.ThemeByName(cfg.Theme)),
		keys:   DefaultKeyMap(),
		deck:   d,
		store:  store,
	}

	cc := cfg.Carousel(d.Items)
	if idx, ok := m.restoredIndex(); ok {
		cc.Index = idx
	}
	m.carousel = views.NewCarouselView(cc, m.styles, cfg.FrameInterval)
	m.unsubscribe = m.carousel.Subscribe(m.onNavigate)
	return m
}

// restoredIndex looks up the saved position for the current deck.
func (m *Model) restoredIndex() (int, bool) {
	if m.store == nil || m.deck.Path == "" {
		return 0, false
	}
	idx, ok, err := m.store.Position(m.deck.Path)
	if err != nil {
		log.Printf("app: restore position for %s: %v", m.deck.Path, err)
		return 0, false
	}
	return idx, ok
}

// onNavigate runs synchronously for every navigation event.
func (m *Model) onNavigate(ev carousel.Event) {
	if m.store != nil && m.deck.Path != "" {
		m.store.SavePosition(m.deck.Path, ev.To)
	}
}

// Carousel returns the carousel view.
func (m *Model) Carousel() *views.CarouselView { return m.carousel }

// Init schedules the carousel's first layout pass.
func (m *Model) Init() tea.Cmd {
	return m.carousel.Init()
}

// Update processes messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Dialog has exclusive input when visible.
	if m.dialog != nil && m.dialog.Visible() {
		if _, ok := msg.(tea.KeyMsg); ok {
			d, cmd := m.dialog.Update(msg)
			m.dialog = &d
			return m, cmd
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, m.carousel.SetSize(m.width, m.contentHeight())

	case tea.MouseMsg:
		if m.showHelp {
			return m, nil
		}
		msg.Y -= headerRows
		_, cmd := m.carousel.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.teardown()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			return m, nil
		case key.Matches(msg, m.keys.Back):
			m.showHelp = false
			return m, nil
		case m.showHelp:
			return m, nil
		case key.Matches(msg, m.keys.Reload):
			if m.deck.Path == "" {
				return m, common.CmdInfo("No deck file to reload")
			}
			return m, common.CmdLoadDeck(m.deck.Path)
		case key.Matches(msg, m.keys.Jump):
			return m, m.openJumpDialog()
		}
		_, cmd := m.carousel.Update(msg)
		return m, cmd

	case components.DialogResult:
		m.dialog = nil
		if msg.Tag == jumpDialogTag && msg.Confirmed {
			return m, m.jump(msg)
		}
		return m, nil

	case common.DeckChangedMsg:
		log.Printf("app: deck changed: %s", msg.Path)
		return m, common.CmdLoadDeck(msg.Path)

	case common.DeckLoadedMsg:
		return m, m.replaceDeck(msg.Deck)

	case common.UpdateMsg:
		m.visible = msg.Event.VisibleIndexes
		log.Printf("app: visible items %v", m.visible)
		return m, nil

	case common.ErrMsg:
		m.statusMsg = msg.Err.Error()
		m.statusErr = true
		m.statusExp = time.Now().Add(5 * time.Second)
		return m, nil

	case common.InfoMsg:
		m.statusMsg = msg.Text
		m.statusErr = false
		m.statusExp = time.Now().Add(3 * time.Second)
		return m, nil
	}

	// Frames and anything else belong to the carousel.
	_, cmd := m.carousel.Update(msg)
	return m, cmd
}

// teardown cancels pending layout work and drops the event subscription.
func (m *Model) teardown() {
	m.carousel.Close()
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

// replaceDeck swaps in a reloaded deck. The current index carries over and
// is normalized against the new items.
func (m *Model) replaceDeck(d *deck.Deck) tea.Cmd {
	cc := m.cfg.Carousel(d.Items)
	sameDeck := d.Path == m.deck.Path
	m.deck = d
	if sameDeck {
		cc.Index = m.carousel.State().Index()
	} else if idx, ok := m.restoredIndex(); ok {
		cc.Index = idx
	}
	m.visible = nil
	log.Printf("app: loaded %s (%d items)", d.Path, len(d.Items))
	return tea.Batch(
		m.carousel.Reset(cc),
		common.CmdInfo(fmt.Sprintf("Loaded %s items", humanize.Comma(int64(m.carousel.State().Len())))),
	)
}

func (m *Model) openJumpDialog() tea.Cmd {
	p := m.carousel.Presentation()
	if !p.HasSlides {
		return common.CmdInfo("Slides need items_per_slide > 0")
	}
	d := components.NewInputDialog(m.styles, "Jump to slide", fmt.Sprintf("1-%d", p.TotalSlides), jumpDialogTag, 4)
	d.Message = p.Status + "\n\n" + slideList(p.SlideLabels)
	m.dialog = &d
	return nil
}

// slideList renders one label per slide, numbered the way the dialog
// expects them typed.
func slideList(labels []string) string {
	n := min(len(labels), maxListedSlides)
	lines := make([]string, 0, n+1)
	for i := 0; i < n; i++ {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, labels[i]))
	}
	if len(labels) > n {
		lines = append(lines, fmt.Sprintf("… %d more", len(labels)-n))
	}
	return strings.Join(lines, "\n")
}

// jump moves to the one-based slide typed into the dialog.
func (m *Model) jump(res components.DialogResult) tea.Cmd {
	n, err := strconv.Atoi(strings.TrimSpace(res.Value))
	if err != nil {
		return common.CmdErr(fmt.Errorf("invalid slide %q", res.Value))
	}
	total := m.carousel.Presentation().TotalSlides
	if !carousel.ValidSlide(n-1, total) {
		return common.CmdErr(fmt.Errorf("slide %d out of range 1-%d", n, total))
	}
	return m.carousel.JumpTo(n-1, res)
}

// View renders the entire UI. It does no I/O.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if m.showHelp {
		sections := components.GlobalHelpEntries(m.carousel.State().FixedSlides())
		return components.RenderHelp(m.styles, "Keyboard Shortcuts", sections, m.width, m.height)
	}

	header := m.renderHeader()
	content := lipgloss.NewStyle().Width(m.width).Height(m.contentHeight()).MaxHeight(m.contentHeight()).
		Render(m.carousel.View())

	barData := components.StatusBarData{
		Deck:   m.deck.Path,
		Status: m.carousel.Position(),
	}
	if m.statusMsg != "" && time.Now().Before(m.statusExp) {
		barData.Message = m.statusMsg
		barData.IsError = m.statusErr
	}
	statusBar := components.RenderStatusBar(m.styles, barData, m.width)

	screen := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	if m.dialog != nil && m.dialog.Visible() {
		screen = ui.PlaceCentre(m.width, m.height, m.dialog.View())
	}
	return screen
}

func (m *Model) renderHeader() string {
	title := m.deck.Title
	if title == "" {
		title = "carousel"
	}
	hint := m.styles.HelpBar.Render("?  help")
	left := m.styles.Header.Render(ui.Truncate(title, max(m.width-lipgloss.Width(hint)-2, 1)))
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(hint), 1)
	return ui.Truncate(left+strings.Repeat(" ", gap)+hint, m.width)
}

func (m *Model) contentHeight() int {
	return max(m.height-headerRows-footerRows, 1)
}
