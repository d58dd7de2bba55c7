package components

import (
	"path/filepath"
	"strings"

	"github.com/Akashdeep-Patra/carousel/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// StatusBarData carries the info displayed in the bottom status bar.
type StatusBarData struct {
	Deck    string // deck file path, may be empty
	Status  string // position text, e.g. "Showing Slide 1 of 3 - Carousel"
	Message string // transient info/error message
	IsError bool
}

// RenderStatusBar renders the bottom status bar with sections separated by
// dim vertical bars.
//
// Wide (>= 60):   deck.yaml  │  Showing Slide 1 of 3 - Carousel      message
// Narrow (< 60):  Showing Slide 1 of 3 - Carousel
func RenderStatusBar(styles ui.Styles, data StatusBarData, width int) string {
	t := styles.Theme

	sepStyle := lipgloss.NewStyle().Foreground(t.Border).Faint(true)
	sep := sepStyle.Render(" │ ")

	// ── Left sections ────────────────────────────────────────────

	var sections []string
	if width >= 60 && data.Deck != "" {
		deckStyle := lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
		sections = append(sections, deckStyle.Render(filepath.Base(data.Deck)))
	}

	if data.Status != "" {
		sections = append(sections, lipgloss.NewStyle().Foreground(t.Text).Render(data.Status))
	}

	left := strings.Join(sections, sep)

	// ── Right section ────────────────────────────────────────────

	var right string
	if data.Message != "" {
		fg := t.Info
		if data.IsError {
			fg = t.Error
		}
		right = lipgloss.NewStyle().Foreground(fg).Render(data.Message) + " "
	}

	// ── Assemble ─────────────────────────────────────────────────

	inner := width - styles.StatusBar.GetHorizontalFrameSize()
	if lipgloss.Width(left) > inner {
		left = ui.Truncate(left, inner)
	}
	leftW := lipgloss.Width(left)
	rightW := lipgloss.Width(right)
	gap := inner - leftW - rightW
	if gap < 0 {
		right = "" // drop right side if no room
		gap = max(inner-leftW, 0)
	}

	content := left + strings.Repeat(" ", gap) + right

	return styles.StatusBar.Width(width).MaxWidth(width).Render(content)
}
