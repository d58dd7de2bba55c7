package components

import (
	"strings"

	"github.com/Akashdeep-Patra/carousel/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// HelpEntry is a single key-description pair for the help overlay.
type HelpEntry struct {
	Key  string
	Desc string
}

// helpOrder is the order sections appear in.
var helpOrder = []string{"Navigation", "Slides", "Mouse", "General"}

// RenderHelp renders a full-screen help overlay.
func RenderHelp(styles ui.Styles, title string, sections map[string][]HelpEntry, width, height int) string {
	t := styles.Theme

	titleStr := lipgloss.NewStyle().
		Foreground(t.Primary).Bold(true).
		Align(lipgloss.Center).
		Width(max(width-4, 1)).
		Render(title)

	var body strings.Builder
	body.WriteString(titleStr + "\n\n")

	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Underline(true)
	keyStyle := styles.KeyBind.Width(16).Align(lipgloss.Right)
	descStyle := styles.KeyDesc

	for _, section := range helpOrder {
		entries, ok := sections[section]
		if !ok || len(entries) == 0 {
			continue
		}
		body.WriteString(sectionStyle.Render(section) + "\n")
		for _, e := range entries {
			body.WriteString("  " + keyStyle.Render(e.Key) + "  " + descStyle.Render(e.Desc) + "\n")
		}
		body.WriteString("\n")
	}

	overlay := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(t.Primary).
		Padding(1, 3).
		Width(min(70, max(width-4, 1))).
		MaxHeight(max(height-2, 1)).
		Render(body.String())

	return ui.PlaceCentre(width, height, overlay)
}

// GlobalHelpEntries returns the help entries for global keybindings.
// Slide entries are only listed when the carousel pages by whole slides.
func GlobalHelpEntries(fixedSlides bool) map[string][]HelpEntry {
	sections := map[string][]HelpEntry{
		"Navigation": {
			{Key: "h / ←", Desc: "Previous"},
			{Key: "l / →", Desc: "Next"},
		},
		"Mouse": {
			{Key: "click ‹ / ›", Desc: "Previous / next"},
			{Key: "wheel", Desc: "Previous / next"},
		},
		"General": {
			{Key: "r", Desc: "Reload deck"},
			{Key: "?", Desc: "Toggle this help"},
			{Key: "esc", Desc: "Close help / dialog"},
			{Key: "q / ctrl+c", Desc: "Quit"},
		},
	}
	if fixedSlides {
		sections["Slides"] = []HelpEntry{
			{Key: "g / Home", Desc: "First slide"},
			{Key: "G / End", Desc: "Last slide"},
			{Key: "1-9", Desc: "Go to slide"},
			{Key: ":", Desc: "Jump to slide…"},
		}
		sections["Mouse"] = append(sections["Mouse"], HelpEntry{Key: "click ●", Desc: "Go to slide"})
	}
	return sections
}
