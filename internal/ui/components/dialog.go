package components

import (
	"github.com/Akashdeep-Patra/carousel/internal/ui"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// DialogResult is sent when the dialog is dismissed.
type DialogResult struct {
	Confirmed bool
	Value     string
	Tag       string // arbitrary tag to identify which dialog this was
}

// Dialog is a modal single-line input dialog.
type Dialog struct {
	Title   string
	Message string
	Tag     string
	input   textinput.Model
	styles  ui.Styles
	visible bool
}

// NewInputDialog creates a text input dialog. A non-zero limit caps the
// number of characters accepted.
func NewInputDialog(styles ui.Styles, title, placeholder, tag string, limit int) Dialog {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	ti.CharLimit = 200
	if limit > 0 {
		ti.CharLimit = limit
	}
	ti.Width = 40
	return Dialog{
		Title:   title,
		Tag:     tag,
		input:   ti,
		styles:  styles,
		visible: true,
	}
}

// Visible returns whether the dialog is showing.
func (d Dialog) Visible() bool { return d.visible }

// Update handles key events for the dialog.
func (d Dialog) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if !d.visible {
		return d, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			d.visible = false
			tag := d.Tag
			return d, func() tea.Msg { return DialogResult{Tag: tag} }

		case "enter":
			d.visible = false
			tag, value := d.Tag, d.input.Value()
			return d, func() tea.Msg {
				return DialogResult{Confirmed: true, Value: value, Tag: tag}
			}
		}
	}

	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return d, cmd
}

// View renders the dialog.
func (d Dialog) View() string {
	if !d.visible {
		return ""
	}
	content := d.styles.DialogTitle.Render(d.Title)
	if d.Message != "" {
		content += "\n" + d.styles.Muted.Render(d.Message)
	}
	content += "\n\n" + d.input.View()

	return d.styles.Dialog.Render(content)
}
