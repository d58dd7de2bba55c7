// Package common holds the messages shared between the app model and the
// carousel view.
package common

import (
	"github.com/Akashdeep-Patra/carousel/internal/carousel"
	"github.com/Akashdeep-Patra/carousel/internal/deck"
	tea "github.com/charmbracelet/bubbletea"
)

// ── Custom messages ─────────────────────────────────────────────────────────

// ErrMsg carries an error to be displayed.
type ErrMsg struct{ Err error }

// InfoMsg carries an informational message.
type InfoMsg struct{ Text string }

// DeckChangedMsg is sent by the file watcher when the deck file changes on disk.
type DeckChangedMsg struct{ Path string }

// DeckLoadedMsg carries a freshly parsed deck.
type DeckLoadedMsg struct{ Deck *deck.Deck }

// UpdateMsg reports the items left fully visible after a navigation has
// been laid out.
type UpdateMsg struct{ Event carousel.UpdateEvent }

// CmdErr creates a tea.Cmd that sends an ErrMsg.
func CmdErr(err error) tea.Cmd {
	return func() tea.Msg { return ErrMsg{Err: err} }
}

// CmdInfo creates a tea.Cmd that sends an InfoMsg.
func CmdInfo(text string) tea.Cmd {
	return func() tea.Msg { return InfoMsg{Text: text} }
}

// CmdLoadDeck parses the deck at path in the background.
func CmdLoadDeck(path string) tea.Cmd {
	return func() tea.Msg {
		d, err := deck.Load(path)
		if err != nil {
			return ErrMsg{Err: err}
		}
		return DeckLoadedMsg{Deck: d}
	}
}
