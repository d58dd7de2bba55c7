package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the global keybindings. Carousel navigation keys live with
// the carousel view.
type KeyMap struct {
	Quit   key.Binding
	Help   key.Binding
	Reload key.Binding
	Jump   key.Binding
	Back   key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Reload: key.NewBinding(key.WithKeys("r", "ctrl+r"), key.WithHelp("r", "reload deck")),
		Jump:   key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "jump to slide")),
		Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}
