package views

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the carousel navigation bindings.
type KeyMap struct {
	Prev  key.Binding
	Next  key.Binding
	First key.Binding
	Last  key.Binding
}

// DefaultKeyMap returns the default navigation bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Prev:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("h/←", "previous")),
		Next:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("l/→", "next")),
		First: key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first slide")),
		Last:  key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last slide")),
	}
}
