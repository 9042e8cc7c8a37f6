package model

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the table key bindings.
type KeyMap struct {
	Shuffle  key.Binding
	Draw     key.Binding
	AddCard  key.Binding
	Evaluate key.Binding
	Reset    key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Shuffle:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "shuffle")),
		Draw:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "draw")),
		AddCard:  key.NewBinding(key.WithKeys("a", "enter"), key.WithHelp("a", "add to hand")),
		Evaluate: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "evaluate")),
		Reset:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "new deck")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

func (k KeyMap) bindings() []key.Binding {
	return []key.Binding{k.Shuffle, k.Draw, k.AddCard, k.Evaluate, k.Reset, k.Quit}
}
