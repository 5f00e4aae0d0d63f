package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Start key.Binding
	Stop  key.Binding
	Clear key.Binding
	Help  key.Binding
	Quit  key.Binding
}

var DefaultKeyMap = KeyMap{
	Start: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start")),
	Stop:  key.NewBinding(key.WithKeys("S"), key.WithHelp("S", "stop")),
	Clear: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),
	Help:  key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Stop, k.Clear, k.Quit, k.Help}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Stop, k.Clear},
		{k.Quit, k.Help},
	}
}
