package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the dialog's key bindings.
type keyMap struct {
	Start      key.Binding
	Cancel     key.Binding
	NextField  key.Binding
	CycleRoot  key.Binding
	ToggleCase key.Binding
	PickDir    key.Binding
	Up         key.Binding
	Down       key.Binding
	Open       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "search/open"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "stop"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "next field"),
		),
		CycleRoot: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "cycle root"),
		),
		ToggleCase: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "match case"),
		),
		PickDir: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "pick folder"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑/↓", "history/results"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Cancel, k.NextField, k.CycleRoot, k.ToggleCase, k.PickDir, k.Up, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Cancel, k.NextField},
		{k.CycleRoot, k.ToggleCase, k.PickDir},
		{k.Up, k.Quit},
	}
}
