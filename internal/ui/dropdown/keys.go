package dropdown

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keys the trigger and the open panel respond to.
type KeyMap struct {
	Next     key.Binding
	Prev     key.Binding
	First    key.Binding
	Last     key.Binding
	Activate key.Binding
	Close    key.Binding
	Tab      key.Binding
	Open     key.Binding
}

// DefaultKeyMap returns the standard menu bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("down", "right"),
			key.WithHelp("↓/→", "next item"),
		),
		Prev: key.NewBinding(
			key.WithKeys("up", "left"),
			key.WithHelp("↑/←", "previous item"),
		),
		First: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "first item"),
		),
		Last: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "last item"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "leave menu"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter", " ", "down"),
			key.WithHelp("enter/space", "open menu"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Activate, k.Close}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.First, k.Last},
		{k.Activate, k.Close, k.Tab, k.Open},
	}
}
