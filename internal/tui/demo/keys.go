package demo

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/alexisbeaulieu97/tuikit/internal/ui/dropdown"
)

type keyMap struct {
	Quit        key.Binding
	NextTrigger key.Binding
	PrevTrigger key.Binding
	Reload      key.Binding
	Help        key.Binding
	Menu        dropdown.KeyMap
}

func newKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		NextTrigger: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next menu"),
		),
		PrevTrigger: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous menu"),
		),
		Reload: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reload config"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Menu: dropdown.DefaultKeyMap(),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Menu.Open, k.NextTrigger, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return append(k.Menu.FullHelp(), []key.Binding{k.NextTrigger, k.PrevTrigger, k.Reload, k.Quit})
}
