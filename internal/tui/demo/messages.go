package demo

import tea "github.com/charmbracelet/bubbletea"

// ActionMsg is emitted when a menu item is selected.
type ActionMsg struct {
	Menu   string
	Action string
}

// actionDoneMsg marks the end of a simulated action.
type actionDoneMsg struct {
	Action string
}

func emit(menu, action string) func() tea.Cmd {
	return func() tea.Cmd {
		return func() tea.Msg { return ActionMsg{Menu: menu, Action: action} }
	}
}
