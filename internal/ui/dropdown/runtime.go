package dropdown

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Runtime supplies the two scheduling primitives the controller relies on: a
// frame-aligned callback and a fixed-delay timer. Both deliver msg back
// through the Bubble Tea loop.
type Runtime interface {
	Frame(interval time.Duration, msg tea.Msg) tea.Cmd
	After(delay time.Duration, msg tea.Msg) tea.Cmd
}

// TickRuntime schedules with tea.Tick.
type TickRuntime struct{}

// Frame implements Runtime.
func (TickRuntime) Frame(interval time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg { return msg })
}

// After implements Runtime.
func (TickRuntime) After(delay time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg { return msg })
}
