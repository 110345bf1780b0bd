package demo

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/tuikit/internal/ui/geom"
)

// actionDuration is how long a simulated action keeps the spinner running.
const actionDuration = 600 * time.Millisecond

// Update handles Bubble Tea messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.layout()
		cmds = append(cmds, m.broadcast(msg)...)

	case tea.KeyMsg:
		m.layout()
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.layout()
		var mouseCmds []tea.Cmd
		m, mouseCmds = m.handleMouse(msg)
		cmds = append(cmds, mouseCmds...)

	case ActionMsg:
		var cmd tea.Cmd
		m, cmd = m.handleAction(msg)
		cmds = append(cmds, cmd)

	case actionDoneMsg:
		if m.running == msg.Action {
			m.running = ""
			m.status = "done: " + msg.Action
		}

	case spinner.TickMsg:
		if m.running != "" {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	default:
		cmds = append(cmds, m.broadcast(msg)...)
	}

	m.layout()
	return m, tea.Batch(cmds...)
}

// broadcast hands msg to every controller. Each one ignores messages that
// belong to another instance.
func (m Model) broadcast(msg tea.Msg) []tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.menus))
	for _, entry := range m.menus {
		cmd, _ := entry.ctrl.Update(msg)
		cmds = append(cmds, cmd)
	}
	return cmds
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	var cmds []tea.Cmd
	for _, entry := range m.menus {
		cmd, handled := entry.ctrl.Update(msg)
		cmds = append(cmds, cmd)
		if handled {
			m.layout()
			return m, tea.Batch(cmds...)
		}
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.NextTrigger):
		m.focus = (m.focus + 1) % len(m.menus)
	case key.Matches(msg, m.keys.PrevTrigger):
		m.focus = (m.focus - 1 + len(m.menus)) % len(m.menus)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Reload):
		var cmd tea.Cmd
		m, cmd = m.reloadConfig()
		cmds = append(cmds, cmd)
	default:
		if cmd, handled := m.menus[m.focus].ctrl.TriggerProps().OnKey(msg); handled {
			cmds = append(cmds, cmd)
		}
	}

	m.layout()
	return m, tea.Batch(cmds...)
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, []tea.Cmd) {
	cmds := m.broadcast(msg)
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, cmds
	}

	for i, entry := range m.menus {
		if bounds, ok := entry.ref.Bounds(); ok && bounds.Contains(msg.X, msg.Y) {
			m.focus = i
			return m, append(cmds, entry.ctrl.TriggerProps().OnClick())
		}
		if cmd, ok := m.clickItem(entry, msg.X, msg.Y); ok {
			return m, append(cmds, cmd)
		}
	}
	return m, cmds
}

// clickItem activates the menu row under a press, if the menu is showing.
func (m Model) clickItem(entry *menuEntry, x, y int) (tea.Cmd, bool) {
	ctrl := entry.ctrl
	if !ctrl.IsOpen() || !ctrl.IsPositioned() {
		return nil, false
	}
	rect := ctrl.PanelRect()
	if !rect.Contains(x, y) {
		return nil, false
	}

	// One row per item inside a one-cell border.
	row := y - rect.Top - 1
	items := entry.menu.Items()
	if row < 0 || row >= len(items) {
		return nil, true
	}
	return items[row].Activate(), true
}

func (m Model) handleAction(msg ActionMsg) (Model, tea.Cmd) {
	var cmds []tea.Cmd
	if entry := m.entry(msg.Menu); entry != nil {
		cmds = append(cmds, entry.ctrl.Close())
	}

	file := m.entry(FileMenu).ctrl
	side, align := file.Placement()

	switch {
	case msg.Action == "quit":
		return m, tea.Quit
	case strings.HasPrefix(msg.Action, "side:"):
		if parsed, ok := geom.ParseSide(strings.TrimPrefix(msg.Action, "side:")); ok {
			side = parsed
		}
		cmds = append(cmds, file.SetPlacement(side, align))
		m.status = "file menu opens " + side.String() + ", aligned " + align.String()
	case strings.HasPrefix(msg.Action, "align:"):
		if parsed, ok := geom.ParseAlign(strings.TrimPrefix(msg.Action, "align:")); ok {
			align = parsed
		}
		cmds = append(cmds, file.SetPlacement(side, align))
		m.status = "file menu opens " + side.String() + ", aligned " + align.String()
	default:
		m.running = msg.Action
		m.status = "running " + msg.Action
		action := msg.Action
		cmds = append(cmds, m.spinner.Tick, tea.Tick(actionDuration, func(time.Time) tea.Msg {
			return actionDoneMsg{Action: action}
		}))
	}

	m.log.Info("menu action " + msg.Menu + "/" + msg.Action)
	return m, tea.Batch(cmds...)
}

func (m Model) reloadConfig() (Model, tea.Cmd) {
	if m.reload == nil {
		m.status = "reload unavailable"
		return m, nil
	}

	cfg, err := m.reload()
	if err == nil {
		err = m.apply(cfg)
	}
	if err != nil {
		m.log.Error(err, "reload config")
		m.status = "reload failed: " + err.Error()
		return m, nil
	}

	// The fresh controllers have not seen the window size yet.
	size := tea.WindowSizeMsg{Width: m.width, Height: m.height}
	cmds := append(m.broadcast(size), m.Init())
	m.status = "config reloaded"
	return m, tea.Batch(cmds...)
}
