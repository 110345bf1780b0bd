// Package demo is an interactive showcase hosting two dropdown menus in a
// Bubble Tea program: a File menu near the top-left corner and a Placement
// menu near the bottom-right corner, where it has to flip and clamp.
package demo

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tuikit/internal/config"
	"github.com/alexisbeaulieu97/tuikit/internal/logger"
	"github.com/alexisbeaulieu97/tuikit/internal/ui/components"
	"github.com/alexisbeaulieu97/tuikit/internal/ui/dropdown"
	"github.com/alexisbeaulieu97/tuikit/internal/ui/geom"
	"github.com/alexisbeaulieu97/tuikit/internal/ui/overlay"
)

// Instance keys. They are fixed so that menus rebuilt on reload come back in
// the state they were left in.
const (
	FileMenu      = "demo-file"
	PlacementMenu = "demo-placement"
)

// Loader reloads the configuration.
type Loader func() (*config.Config, error)

type menuEntry struct {
	key    string
	button *components.Button
	ref    *geom.Ref
	menu   *components.Menu
	ctrl   *dropdown.Controller
}

// Model is the demo's Bubble Tea model.
type Model struct {
	cfg   *config.Config
	theme components.Theme
	log   *logger.Logger
	layer *overlay.Layer

	menus []*menuEntry
	focus int
	extra []dropdown.Option

	keys    keyMap
	help    help.Model
	spinner spinner.Model
	running string
	status  string

	reload Loader

	width  int
	height int
}

// New builds the demo. extra options are applied to every controller after
// the configured ones.
func New(cfg *config.Config, log *logger.Logger, reload Loader, extra ...dropdown.Option) (Model, error) {
	if cfg == nil {
		defaults := config.Default()
		cfg = &defaults
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	m := Model{
		log:     log,
		layer:   overlay.NewLayer(),
		extra:   extra,
		keys:    newKeyMap(),
		help:    help.New(),
		spinner: s,
		reload:  reload,
		status:  "ready",
	}

	if err := m.apply(cfg); err != nil {
		return Model{}, err
	}
	return m, nil
}

// apply installs cfg and rebuilds both menus.
func (m *Model) apply(cfg *config.Config) error {
	theme, err := components.ThemeByName(cfg.Theme)
	if err != nil {
		return err
	}
	opts, err := DropdownOptions(cfg.Dropdown)
	if err != nil {
		return err
	}

	for _, entry := range m.menus {
		entry.ctrl.Destroy()
	}

	m.cfg = cfg
	m.theme = theme
	m.menus = []*menuEntry{
		m.newEntry(FileMenu, "File", fileMenu(), opts),
		m.newEntry(PlacementMenu, "Placement", placementMenu(), opts),
	}
	m.focus = min(m.focus, len(m.menus)-1)
	return nil
}

func (m *Model) newEntry(key, label string, menu *components.Menu, opts []dropdown.Option) *menuEntry {
	entry := &menuEntry{
		key:    key,
		button: components.NewButton(label),
		ref:    &geom.Ref{},
		menu:   menu,
	}

	all := append([]dropdown.Option{
		dropdown.WithInstanceKey(key),
		dropdown.WithTrigger(entry.ref),
		dropdown.WithPanel(menu),
		dropdown.WithLayer(m.layer),
		dropdown.WithLogger(m.log.With("menu", key)),
	}, opts...)
	entry.ctrl = dropdown.New(append(all, m.extra...)...)
	return entry
}

func fileMenu() *components.Menu {
	return components.NewMenu(
		components.NewMenuItem("New", emit(FileMenu, "new")).WithShortcut("n"),
		components.NewMenuItem("Open", emit(FileMenu, "open")).WithShortcut("o"),
		components.NewMenuItem("Save", emit(FileMenu, "save")).WithShortcut("s"),
		components.NewMenuItem("Export", nil).WithDisabled(true),
		components.MenuSeparator(),
		components.NewMenuItem("Quit", emit(FileMenu, "quit")).WithShortcut("q"),
	)
}

func placementMenu() *components.Menu {
	return components.NewMenu(
		components.NewMenuItem("Below", emit(PlacementMenu, "side:bottom")),
		components.NewMenuItem("Above", emit(PlacementMenu, "side:top")),
		components.NewMenuItem("Left", emit(PlacementMenu, "side:left")),
		components.NewMenuItem("Right", emit(PlacementMenu, "side:right")),
		components.MenuSeparator(),
		components.NewMenuItem("Align start", emit(PlacementMenu, "align:start")),
		components.NewMenuItem("Align center", emit(PlacementMenu, "align:center")),
		components.NewMenuItem("Align end", emit(PlacementMenu, "align:end")),
	)
}

// Init resumes any menu that was restored open.
func (m Model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.menus))
	for _, entry := range m.menus {
		cmds = append(cmds, entry.ctrl.Init())
	}
	return tea.Batch(cmds...)
}

// Controller returns the controller registered under key.
func (m Model) Controller(key string) *dropdown.Controller {
	if entry := m.entry(key); entry != nil {
		return entry.ctrl
	}
	return nil
}

// Status returns the status line text.
func (m Model) Status() string {
	return m.status
}

// Running returns the action in progress, if any.
func (m Model) Running() string {
	return m.running
}

// Focused returns the key of the focused trigger.
func (m Model) Focused() string {
	return m.menus[m.focus].key
}

func (m Model) entry(key string) *menuEntry {
	for _, entry := range m.menus {
		if entry.key == key {
			return entry
		}
	}
	return nil
}

// layout places the triggers for the current window size and refreshes
// their attributes.
func (m Model) layout() {
	ctx := m.renderContext()
	for i, entry := range m.menus {
		props := entry.ctrl.TriggerProps()
		entry.button.WithAttrs(props.Attrs)
		entry.button.SetFocused(i == m.focus)

		width := lipgloss.Width(entry.button.ViewWithContext(ctx))
		top, left := triggerOrigin(i, width, m.width, m.height)
		entry.ref.Set(geom.NewRect(top, left, width, 1))
	}
}

// triggerOrigin puts the first trigger near the top-left corner and the
// second near the bottom-right corner, above the status and help lines.
func triggerOrigin(index, width, screenWidth, screenHeight int) (int, int) {
	if index == 0 {
		return 2, 2
	}
	return max(screenHeight-4, 3), max(screenWidth-width-2, 0)
}

func (m Model) renderContext() components.RenderContext {
	return components.DefaultContext().WithTheme(m.theme)
}
