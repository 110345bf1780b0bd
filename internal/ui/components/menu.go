package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tuikit/internal/ui/dropdown"
)

// RoleSeparator marks non-interactive separator rows.
const RoleSeparator = "separator"

// MenuItem is one row of a Menu.
type MenuItem struct {
	label    string
	shortcut string
	role     string
	disabled bool
	focused  bool
	onSelect func() tea.Cmd
}

// NewMenuItem creates an interactive menu item. onSelect may be nil.
func NewMenuItem(label string, onSelect func() tea.Cmd) *MenuItem {
	return &MenuItem{
		label:    label,
		role:     dropdown.RoleMenuItem,
		onSelect: onSelect,
	}
}

// MenuSeparator creates a separator row.
func MenuSeparator() *MenuItem {
	return &MenuItem{role: RoleSeparator}
}

// WithShortcut sets the key hint shown at the end of the row.
func (i *MenuItem) WithShortcut(shortcut string) *MenuItem {
	i.shortcut = shortcut
	return i
}

// WithDisabled marks the item inactive. Disabled items are skipped by
// keyboard navigation and cannot be activated.
func (i *MenuItem) WithDisabled(disabled bool) *MenuItem {
	i.disabled = disabled
	return i
}

// Attr implements dropdown.Item.
func (i *MenuItem) Attr(name string) string {
	switch name {
	case dropdown.AttrRole:
		return i.role
	case dropdown.AttrAriaDisabled:
		if i.disabled {
			return "true"
		}
	}
	return ""
}

// Activate implements dropdown.Item.
func (i *MenuItem) Activate() tea.Cmd {
	if i.disabled || i.role != dropdown.RoleMenuItem || i.onSelect == nil {
		return nil
	}
	return i.onSelect()
}

// SetFocused implements dropdown.Focusable.
func (i *MenuItem) SetFocused(focused bool) {
	i.focused = focused
}

// IsFocused reports whether the item has roving focus.
func (i *MenuItem) IsFocused() bool {
	return i.focused
}

// Label returns the item label.
func (i *MenuItem) Label() string {
	return i.label
}

func (i *MenuItem) isSeparator() bool {
	return i.role == RoleSeparator
}

// Menu is a bordered list of items rendered as a dropdown panel.
type Menu struct {
	BaseComponent
	items []*MenuItem
	width int
}

var (
	_ dropdown.Panel     = (*Menu)(nil)
	_ dropdown.Item      = (*MenuItem)(nil)
	_ dropdown.Focusable = (*MenuItem)(nil)
)

// NewMenu creates a menu with the given items.
func NewMenu(items ...*MenuItem) *Menu {
	return &Menu{
		BaseComponent: NewBaseComponent(),
		items:         items,
	}
}

// Add appends items.
func (m *Menu) Add(items ...*MenuItem) *Menu {
	m.items = append(m.items, items...)
	return m
}

// SetItems replaces the items.
func (m *Menu) SetItems(items ...*MenuItem) {
	m.items = items
}

// WithWidth fixes the inner width. Zero sizes the menu to its content.
func (m *Menu) WithWidth(width int) *Menu {
	m.width = width
	return m
}

// Items implements dropdown.Panel.
func (m *Menu) Items() []dropdown.Item {
	out := make([]dropdown.Item, 0, len(m.items))
	for _, item := range m.items {
		out = append(out, item)
	}
	return out
}

// View renders the menu with the default theme.
func (m *Menu) View() string {
	return m.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the menu. An empty menu renders nothing.
func (m *Menu) ViewWithContext(ctx RenderContext) string {
	if len(m.items) == 0 {
		return ""
	}

	styles := ctx.Theme.Menu
	inner := m.innerWidth(ctx)
	rowCtx := ctx.WithWidth(inner)

	rows := make([]string, 0, len(m.items))
	for _, item := range m.items {
		if item.isSeparator() {
			rows = append(rows, NewDivider().WithStyle(styles.Separator).ViewWithContext(rowCtx))
			continue
		}
		rows = append(rows, m.renderRow(item, styles, rowCtx))
	}

	panel := m.ComputeStyle(ctx.Theme).Inherit(styles.Panel)
	return panel.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m *Menu) renderRow(item *MenuItem, styles MenuStyles, ctx RenderContext) string {
	style := styles.Item
	switch {
	case item.disabled:
		style = styles.Disabled
	case item.focused:
		style = styles.Focused
	}

	text := item.label
	if item.shortcut != "" {
		hint := ShortcutBadge(item.shortcut).ViewWithContext(ctx)
		content := ctx.Width - style.GetHorizontalFrameSize()
		gap := max(content-lipgloss.Width(text)-lipgloss.Width(hint), 1)
		text += strings.Repeat(" ", gap) + hint
	}

	return style.Width(ctx.Width).MaxWidth(ctx.Width).Render(text)
}

func (m *Menu) innerWidth(ctx RenderContext) int {
	if m.width > 0 {
		return m.width
	}

	frame := ctx.Theme.Menu.Item.GetHorizontalFrameSize()
	width := 0
	for _, item := range m.items {
		if item.isSeparator() {
			continue
		}
		w := lipgloss.Width(item.label)
		if item.shortcut != "" {
			w += 1 + lipgloss.Width(item.shortcut)
		}
		width = max(width, w+frame)
	}
	return max(width, 1)
}
