package dropdown

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/tuikit/internal/ui/geom"
)

// Item attribute names and values the roving-focus query relies on.
const (
	AttrRole         = "role"
	AttrAriaDisabled = "aria-disabled"
	RoleMenuItem     = "menuitem"
)

// Panel is the floating panel content.
type Panel interface {
	// View renders the panel. An empty view means the panel is not mounted.
	View() string
	// Items returns the panel's current interactive descendants.
	Items() []Item
}

// Item is one interactive element inside a panel.
type Item interface {
	Attr(name string) string
	// Activate performs the item's primary action, like a click would.
	Activate() tea.Cmd
}

// Focusable is implemented by items that render a focus state.
type Focusable interface {
	SetFocused(focused bool)
}

// enabledItems selects items with role="menuitem" that are not
// aria-disabled="true". The list is rebuilt on every call because the panel's
// content can change while it is open.
func enabledItems(panel Panel) []Item {
	if panel == nil {
		return nil
	}
	var out []Item
	for _, item := range panel.Items() {
		if item == nil {
			continue
		}
		if item.Attr(AttrRole) != RoleMenuItem || item.Attr(AttrAriaDisabled) == "true" {
			continue
		}
		out = append(out, item)
	}
	return out
}

// measurePanel returns the panel's rendered size. The boolean is false when
// there is nothing rendered to measure.
func measurePanel(panel Panel) (geom.Rect, bool) {
	if panel == nil {
		return geom.Rect{}, false
	}
	view := panel.View()
	if view == "" {
		return geom.Rect{}, false
	}
	size := geom.SizeRect(lipgloss.Width(view), lipgloss.Height(view))
	return size, !size.IsEmpty()
}

// ViewportSource reports the visible display area. It is read on every
// positioning pass.
type ViewportSource interface {
	Size() geom.ViewportSize
}

// ViewportFunc adapts a function to ViewportSource.
type ViewportFunc func() geom.ViewportSize

// Size implements ViewportSource.
func (f ViewportFunc) Size() geom.ViewportSize {
	return f()
}

// StaticViewport is a fixed-size viewport.
type StaticViewport geom.ViewportSize

// Size implements ViewportSource.
func (v StaticViewport) Size() geom.ViewportSize {
	return geom.ViewportSize(v)
}

// TerminalViewport queries the terminal size directly and falls back to the
// last tea.WindowSizeMsg when the file descriptor is not a terminal.
type TerminalViewport struct {
	fd       uintptr
	fallback geom.ViewportSize
}

// NewTerminalViewport creates a viewport source for stdout.
func NewTerminalViewport() *TerminalViewport {
	return &TerminalViewport{fd: os.Stdout.Fd()}
}

// Observe records the size announced by the Bubble Tea runtime.
func (v *TerminalViewport) Observe(msg tea.WindowSizeMsg) {
	v.fallback = geom.ViewportSize{Width: msg.Width, Height: msg.Height}
}

// Size implements ViewportSource.
func (v *TerminalViewport) Size() geom.ViewportSize {
	if width, height, err := term.GetSize(int(v.fd)); err == nil && width > 0 && height > 0 {
		return geom.ViewportSize{Width: width, Height: height}
	}
	return v.fallback
}

// windowObserver is implemented by viewport sources that track resizes.
type windowObserver interface {
	Observe(msg tea.WindowSizeMsg)
}
