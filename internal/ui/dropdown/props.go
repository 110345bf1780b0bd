package dropdown

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/tuikit/internal/ui/overlay"
)

// Props are the attributes and handlers a host spreads onto a surface.
// Handlers report whether the event was consumed.
type Props struct {
	Attrs   map[string]string
	Style   overlay.Style
	OnClick func() tea.Cmd
	OnKey   func(msg tea.KeyMsg) (tea.Cmd, bool)
}

// TriggerProps returns the props for the trigger surface.
func (c *Controller) TriggerProps() Props {
	return Props{
		Attrs: map[string]string{
			"aria-haspopup": "menu",
			"aria-expanded": strconv.FormatBool(c.IsOpen()),
			"aria-controls": c.menuID,
		},
		OnClick: c.Toggle,
		OnKey: func(msg tea.KeyMsg) (tea.Cmd, bool) {
			if c.IsOpen() || !key.Matches(msg, c.keys.Open) {
				return nil, false
			}
			return c.Open(), true
		},
	}
}

// MenuProps returns the props for the panel root. Its key handler always
// closes on Escape, independent of the document-level setting.
func (c *Controller) MenuProps() Props {
	return Props{
		Attrs: map[string]string{
			"id":   c.menuID,
			"role": "menu",
		},
		Style: c.menuStyle(),
		OnKey: c.handleMenuKey,
	}
}
