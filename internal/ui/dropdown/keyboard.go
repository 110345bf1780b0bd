package dropdown

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKey is the document-level key handler attached while the panel is
// open.
func (c *Controller) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if !c.listening || !c.IsOpen() {
		return nil, false
	}
	if key.Matches(msg, c.keys.Close) {
		if !c.closeOnEscape {
			return nil, false
		}
		return c.Close(), true
	}
	return c.handleMenuKey(msg)
}

// handleMenuKey implements roving focus over the enabled items. The item
// list is queried fresh on every key press.
func (c *Controller) handleMenuKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, c.keys.Close):
		return c.Close(), true
	case key.Matches(msg, c.keys.Tab):
		// Focus leaves the panel; the host still moves focus.
		return c.Close(), false
	}

	items := enabledItems(c.panel)
	n := len(items)

	switch {
	case key.Matches(msg, c.keys.Next):
		if n > 0 {
			c.focusIndex(items, (c.current(n)+1)%n)
		}
		return nil, true
	case key.Matches(msg, c.keys.Prev):
		if n > 0 {
			cur := max(c.current(n), 0)
			c.focusIndex(items, (cur-1+n)%n)
		}
		return nil, true
	case key.Matches(msg, c.keys.First):
		if n > 0 {
			c.focusIndex(items, 0)
		}
		return nil, true
	case key.Matches(msg, c.keys.Last):
		if n > 0 {
			c.focusIndex(items, n-1)
		}
		return nil, true
	case key.Matches(msg, c.keys.Activate):
		if c.focused < 0 || c.focused >= n {
			return nil, false
		}
		return items[c.focused].Activate(), true
	}
	return nil, false
}

// current returns the focused index clamped to a list of n items, or -1.
// With nothing focused, Next lands on the first item and Prev on the last.
func (c *Controller) current(n int) int {
	switch {
	case c.focused < 0:
		return -1
	case c.focused >= n:
		return n - 1
	default:
		return c.focused
	}
}

func (c *Controller) focusIndex(items []Item, idx int) {
	if idx < 0 || idx >= len(items) {
		return
	}
	c.blurFocused()
	c.focused = idx
	c.focusedItem = items[idx]
	if f, ok := c.focusedItem.(Focusable); ok {
		f.SetFocused(true)
	}
}

func (c *Controller) blurFocused() {
	if f, ok := c.focusedItem.(Focusable); ok {
		f.SetFocused(false)
	}
	c.focusedItem = nil
	c.focused = -1
}
