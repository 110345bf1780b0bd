package dropdown

import tea "github.com/charmbracelet/bubbletea"

// IsOpen reports whether the overlay is open. Controlled controllers read
// the externally owned value.
func (c *Controller) IsOpen() bool {
	if c.controlled != nil {
		return c.controlled()
	}
	return c.open
}

// Open requests the overlay to open.
func (c *Controller) Open() tea.Cmd {
	return c.setOpen(true)
}

// Close requests the overlay to close.
func (c *Controller) Close() tea.Cmd {
	return c.setOpen(false)
}

// Toggle flips the open state.
func (c *Controller) Toggle() tea.Cmd {
	return c.setOpen(!c.IsOpen())
}

// setOpen records the request and notifies the change callback. Controlled
// controllers only pass the request on; the session follows whatever the
// owner's state says afterwards.
func (c *Controller) setOpen(open bool) tea.Cmd {
	if c.destroyed {
		return nil
	}
	if c.controlled == nil {
		c.open = open
		c.registry.Set(c.key, open)
	}
	if c.onOpenChange != nil {
		c.onOpenChange(open)
	}
	return c.sync()
}

// sync starts or ends the positioning session so it matches IsOpen.
func (c *Controller) sync() tea.Cmd {
	if c.destroyed {
		return nil
	}
	open := c.IsOpen()
	if open == c.session {
		return nil
	}
	if open {
		return c.startSession()
	}
	return c.endSession()
}
