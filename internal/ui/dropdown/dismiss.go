package dropdown

import tea "github.com/charmbracelet/bubbletea"

// handlePointer closes the overlay on a press outside both the trigger and
// the panel. The panel only counts once it has a trusted position.
func (c *Controller) handlePointer(msg tea.MouseMsg) tea.Cmd {
	if !c.listening || msg.Action != tea.MouseActionPress {
		return nil
	}
	if c.inside(msg.X, msg.Y) {
		return nil
	}
	c.log.Debugf("dropdown outside press at %d,%d", msg.X, msg.Y)
	return c.Close()
}

func (c *Controller) inside(x, y int) bool {
	if c.trigger != nil {
		if bounds, ok := c.trigger.Bounds(); ok && bounds.Contains(x, y) {
			return true
		}
	}
	return c.positioned && c.panelRect.Contains(x, y)
}
