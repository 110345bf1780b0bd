package dropdown

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/tuikit/internal/ui/geom"
)

// phase is the positioning state machine's current step.
type phase int

const (
	phaseIdle phase = iota
	phaseAwaitingMount
	phaseMounted
	phaseMeasuredOnce
	phaseMeasuredFinal
	phaseSettled
)

func (p phase) String() string {
	switch p {
	case phaseAwaitingMount:
		return "awaiting-mount"
	case phaseMounted:
		return "mounted"
	case phaseMeasuredOnce:
		return "measured-once"
	case phaseMeasuredFinal:
		return "measured-final"
	case phaseSettled:
		return "settled"
	default:
		return "idle"
	}
}

// startSession begins an open session: geometry is untrusted until the
// frame sequence and settle delay complete.
func (c *Controller) startSession() tea.Cmd {
	c.session = true
	c.positioned = false
	c.tracking = false
	c.repositions = 0
	c.position = geom.Position{}
	c.panelRect = geom.Rect{}
	c.waitLogged = false
	c.emptyWarned = false
	c.blurFocused()
	c.listening = true
	c.setPhase(phaseAwaitingMount)
	return c.schedule(timerFrame)
}

// endSession hides the panel immediately and cancels everything scheduled
// for it. Roving focus is reset by a follow-up message.
func (c *Controller) endSession() tea.Cmd {
	c.session = false
	c.positioned = false
	c.tracking = false
	c.listening = false
	c.repositionID = 0
	c.timers.clear()
	c.setPhase(phaseIdle)
	if c.layer != nil {
		c.layer.Unmount(c.menuID)
	}

	owner := c.key
	return func() tea.Msg { return focusResetMsg{owner: owner} }
}

func (c *Controller) setPhase(next phase) {
	if c.phase == next {
		return
	}
	c.log.Debugf("dropdown phase %s -> %s", c.phase, next)
	c.phase = next
}

func (c *Controller) schedule(kind timerKind) tea.Cmd {
	handle := c.timers.add(kind)
	msg := timerMsg{owner: c.key, handle: handle, kind: kind}

	switch kind {
	case timerFrame:
		return c.runtime.Frame(c.frameInterval, msg)
	case timerSettle:
		return c.runtime.After(c.settleDelay, msg)
	case timerReposition:
		c.repositionID = handle
		return c.runtime.After(c.throttleInterval, msg)
	default:
		return c.runtime.After(c.focusDelay, msg)
	}
}

func (c *Controller) onTimer(kind timerKind) tea.Cmd {
	if !c.session {
		return nil
	}

	switch kind {
	case timerFrame:
		return c.onFrame()
	case timerSettle:
		c.positioned = true
		c.tracking = true
		c.setPhase(phaseSettled)
		return c.schedule(timerFocus)
	case timerReposition:
		c.repositionID = 0
		if c.positioned && c.computePosition() {
			c.repositions++
		}
		return nil
	case timerFocus:
		if c.positioned && c.focused < 0 {
			c.focusIndex(enabledItems(c.panel), 0)
		}
		return nil
	}
	return nil
}

func (c *Controller) onFrame() tea.Cmd {
	switch c.phase {
	case phaseAwaitingMount:
		if _, ok := measurePanel(c.panel); !ok {
			c.logWait("dropdown panel not mounted yet, waiting for next frame")
			return c.schedule(timerFrame)
		}
		c.setPhase(phaseMounted)
		return c.schedule(timerFrame)
	case phaseMounted:
		if !c.computePosition() {
			c.logWait("dropdown trigger or panel not measurable, waiting for next frame")
			return c.schedule(timerFrame)
		}
		c.setPhase(phaseMeasuredOnce)
		return c.schedule(timerFrame)
	case phaseMeasuredOnce:
		if !c.computePosition() {
			c.logWait("dropdown trigger or panel not measurable, waiting for next frame")
			return c.schedule(timerFrame)
		}
		c.setPhase(phaseMeasuredFinal)
		return c.schedule(timerSettle)
	}
	return nil
}

// logWait emits the waiting diagnostic once per session.
func (c *Controller) logWait(msg string) {
	if c.waitLogged {
		return
	}
	c.waitLogged = true
	c.log.Debug(msg)
}

// requestReposition debounces resize and scroll events: every event
// restarts the quiet interval and only the last one recomputes.
func (c *Controller) requestReposition() tea.Cmd {
	if !c.session || !c.tracking {
		return nil
	}
	if c.repositionID != 0 {
		c.timers.cancel(c.repositionID)
	}
	return c.schedule(timerReposition)
}

// computePosition runs one measure, place and resolve pass. It reports false
// when either rectangle could not be measured.
func (c *Controller) computePosition() bool {
	if c.trigger == nil {
		return false
	}
	trigger, ok := c.trigger.Bounds()
	if !ok {
		return false
	}
	panel, ok := measurePanel(c.panel)
	if !ok {
		return false
	}

	raw := geom.Place(trigger, panel, c.side, c.align, c.sideOffset)
	pos := geom.Resolve(raw, trigger, panel, c.viewport.Size(), geom.CollisionOptions{
		Padding:        c.padding,
		ScrollbarWidth: c.scrollbarWidth(),
		SideOffset:     c.sideOffset,
	})

	c.position = pos
	c.panelRect = panel.At(pos.Top, pos.Left)
	return true
}
