package dropdown

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/tuikit/internal/logger"
	"github.com/alexisbeaulieu97/tuikit/internal/ui/geom"
	"github.com/alexisbeaulieu97/tuikit/internal/ui/overlay"
)

// State is a snapshot of the controller's observable state.
type State struct {
	IsOpen       bool
	FocusedIndex int
	IsPositioned bool
}

// ScrollMsg tells open controllers that a scroll container around the
// trigger moved. Mouse wheel messages are treated the same way.
type ScrollMsg struct{}

// focusResetMsg clears roving focus after the panel closed.
type focusResetMsg struct {
	owner string
}

// Controller positions a floating panel next to a trigger and manages its
// open state, focus and dismissal. It is not safe for concurrent use; drive
// it from a single Bubble Tea update loop.
type Controller struct {
	key      string
	menuID   string
	registry *InstanceRegistry

	controlled   func() bool
	onOpenChange func(bool)
	open         bool
	session      bool

	trigger        geom.Measurable
	panel          Panel
	layer          *overlay.Layer
	viewport       ViewportSource
	scrollbarWidth func() int
	runtime        Runtime
	keys           KeyMap
	log            *logger.Logger

	side       geom.Side
	align      geom.Align
	sideOffset int
	padding    int

	frameInterval    time.Duration
	settleDelay      time.Duration
	throttleInterval time.Duration
	focusDelay       time.Duration
	closeOnEscape    bool

	phase        phase
	position     geom.Position
	panelRect    geom.Rect
	positioned   bool
	repositions  int
	tracking     bool
	repositionID uint64
	timers       timerTable
	waitLogged   bool
	emptyWarned  bool
	destroyed    bool

	focused     int
	focusedItem Item
	listening   bool
}

// New creates a controller. Uncontrolled controllers restore their last
// known state from the registry; call Init to start positioning a
// controller that comes back open.
func New(opts ...Option) *Controller {
	c := &Controller{
		key:              uuid.NewString(),
		registry:         defaultRegistry,
		runtime:          TickRuntime{},
		keys:             DefaultKeyMap(),
		side:             geom.SideBottom,
		align:            geom.AlignStart,
		sideOffset:       DefaultSideOffset,
		padding:          DefaultPadding,
		frameInterval:    DefaultFrameInterval,
		settleDelay:      DefaultSettleDelay,
		throttleInterval: DefaultThrottleInterval,
		focusDelay:       DefaultFocusDelay,
		closeOnEscape:    true,
		scrollbarWidth:   geom.ScrollbarWidth,
		timers:           newTimerTable(),
		focused:          -1,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.viewport == nil {
		c.viewport = NewTerminalViewport()
	}
	c.menuID = "dropdown-menu-" + shortKey(c.key)
	c.log = c.log.With("instance", c.key)

	if c.controlled == nil {
		if open, ok := c.registry.Get(c.key); ok {
			c.open = open
		} else {
			c.registry.Set(c.key, c.open)
		}
	}

	return c
}

func shortKey(key string) string {
	if len(key) > 8 {
		return key[:8]
	}
	return key
}

// Init starts positioning when the controller is already open, for example
// after its state was restored from the registry.
func (c *Controller) Init() tea.Cmd {
	return c.sync()
}

// Key returns the instance key used in the registry.
func (c *Controller) Key() string {
	return c.key
}

// MenuID returns the id attribute given to the panel root.
func (c *Controller) MenuID() string {
	return c.menuID
}

// State returns a snapshot of the current state.
func (c *Controller) State() State {
	return State{
		IsOpen:       c.IsOpen(),
		FocusedIndex: c.focused,
		IsPositioned: c.positioned,
	}
}

// FocusedIndex returns the index of the focused item among enabled items, or
// -1 when nothing is focused.
func (c *Controller) FocusedIndex() int {
	return c.focused
}

// IsPositioned reports whether the current placement is trustworthy.
func (c *Controller) IsPositioned() bool {
	return c.positioned
}

// Position returns the last resolved placement. It is only meaningful while
// IsPositioned is true.
func (c *Controller) Position() geom.Position {
	return c.position
}

// PanelRect returns the panel's last measured bounds at its resolved
// position.
func (c *Controller) PanelRect() geom.Rect {
	return c.panelRect
}

// PendingTimers returns the number of frames and timers still outstanding.
// It is zero whenever the controller is closed.
func (c *Controller) PendingTimers() int {
	return c.timers.len()
}

// Listening reports whether dismissal listeners are attached.
func (c *Controller) Listening() bool {
	return c.listening
}

// Tracking reports whether resize and scroll events reposition the panel.
func (c *Controller) Tracking() bool {
	return c.tracking
}

// SetPanel swaps the panel content.
func (c *Controller) SetPanel(panel Panel) {
	c.panel = panel
}

// Placement returns the requested side and alignment.
func (c *Controller) Placement() (geom.Side, geom.Align) {
	return c.side, c.align
}

// SetPlacement changes the requested side and alignment. An open, positioned
// panel is repositioned on the next throttled pass.
func (c *Controller) SetPlacement(side geom.Side, align geom.Align) tea.Cmd {
	c.side = side
	c.align = align
	return c.requestReposition()
}

// Update routes a Bubble Tea message through the controller. The boolean
// reports whether the message was consumed and should not be handled
// further by the host.
func (c *Controller) Update(msg tea.Msg) (tea.Cmd, bool) {
	if c.destroyed {
		return nil, false
	}
	syncCmd := c.sync()

	var cmd tea.Cmd
	handled := false

	switch msg := msg.(type) {
	case timerMsg:
		if msg.owner != c.key {
			break
		}
		handled = true
		kind, ok := c.timers.take(msg.handle)
		if !ok {
			break
		}
		cmd = c.onTimer(kind)

	case focusResetMsg:
		if msg.owner != c.key {
			break
		}
		handled = true
		if !c.session {
			c.blurFocused()
		}

	case tea.WindowSizeMsg:
		if obs, ok := c.viewport.(windowObserver); ok {
			obs.Observe(msg)
		}
		cmd = c.requestReposition()

	case ScrollMsg:
		cmd = c.requestReposition()

	case tea.MouseMsg:
		if tea.MouseEvent(msg).IsWheel() {
			cmd = c.requestReposition()
			break
		}
		cmd = c.handlePointer(msg)

	case tea.KeyMsg:
		cmd, handled = c.handleKey(msg)
	}

	if syncCmd == nil {
		return cmd, handled
	}
	return tea.Batch(syncCmd, cmd), handled
}

// Destroy tears the controller down: every timer is cancelled, listeners are
// detached, focus is cleared and the panel is removed from the layer. The
// controller ignores every later message and open request. The registry
// entry is kept.
func (c *Controller) Destroy() {
	c.destroyed = true
	c.endSession()
	c.blurFocused()
}

// Destroyed reports whether Destroy was called.
func (c *Controller) Destroyed() bool {
	return c.destroyed
}
