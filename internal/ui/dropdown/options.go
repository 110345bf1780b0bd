package dropdown

import (
	"time"

	"github.com/alexisbeaulieu97/tuikit/internal/logger"
	"github.com/alexisbeaulieu97/tuikit/internal/ui/geom"
	"github.com/alexisbeaulieu97/tuikit/internal/ui/overlay"
)

const (
	// DefaultSideOffset is the gap between trigger and panel, in cells.
	DefaultSideOffset = 1
	// DefaultPadding is the gap kept between the panel and viewport edges.
	DefaultPadding = 1
	// DefaultFrameInterval approximates one display refresh.
	DefaultFrameInterval = time.Second / 60
	// DefaultSettleDelay is waited after the final measurement before the
	// panel is revealed.
	DefaultSettleDelay = 16 * time.Millisecond
	// DefaultThrottleInterval is the quiet period resize and scroll events
	// must leave before the panel is repositioned.
	DefaultThrottleInterval = 16 * time.Millisecond
	// DefaultFocusDelay is waited after the panel settles before the first
	// item receives focus.
	DefaultFocusDelay = 50 * time.Millisecond
)

// Option configures a Controller.
type Option func(*Controller)

// WithTrigger sets the trigger surface the panel is anchored to.
func WithTrigger(trigger geom.Measurable) Option {
	return func(c *Controller) {
		c.trigger = trigger
	}
}

// WithPanel sets the panel content the controller measures and navigates.
func WithPanel(panel Panel) Option {
	return func(c *Controller) {
		c.panel = panel
	}
}

// WithLayer sets the overlay layer panels are mounted into. Without a layer
// RenderMenu renders nothing.
func WithLayer(layer *overlay.Layer) Option {
	return func(c *Controller) {
		c.layer = layer
	}
}

// WithSide sets the requested side.
func WithSide(side geom.Side) Option {
	return func(c *Controller) {
		c.side = side
	}
}

// WithAlign sets the requested cross-axis alignment.
func WithAlign(align geom.Align) Option {
	return func(c *Controller) {
		c.align = align
	}
}

// WithSideOffset sets the trigger gap in cells.
func WithSideOffset(offset int) Option {
	return func(c *Controller) {
		c.sideOffset = offset
	}
}

// WithPadding sets the viewport edge padding in cells.
func WithPadding(padding int) Option {
	return func(c *Controller) {
		c.padding = padding
	}
}

// WithTiming overrides the frame interval, settle delay, throttle interval
// and auto-focus delay. The frame interval must be positive; the delays may
// be zero. Values out of range keep the current setting.
func WithTiming(frame, settle, throttle, focus time.Duration) Option {
	return func(c *Controller) {
		if frame > 0 {
			c.frameInterval = frame
		}
		if settle >= 0 {
			c.settleDelay = settle
		}
		if throttle >= 0 {
			c.throttleInterval = throttle
		}
		if focus >= 0 {
			c.focusDelay = focus
		}
	}
}

// WithCloseOnEscape toggles Escape dismissal for keys routed through Update.
func WithCloseOnEscape(enabled bool) Option {
	return func(c *Controller) {
		c.closeOnEscape = enabled
	}
}

// WithControlledOpen makes the open state externally owned. The controller
// reads it through isOpen and reports requested changes to the
// WithOnOpenChange callback.
func WithControlledOpen(isOpen func() bool) Option {
	return func(c *Controller) {
		c.controlled = isOpen
	}
}

// WithDefaultOpen sets the initial state of an uncontrolled controller that
// has no registry entry yet.
func WithDefaultOpen(open bool) Option {
	return func(c *Controller) {
		c.open = open
	}
}

// WithOnOpenChange registers a callback notified on every open-state request,
// in both controlled and uncontrolled mode.
func WithOnOpenChange(fn func(open bool)) Option {
	return func(c *Controller) {
		c.onOpenChange = fn
	}
}

// WithInstanceKey fixes the registry key. Controllers rebuilt with the same
// key pick up the last known open state.
func WithInstanceKey(key string) Option {
	return func(c *Controller) {
		if key != "" {
			c.key = key
		}
	}
}

// WithRegistry replaces the process-wide instance registry.
func WithRegistry(registry *InstanceRegistry) Option {
	return func(c *Controller) {
		if registry != nil {
			c.registry = registry
		}
	}
}

// WithViewport replaces the viewport source.
func WithViewport(source ViewportSource) Option {
	return func(c *Controller) {
		if source != nil {
			c.viewport = source
		}
	}
}

// WithScrollbarMetrics replaces the process-wide scrollbar metrics.
func WithScrollbarMetrics(metrics *geom.ScrollbarMetrics) Option {
	return func(c *Controller) {
		c.scrollbarWidth = metrics.Width
	}
}

// WithRuntime replaces the frame and timer primitives.
func WithRuntime(runtime Runtime) Option {
	return func(c *Controller) {
		if runtime != nil {
			c.runtime = runtime
		}
	}
}

// WithKeyMap replaces the key bindings.
func WithKeyMap(keys KeyMap) Option {
	return func(c *Controller) {
		c.keys = keys
	}
}

// WithLogger sets the diagnostics logger.
func WithLogger(log *logger.Logger) Option {
	return func(c *Controller) {
		c.log = log
	}
}
