package dropdown

import (
	"strings"

	"github.com/alexisbeaulieu97/tuikit/internal/ui/overlay"
)

const (
	// MoveTransition animates panel moves after the first placement.
	MoveTransition = "top 120ms, left 120ms"
	noTransition   = "none"
)

// menuStyle is the inline style for the panel root. The panel stays hidden
// and ignores pointer input until its placement is trusted. Only moves after
// the first placement animate.
func (c *Controller) menuStyle() overlay.Style {
	style := overlay.Style{
		Position:      "fixed",
		Top:           c.position.Top,
		Left:          c.position.Left,
		Opacity:       0,
		PointerEvents: "none",
		Transition:    noTransition,
		ZIndex:        overlay.LayerZ,
	}
	if c.positioned {
		style.Opacity = 1
		style.PointerEvents = "auto"
	}
	if c.repositions > 0 {
		style.Transition = MoveTransition
	}
	return style
}

// RenderMenu wraps panel content for the detached layer and mounts it. The
// caller's descriptor is not modified. It returns false, rendering nothing,
// when the overlay is closed or destroyed, the content is blank or no
// layer is available.
func (c *Controller) RenderMenu(content overlay.Descriptor) (overlay.Descriptor, bool) {
	if c.destroyed || !c.IsOpen() {
		return overlay.Descriptor{}, false
	}
	if strings.TrimSpace(content.Content) == "" {
		if !c.emptyWarned {
			c.emptyWarned = true
			c.log.Warn("dropdown menu content is empty, nothing to render")
		}
		return overlay.Descriptor{}, false
	}
	if c.layer == nil {
		return overlay.Descriptor{}, false
	}

	props := c.MenuProps()
	desc := content.WithAttrs(props.Attrs).WithStyle(props.Style)
	c.layer.Mount(c.menuID, desc)
	return desc, true
}
