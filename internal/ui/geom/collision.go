package geom

// CollisionOptions tunes viewport collision resolution.
type CollisionOptions struct {
	// Padding is the gap kept between the panel and every viewport edge.
	Padding int
	// ScrollbarWidth is reserved on the right edge in addition to Padding.
	ScrollbarWidth int
	// SideOffset is the trigger gap, reused when a panel flips sides.
	SideOffset int
}

// SafeArea is the inset from each viewport edge a panel must respect.
type SafeArea struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// SafeArea returns the per-edge insets. Scrollbars shrink the usable width, so
// the right edge reserves the scrollbar in addition to the padding.
func (o CollisionOptions) SafeArea() SafeArea {
	right := o.Padding
	if reserved := o.ScrollbarWidth + o.Padding; reserved > right {
		right = reserved
	}
	return SafeArea{Top: o.Padding, Right: right, Bottom: o.Padding, Left: o.Padding}
}

// Resolve adjusts a raw position so the panel stays inside the viewport.
//
// A panel that clips on the side it is anchored to is first flipped to the
// opposite side of the trigger, and only then clamped. Clamping a panel
// against its trigger can detach it visually; flipping keeps it adjacent.
// A final clamp pass keeps the panel on-screen even when neither side fits.
func Resolve(raw Position, trigger, panel Rect, vp ViewportSize, opts CollisionOptions) Position {
	safe := opts.SafeArea()
	pos := raw

	minLeft := safe.Left
	maxLeft := vp.Width - panel.Width - safe.Right
	minTop := safe.Top
	maxTop := vp.Height - panel.Height - safe.Bottom

	if pos.Side.IsVertical() {
		switch {
		case pos.Top < minTop:
			if pos.Side == SideTop {
				pos.Side = SideBottom
				pos.Top = trigger.Bottom() + opts.SideOffset
			} else {
				pos.Top = minTop
			}
		case pos.Top > maxTop:
			if pos.Side == SideBottom {
				pos.Side = SideTop
				pos.Top = trigger.Top - panel.Height - opts.SideOffset
			} else {
				pos.Top = maxTop
			}
		}
	} else {
		switch {
		case pos.Left < minLeft && pos.Side == SideLeft:
			pos.Side = SideRight
			pos.Left = trigger.Right() + opts.SideOffset
		case pos.Left > maxLeft && pos.Side == SideRight:
			pos.Side = SideLeft
			pos.Left = trigger.Left - panel.Width - opts.SideOffset
		}
	}

	pos.Left = clamp(pos.Left, minLeft, maxLeft)
	pos.Top = clamp(pos.Top, minTop, maxTop)

	return pos
}

// clamp confines v to [lo, hi]. When the range is inverted the lower bound
// wins so the leading edge stays visible.
func clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
