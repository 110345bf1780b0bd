package geom

// Place computes the raw candidate position of a panel next to its trigger.
// Side and align are echoed unchanged. The result is a pure function of the
// inputs.
func Place(trigger, panel Rect, side Side, align Align, offset int) Position {
	pos := Position{Side: side, Align: align}

	switch side {
	case SideTop:
		pos.Top = trigger.Top - panel.Height - offset
		pos.Left = crossAxis(trigger.Left, trigger.Width, panel.Width, align)
	case SideLeft:
		pos.Left = trigger.Left - panel.Width - offset
		pos.Top = crossAxis(trigger.Top, trigger.Height, panel.Height, align)
	case SideRight:
		pos.Left = trigger.Right() + offset
		pos.Top = crossAxis(trigger.Top, trigger.Height, panel.Height, align)
	default:
		pos.Side = SideBottom
		pos.Top = trigger.Bottom() + offset
		pos.Left = crossAxis(trigger.Left, trigger.Width, panel.Width, align)
	}

	return pos
}

// crossAxis aligns a panel of size panelSize against a trigger spanning
// [start, start+triggerSize). Centering floors odd differences.
func crossAxis(start, triggerSize, panelSize int, align Align) int {
	switch align {
	case AlignCenter:
		return start + (triggerSize-panelSize)>>1
	case AlignEnd:
		return start + triggerSize - panelSize
	default:
		return start
	}
}
