package geom

import "strings"

// Side is the edge of the trigger the panel is anchored to.
type Side int

const (
	SideBottom Side = iota
	SideTop
	SideLeft
	SideRight
)

// String returns the lowercase side name.
func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "bottom"
	}
}

// IsVertical reports whether the panel sits above or below the trigger.
func (s Side) IsVertical() bool {
	return s == SideTop || s == SideBottom
}

// Opposite returns the side across the trigger.
func (s Side) Opposite() Side {
	switch s {
	case SideTop:
		return SideBottom
	case SideLeft:
		return SideRight
	case SideRight:
		return SideLeft
	default:
		return SideTop
	}
}

// ParseSide converts a side name. Unknown names report false.
func ParseSide(name string) (Side, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "top":
		return SideTop, true
	case "bottom":
		return SideBottom, true
	case "left":
		return SideLeft, true
	case "right":
		return SideRight, true
	}
	return SideBottom, false
}

// Align is the panel's alignment along the cross axis.
type Align int

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
)

// String returns the lowercase alignment name.
func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	default:
		return "start"
	}
}

// ParseAlign converts an alignment name. Unknown names report false.
func ParseAlign(name string) (Align, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "start":
		return AlignStart, true
	case "center":
		return AlignCenter, true
	case "end":
		return AlignEnd, true
	}
	return AlignStart, false
}

// Position is a panel's resolved screen coordinates together with the
// effective side and alignment, which may differ from the requested ones
// after collision resolution.
type Position struct {
	Top   int
	Left  int
	Side  Side
	Align Align
}
