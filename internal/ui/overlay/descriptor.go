// Package overlay provides the detached top-level layer floating panels are
// mounted into, outside the clipping of the host's normal layout.
package overlay

import "maps"

// LayerZ is the single stacking token every floating panel is drawn at.
const LayerZ = 50

// Style is the inline geometry and visibility applied to a mounted panel.
type Style struct {
	Position      string
	Top           int
	Left          int
	Opacity       float64
	PointerEvents string
	Transition    string
	ZIndex        int
}

// Visible reports whether the panel should be drawn and receive pointer input.
func (s Style) Visible() bool {
	return s.Opacity > 0 && s.PointerEvents != "none"
}

// Descriptor is an opaque panel description: rendered content plus attributes
// and inline style.
type Descriptor struct {
	Content string
	Attrs   map[string]string
	Style   Style
}

// NewDescriptor creates a descriptor around rendered content.
func NewDescriptor(content string) Descriptor {
	return Descriptor{Content: content, Attrs: map[string]string{}}
}

// Attr returns the named attribute or the empty string.
func (d Descriptor) Attr(name string) string {
	return d.Attrs[name]
}

// WithAttrs returns a copy with the given attributes merged over the existing
// ones. The receiver is left untouched.
func (d Descriptor) WithAttrs(attrs map[string]string) Descriptor {
	merged := make(map[string]string, len(d.Attrs)+len(attrs))
	maps.Copy(merged, d.Attrs)
	maps.Copy(merged, attrs)
	d.Attrs = merged
	return d
}

// WithStyle returns a copy carrying the given style.
func (d Descriptor) WithStyle(style Style) Descriptor {
	d.Attrs = maps.Clone(d.Attrs)
	d.Style = style
	return d
}
