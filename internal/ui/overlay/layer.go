package overlay

import (
	"sort"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Layer is the overlay slot owned by the rendering root. Controllers mount
// descriptors into it while building their view; the root composites the
// layer over its base view once per frame.
type Layer struct {
	mounted []mount
}

type mount struct {
	key  string
	desc Descriptor
}

// NewLayer creates an empty overlay layer.
func NewLayer() *Layer {
	return &Layer{}
}

// Mount places a descriptor in the layer under key, replacing any descriptor
// previously mounted with the same key.
func (l *Layer) Mount(key string, desc Descriptor) {
	for i := range l.mounted {
		if l.mounted[i].key == key {
			l.mounted[i].desc = desc
			return
		}
	}
	l.mounted = append(l.mounted, mount{key: key, desc: desc})
}

// Unmount removes the descriptor mounted under key.
func (l *Layer) Unmount(key string) {
	for i := range l.mounted {
		if l.mounted[i].key == key {
			l.mounted = append(l.mounted[:i], l.mounted[i+1:]...)
			return
		}
	}
}

// Len returns the number of mounted descriptors.
func (l *Layer) Len() int {
	return len(l.mounted)
}

// Composite draws every visible mounted descriptor over base and clears the
// layer. Width and height bound the composited canvas.
func (l *Layer) Composite(base string, width, height int) string {
	if l == nil || len(l.mounted) == 0 {
		return base
	}

	ordered := make([]mount, len(l.mounted))
	copy(ordered, l.mounted)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].desc.Style.ZIndex < ordered[j].desc.Style.ZIndex
	})

	out := base
	for _, m := range ordered {
		if !m.desc.Style.Visible() || m.desc.Content == "" {
			continue
		}
		out = overlayAt(out, m.desc.Content, m.desc.Style.Left, m.desc.Style.Top, width, height)
	}

	l.mounted = l.mounted[:0]
	return out
}

// overlayAt draws overlay on top of base with its top-left corner at column x,
// row y. Both strings are treated as line grids; ANSI sequences are preserved.
func overlayAt(base, overlay string, x, y, width, height int) string {
	baseLines := strings.Split(base, "\n")
	for len(baseLines) < height {
		baseLines = append(baseLines, "")
	}

	overlayLines := strings.Split(overlay, "\n")
	overlayWidth := 0
	for _, line := range overlayLines {
		overlayWidth = max(overlayWidth, ansi.StringWidth(line))
	}

	for i, line := range overlayLines {
		row := y + i
		if row < 0 || row >= len(baseLines) || (height > 0 && row >= height) {
			continue
		}

		target := padRight(baseLines[row], max(width, x+overlayWidth))
		left := ansi.Truncate(target, max(x, 0), "")
		if w := ansi.StringWidth(left); w < x {
			left += strings.Repeat(" ", x-w)
		}

		cell := padRight(line, overlayWidth)
		right := ansi.TruncateLeft(target, x+overlayWidth, "")
		baseLines[row] = left + cell + right
	}

	return strings.Join(baseLines, "\n")
}

func padRight(s string, width int) string {
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
