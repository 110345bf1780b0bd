package geom

import (
	"errors"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// ErrNoVisualEnvironment is returned by probes that have nothing to measure.
var ErrNoVisualEnvironment = errors.New("no visual environment available")

// ScrollbarProbe measures a scrollable probe element, returning its outer
// width and the width left for content.
type ScrollbarProbe interface {
	Measure() (outer, inner int, err error)
}

// ScrollbarProbeFunc adapts a function to ScrollbarProbe.
type ScrollbarProbeFunc func() (outer, inner int, err error)

// Measure implements ScrollbarProbe.
func (f ScrollbarProbeFunc) Measure() (int, int, error) {
	return f()
}

// ScrollbarMetrics measures the scrollbar gutter once and caches the result
// for the rest of the process.
type ScrollbarMetrics struct {
	once  sync.Once
	probe ScrollbarProbe
	width int
}

// NewScrollbarMetrics creates metrics backed by the given probe. A nil probe
// always yields zero.
func NewScrollbarMetrics(probe ScrollbarProbe) *ScrollbarMetrics {
	return &ScrollbarMetrics{probe: probe}
}

// Width returns the cached gutter width, measuring on first use.
func (m *ScrollbarMetrics) Width() int {
	if m == nil {
		return 0
	}
	m.once.Do(func() {
		if m.probe == nil {
			return
		}
		outer, inner, err := m.probe.Measure()
		if err != nil || outer < inner {
			return
		}
		m.width = outer - inner
	})
	return m.width
}

var defaultScrollbarMetrics = NewScrollbarMetrics(TerminalScrollbarProbe{Fd: os.Stdout.Fd()})

// ScrollbarWidth returns the process-wide scrollbar width, or 0 when it
// cannot be measured.
func ScrollbarWidth() int {
	return defaultScrollbarMetrics.Width()
}

// ScrollTrack is the glyph scrollable regions draw in their gutter column.
const ScrollTrack = "│"

const probeContentWidth = 10

// TerminalScrollbarProbe renders an off-screen scrollable box with a gutter
// column and measures it. It only measures when Fd is a terminal.
type TerminalScrollbarProbe struct {
	Fd uintptr
}

// Measure implements ScrollbarProbe.
func (p TerminalScrollbarProbe) Measure() (int, int, error) {
	if !term.IsTerminal(int(p.Fd)) {
		return 0, 0, ErrNoVisualEnvironment
	}
	return measureScrollbox()
}

func measureScrollbox() (int, int, error) {
	content := strings.Repeat(" ", probeContentWidth) + "\n" + strings.Repeat(" ", probeContentWidth)
	gutter := lipgloss.Border{Right: ScrollTrack}
	box := lipgloss.NewStyle().
		BorderStyle(gutter).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(true).
		Render(content)

	return lipgloss.Width(box), lipgloss.Width(content), nil
}
