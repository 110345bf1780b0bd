package demo

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/alexisbeaulieu97/tuikit/internal/ui/overlay"
)

// View renders the screen with any open menus composited on top.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	ctx := m.renderContext()
	rows := make([]string, m.height)
	rows[0] = titleStyle.Render("tuikit dropdown demo")

	for _, entry := range m.menus {
		bounds, ok := entry.ref.Bounds()
		if !ok || bounds.Top >= m.height {
			continue
		}
		rows[bounds.Top] = placeAt(rows[bounds.Top], bounds.Left, entry.button.ViewWithContext(ctx))
	}

	if m.height > 2 {
		rows[m.height-2] = m.statusLine()
	}
	if m.height > 1 {
		rows[m.height-1] = m.help.View(m.keys)
	}

	base := strings.Join(rows, "\n")

	for _, entry := range m.menus {
		content := entry.menu.ViewWithContext(ctx)
		entry.ctrl.RenderMenu(overlay.NewDescriptor(content))
	}
	return m.layer.Composite(base, m.width, m.height)
}

func (m Model) statusLine() string {
	if m.running != "" {
		return statusStyle.Render(m.spinner.View() + " " + m.status)
	}
	return statusStyle.Render(m.status)
}

// placeAt writes s into line starting at column col. Whatever the line held
// from col onwards is dropped.
func placeAt(line string, col int, s string) string {
	line = ansi.Truncate(line, col, "")
	if width := ansi.StringWidth(line); width < col {
		line += strings.Repeat(" ", col-width)
	}
	return line + s
}
