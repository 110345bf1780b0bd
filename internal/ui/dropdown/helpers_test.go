package dropdown

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/tuikit/internal/logger"
	"github.com/alexisbeaulieu97/tuikit/internal/ui/geom"
	"github.com/alexisbeaulieu97/tuikit/internal/ui/overlay"
)

// immediateRuntime fires every frame and timer as soon as its command runs
// and records the requested delays.
type immediateRuntime struct {
	frames []time.Duration
	afters []time.Duration
}

func (r *immediateRuntime) Frame(interval time.Duration, msg tea.Msg) tea.Cmd {
	r.frames = append(r.frames, interval)
	return func() tea.Msg { return msg }
}

func (r *immediateRuntime) After(delay time.Duration, msg tea.Msg) tea.Cmd {
	r.afters = append(r.afters, delay)
	return func() tea.Msg { return msg }
}

type fakeItem struct {
	label     string
	role      string
	disabled  bool
	focused   bool
	activated int
}

func (i *fakeItem) Attr(name string) string {
	switch name {
	case AttrRole:
		if i.role != "" {
			return i.role
		}
		return RoleMenuItem
	case AttrAriaDisabled:
		if i.disabled {
			return "true"
		}
	}
	return ""
}

func (i *fakeItem) Activate() tea.Cmd {
	i.activated++
	return nil
}

func (i *fakeItem) SetFocused(focused bool) {
	i.focused = focused
}

type fakePanel struct {
	view  string
	items []*fakeItem
}

func (p *fakePanel) View() string {
	return p.view
}

func (p *fakePanel) Items() []Item {
	out := make([]Item, 0, len(p.items))
	for _, item := range p.items {
		out = append(out, item)
	}
	return out
}

func newFakePanel(labels ...string) *fakePanel {
	p := &fakePanel{}
	lines := make([]string, 0, len(labels))
	for _, label := range labels {
		p.items = append(p.items, &fakeItem{label: label})
		lines = append(lines, label+strings.Repeat(" ", 12-len(label)))
	}
	p.view = strings.Join(lines, "\n")
	return p
}

type fixture struct {
	c       *Controller
	rt      *immediateRuntime
	trigger *geom.Ref
	panel   *fakePanel
	layer   *overlay.Layer
	reg     *InstanceRegistry
}

// newFixture builds a controller with a 10x1 trigger at row 2, column 4, a
// 12x3 panel and an 80x24 viewport.
func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()

	f := &fixture{
		rt:      &immediateRuntime{},
		trigger: &geom.Ref{},
		panel:   newFakePanel("Open", "Save", "Quit"),
		layer:   overlay.NewLayer(),
		reg:     NewInstanceRegistry(),
	}
	f.trigger.Set(geom.NewRect(2, 4, 10, 1))

	base := []Option{
		WithTrigger(f.trigger),
		WithPanel(f.panel),
		WithLayer(f.layer),
		WithRuntime(f.rt),
		WithRegistry(f.reg),
		WithViewport(StaticViewport{Width: 80, Height: 24}),
		WithScrollbarMetrics(geom.NewScrollbarMetrics(nil)),
		WithLogger(logger.Nop()),
	}
	f.c = New(append(base, opts...)...)
	return f
}

// expand runs cmd and flattens batches into the messages they produce.
func expand(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, inner := range batch {
			out = append(out, expand(inner)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// deliver feeds msgs to the controller and returns the follow-up messages.
func deliver(c *Controller, msgs []tea.Msg) []tea.Msg {
	var next []tea.Msg
	for _, msg := range msgs {
		cmd, _ := c.Update(msg)
		next = append(next, expand(cmd)...)
	}
	return next
}

// pump keeps delivering until the controller goes quiet or limit messages
// were processed. It returns the number of messages delivered.
func pump(c *Controller, cmd tea.Cmd, limit int) int {
	queue := expand(cmd)
	steps := 0
	for len(queue) > 0 && steps < limit {
		msg := queue[0]
		queue = queue[1:]
		next, _ := c.Update(msg)
		queue = append(queue, expand(next)...)
		steps++
	}
	return steps
}

// openSettled opens the controller and runs the whole positioning sequence.
func (f *fixture) openSettled(t *testing.T) {
	t.Helper()
	pump(f.c, f.c.Open(), 50)
	if !f.c.IsPositioned() {
		t.Fatalf("controller did not settle, phase %s", f.c.phase)
	}
}

func keyMsg(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}
