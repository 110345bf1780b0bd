package dropdown

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func TestRovingFocusSkipsDisabledItems(t *testing.T) {
	f := newFixture(t)
	f.panel = newFakePanel("Cut", "Copy", "Paste", "Delete")
	f.panel.items[1].disabled = true
	f.c.SetPanel(f.panel)
	f.c.Open()

	enabled := []*fakeItem{f.panel.items[0], f.panel.items[2], f.panel.items[3]}

	_, handled := f.c.Update(keyMsg(tea.KeyHome))
	require.True(t, handled)
	visited := []int{f.c.FocusedIndex()}
	for range 3 {
		f.c.Update(keyMsg(tea.KeyDown))
		visited = append(visited, f.c.FocusedIndex())
	}

	require.Equal(t, []int{0, 1, 2, 0}, visited)
	require.True(t, enabled[0].focused)
	require.False(t, enabled[2].focused)
	require.False(t, f.panel.items[1].focused)
}

func TestRovingFocusWrapsAround(t *testing.T) {
	f := newFixture(t)
	c := f.c
	c.Open()
	c.Update(keyMsg(tea.KeyHome))
	n := len(f.panel.items)

	for range n {
		c.Update(keyMsg(tea.KeyDown))
	}
	require.Equal(t, 0, c.FocusedIndex())

	c.Update(keyMsg(tea.KeyUp))
	require.Equal(t, n-1, c.FocusedIndex())

	c.Update(keyMsg(tea.KeyRight))
	require.Equal(t, 0, c.FocusedIndex())

	c.Update(keyMsg(tea.KeyLeft))
	require.Equal(t, n-1, c.FocusedIndex())
}

func TestRovingFocusFromNothingFocused(t *testing.T) {
	f := newFixture(t)
	c := f.c

	c.Open()
	c.Update(keyMsg(tea.KeyDown))
	require.Equal(t, 0, c.FocusedIndex())

	c.Close()
	c.Open()
	require.Equal(t, -1, c.FocusedIndex())
	c.Update(keyMsg(tea.KeyUp))
	require.Equal(t, 2, c.FocusedIndex())
}

func TestHomeAndEndJump(t *testing.T) {
	f := newFixture(t)
	c := f.c
	c.Open()

	c.Update(keyMsg(tea.KeyEnd))
	require.Equal(t, 2, c.FocusedIndex())
	require.True(t, f.panel.items[2].focused)

	c.Update(keyMsg(tea.KeyHome))
	require.Equal(t, 0, c.FocusedIndex())
	require.False(t, f.panel.items[2].focused)
	require.True(t, f.panel.items[0].focused)
}

func TestFocusFollowsShrinkingItemList(t *testing.T) {
	f := newFixture(t)
	c := f.c
	c.Open()
	c.Update(keyMsg(tea.KeyEnd))

	f.panel.items = f.panel.items[:2]
	c.Update(keyMsg(tea.KeyDown))
	require.Equal(t, 0, c.FocusedIndex())
}

func TestNavigationWithNoItemsIsConsumedNoop(t *testing.T) {
	f := newFixture(t)
	f.panel.items = nil
	c := f.c
	c.Open()

	for _, k := range []tea.KeyType{tea.KeyDown, tea.KeyUp, tea.KeyHome, tea.KeyEnd} {
		cmd, handled := c.Update(keyMsg(k))
		require.True(t, handled)
		require.Nil(t, cmd)
		require.Equal(t, -1, c.FocusedIndex())
	}
}

func TestEnterActivatesFocusedItem(t *testing.T) {
	f := newFixture(t)
	c := f.c
	c.Open()

	_, handled := c.Update(keyMsg(tea.KeyEnter))
	require.False(t, handled)

	c.Update(keyMsg(tea.KeyDown))
	c.Update(keyMsg(tea.KeyDown))
	_, handled = c.Update(keyMsg(tea.KeyEnter))
	require.True(t, handled)
	require.Equal(t, 1, f.panel.items[1].activated)
	require.Zero(t, f.panel.items[0].activated)
}

func TestEscapeClosesWhenEnabled(t *testing.T) {
	f := newFixture(t)
	c := f.c
	c.Open()

	_, handled := c.Update(keyMsg(tea.KeyEsc))
	require.True(t, handled)
	require.False(t, c.IsOpen())
}

func TestEscapeIgnoredWhenDisabled(t *testing.T) {
	f := newFixture(t, WithCloseOnEscape(false))
	c := f.c
	c.Open()

	_, handled := c.Update(keyMsg(tea.KeyEsc))
	require.False(t, handled)
	require.True(t, c.IsOpen())

	// The panel's own key handler still dismisses.
	_, handled = c.MenuProps().OnKey(keyMsg(tea.KeyEsc))
	require.True(t, handled)
	require.False(t, c.IsOpen())
}

func TestTabClosesWithoutTrappingFocus(t *testing.T) {
	f := newFixture(t)
	c := f.c
	c.Open()

	_, handled := c.Update(keyMsg(tea.KeyTab))
	require.False(t, handled)
	require.False(t, c.IsOpen())
}

func TestKeysIgnoredWhileClosed(t *testing.T) {
	f := newFixture(t)
	c := f.c

	_, handled := c.Update(keyMsg(tea.KeyDown))
	require.False(t, handled)
	require.Equal(t, -1, c.FocusedIndex())

	_, handled = c.Update(keyMsg(tea.KeyRunes))
	require.False(t, handled)
}

func TestUnboundKeysPassThrough(t *testing.T) {
	f := newFixture(t)
	c := f.c
	c.Open()

	_, handled := c.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	require.False(t, handled)
	require.True(t, c.IsOpen())
}

func TestFocusResetsAsynchronouslyAfterClose(t *testing.T) {
	f := newFixture(t)
	c := f.c
	f.openSettled(t)
	require.Equal(t, 0, c.FocusedIndex())

	msgs := expand(c.Close())
	require.Equal(t, 0, c.FocusedIndex())

	deliver(c, msgs)
	require.Equal(t, -1, c.FocusedIndex())
	require.False(t, f.panel.items[0].focused)
}

func TestStaleFocusResetDoesNotClearReopenedMenu(t *testing.T) {
	f := newFixture(t)
	c := f.c
	f.openSettled(t)

	msgs := expand(c.Close())
	c.Open()
	c.Update(keyMsg(tea.KeyDown))

	deliver(c, msgs)
	require.Equal(t, 0, c.FocusedIndex())
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()

	require.Len(t, keys.ShortHelp(), 4)
	require.Len(t, keys.FullHelp(), 2)
	require.Equal(t, "esc", keys.Close.Help().Key)
}
