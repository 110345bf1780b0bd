package dropdown

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func TestTriggerPropsReflectState(t *testing.T) {
	f := newFixture(t)
	c := f.c

	props := c.TriggerProps()
	require.Equal(t, "menu", props.Attrs["aria-haspopup"])
	require.Equal(t, "false", props.Attrs["aria-expanded"])
	require.Equal(t, c.MenuID(), props.Attrs["aria-controls"])

	props.OnClick()
	require.True(t, c.IsOpen())
	require.Equal(t, "true", c.TriggerProps().Attrs["aria-expanded"])

	c.TriggerProps().OnClick()
	require.False(t, c.IsOpen())
}

func TestTriggerKeyOpens(t *testing.T) {
	f := newFixture(t)
	c := f.c

	_, handled := c.TriggerProps().OnKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	require.False(t, handled)
	require.False(t, c.IsOpen())

	cmd, handled := c.TriggerProps().OnKey(keyMsg(tea.KeyEnter))
	require.True(t, handled)
	require.NotNil(t, cmd)
	require.True(t, c.IsOpen())

	_, handled = c.TriggerProps().OnKey(keyMsg(tea.KeyEnter))
	require.False(t, handled)
	require.True(t, c.IsOpen())
}

func TestTriggerSpaceOpens(t *testing.T) {
	f := newFixture(t)

	_, handled := f.c.TriggerProps().OnKey(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	require.True(t, handled)
	require.True(t, f.c.IsOpen())
}

func TestMenuPropsCarryIdentityAndStyle(t *testing.T) {
	f := newFixture(t)
	c := f.c
	f.openSettled(t)

	props := c.MenuProps()
	require.Equal(t, c.MenuID(), props.Attrs["id"])
	require.Equal(t, "menu", props.Attrs["role"])
	require.True(t, props.Style.Visible())

	_, handled := props.OnKey(keyMsg(tea.KeyEnd))
	require.True(t, handled)
	require.Equal(t, 2, c.FocusedIndex())
}
