package dropdown

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUncontrolledToggleUpdatesRegistryAndCallback(t *testing.T) {
	var changes []bool
	f := newFixture(t, WithInstanceKey("menu-a"), WithOnOpenChange(func(open bool) {
		changes = append(changes, open)
	}))
	c := f.c

	open, ok := f.reg.Get("menu-a")
	require.True(t, ok)
	require.False(t, open)

	c.Toggle()
	require.True(t, c.IsOpen())
	open, _ = f.reg.Get("menu-a")
	require.True(t, open)

	c.Toggle()
	require.False(t, c.IsOpen())
	open, _ = f.reg.Get("menu-a")
	require.False(t, open)

	require.Equal(t, []bool{true, false}, changes)
}

func TestControlledOpenOnlyReportsRequests(t *testing.T) {
	external := false
	var changes []bool
	f := newFixture(t,
		WithControlledOpen(func() bool { return external }),
		WithOnOpenChange(func(open bool) { changes = append(changes, open) }),
	)
	c := f.c

	cmd := c.Toggle()
	require.Nil(t, cmd)
	require.False(t, c.IsOpen())
	require.Equal(t, []bool{true}, changes)
	require.Zero(t, c.PendingTimers())
	require.Zero(t, f.reg.Len())

	external = true
	cmd, _ = c.Update(nil)
	require.NotNil(t, cmd)
	require.True(t, c.IsOpen())
	require.True(t, c.Listening())
	require.Equal(t, 1, c.PendingTimers())

	external = false
	c.Update(nil)
	require.False(t, c.Listening())
	require.Zero(t, c.PendingTimers())
}

func TestControlledToggleReadsExternalState(t *testing.T) {
	external := true
	var changes []bool
	f := newFixture(t,
		WithControlledOpen(func() bool { return external }),
		WithOnOpenChange(func(open bool) { changes = append(changes, open) }),
	)

	f.c.Toggle()
	require.Equal(t, []bool{false}, changes)
}

func TestRegistryRestoresStateAcrossRebuilds(t *testing.T) {
	reg := NewInstanceRegistry()
	first := newFixture(t, WithInstanceKey("menu-b"), WithRegistry(reg))
	first.c.Open()
	first.c.Destroy()

	second := newFixture(t, WithInstanceKey("menu-b"), WithRegistry(reg))
	require.True(t, second.c.IsOpen())
	require.Zero(t, second.c.PendingTimers())

	pump(second.c, second.c.Init(), 50)
	require.True(t, second.c.IsPositioned())
	require.Equal(t, 1, reg.Len())
}

func TestDefaultOpenSeedsRegistry(t *testing.T) {
	f := newFixture(t, WithInstanceKey("menu-c"), WithDefaultOpen(true))

	open, ok := f.reg.Get("menu-c")
	require.True(t, ok)
	require.True(t, open)
	require.True(t, f.c.IsOpen())
}

func TestGeneratedKeysAreUnique(t *testing.T) {
	a := newFixture(t)
	b := newFixture(t)

	require.NotEqual(t, a.c.Key(), b.c.Key())
	require.NotEqual(t, a.c.MenuID(), b.c.MenuID())
	require.Contains(t, a.c.MenuID(), "dropdown-menu-")
}

func TestStateSnapshot(t *testing.T) {
	f := newFixture(t)
	require.Equal(t, State{IsOpen: false, FocusedIndex: -1, IsPositioned: false}, f.c.State())

	f.openSettled(t)
	require.Equal(t, State{IsOpen: true, FocusedIndex: 0, IsPositioned: true}, f.c.State())
}

func TestRegistryIsSafeForConcurrentUse(t *testing.T) {
	reg := NewInstanceRegistry()
	done := make(chan struct{})
	for i := range 8 {
		go func() {
			defer func() { done <- struct{}{} }()
			key := string(rune('a' + i))
			for j := range 100 {
				reg.Set(key, j%2 == 0)
				reg.Get(key)
			}
		}()
	}
	for range 8 {
		<-done
	}
	require.Equal(t, 8, reg.Len())
	require.Same(t, DefaultRegistry(), DefaultRegistry())
}
