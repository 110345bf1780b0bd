package components

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestButtonRendersLabelWithPadding(t *testing.T) {
	btn := NewButton("Go")
	require.Equal(t, " Go ", btn.View())
	require.Equal(t, "Go", btn.Label())
}

func TestButtonShowsPopupIndicator(t *testing.T) {
	btn := NewButton("File").WithAttrs(map[string]string{
		"aria-haspopup": "menu",
		"aria-expanded": "false",
	})
	require.Contains(t, btn.View(), IndicatorCollapsed)

	btn.WithAttrs(map[string]string{"aria-expanded": "true"})
	require.Contains(t, btn.View(), IndicatorExpanded)
	require.Equal(t, "menu", btn.Attr("aria-haspopup"))
}

func TestButtonAttrsAreCopied(t *testing.T) {
	attrs := map[string]string{"aria-controls": "m1"}
	btn := NewButton("File").WithAttrs(attrs)
	attrs["aria-controls"] = "m2"

	require.Equal(t, "m1", btn.Attr("aria-controls"))
}

func TestButtonStates(t *testing.T) {
	btn := NewButton("File").WithVariant(ButtonVariantGhost).WithDisabled(true)
	btn.SetFocused(true)

	require.True(t, btn.IsDisabled())
	require.True(t, btn.IsFocused())
	require.Contains(t, btn.View(), "File")
}
