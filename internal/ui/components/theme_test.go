package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

func TestThemeByName(t *testing.T) {
	for _, name := range ThemeNames {
		theme, err := ThemeByName(name)
		require.NoError(t, err)
		require.Equal(t, name, theme.Name)
		require.NotNil(t, theme.Variants)
	}

	_, err := ThemeByName("neon")
	require.Error(t, err)
}

func TestDarkThemeKeepsAccentColours(t *testing.T) {
	light := DefaultTheme()
	dark := DarkTheme()

	require.Equal(t, light.Palette.Primary, dark.Palette.Primary)
	require.NotEqual(t, light.Palette.Surface, dark.Palette.Surface)
}

func TestVariantRegistryNilSafe(t *testing.T) {
	var registry *VariantRegistry
	require.Nil(t, registry.Get(ButtonVariantPrimary))
}

func TestAddAppliersKeepsExistingStrategy(t *testing.T) {
	base := NewBaseComponent()
	base.SetAppliers(Bold())
	base.AddAppliers(Faint())

	style := base.ComputeStyle(DefaultTheme())
	require.True(t, style.GetBold())
	require.True(t, style.GetFaint())
}

func TestAddAppliersWrapsCustomStrategy(t *testing.T) {
	base := NewBaseComponent()
	base.SetStrategy(customStrategy{})
	base.AddAppliers(Faint())

	style := base.ComputeStyle(DefaultTheme())
	require.True(t, style.GetItalic())
	require.True(t, style.GetFaint())
}

type customStrategy struct{}

func (customStrategy) Apply(base lipgloss.Style, _ Theme) lipgloss.Style {
	return base.Italic(true)
}

func TestTextAndBadge(t *testing.T) {
	require.Equal(t, "hello", NewText("hello").View())
	require.Equal(t, "hel", NewText("hello").ViewWithContext(DefaultContext().WithWidth(3)))
	require.Equal(t, "ctrl+o", ShortcutBadge("ctrl+o").View())
	require.Empty(t, NewBadge("").View())
	require.Equal(t, " new ", NewBadge("new").WithVariant(BadgeVariantInfo).View())
	require.Equal(t, "bold", BoldText("bold").Content())
	require.Equal(t, "dim", MutedText("dim").View())
}

func TestDividerWidth(t *testing.T) {
	require.Equal(t, 40, lipgloss.Width(NewDivider().View()))
	require.Equal(t, 6, lipgloss.Width(NewDivider().ViewWithContext(DefaultContext().WithWidth(6))))
	require.Equal(t, "···", DottedDivider().WithWidth(3).View())
}
