package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ColourSet groups the colours for one semantic slot. Base is the fill,
// OnBase the text drawn on it and Muted a subdued accent.
type ColourSet struct {
	Base   lipgloss.AdaptiveColor
	OnBase lipgloss.AdaptiveColor
	Muted  lipgloss.AdaptiveColor
}

// Palette describes semantic colour slots used by components.
type Palette struct {
	Primary ColourSet
	Surface ColourSet
	Neutral ColourSet
	Danger  ColourSet
	Info    ColourSet
}

// PaletteSlot selects a semantic colour slot from a Palette.
type PaletteSlot func(Palette) ColourSet

// Predefined palette slots for use with Background and Foreground.
var (
	PalettePrimary PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSurface PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteNeutral PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
	PaletteDanger  PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteInfo    PaletteSlot = func(p Palette) ColourSet { return p.Info }
)

// MenuStyles are the resolved styles a Menu renders with.
type MenuStyles struct {
	Panel     lipgloss.Style
	Item      lipgloss.Style
	Focused   lipgloss.Style
	Disabled  lipgloss.Style
	Separator lipgloss.Style
}

// VariantRegistry maps component variants to their styling strategies.
type VariantRegistry struct {
	strategies map[any]StyleStrategy
}

// NewVariantRegistry creates an empty variant registry.
func NewVariantRegistry() *VariantRegistry {
	return &VariantRegistry{strategies: make(map[any]StyleStrategy)}
}

// Register adds a variant-to-strategy mapping.
func (vr *VariantRegistry) Register(variant any, strategy StyleStrategy) {
	vr.strategies[variant] = strategy
}

// Get returns the strategy for a variant, or nil.
func (vr *VariantRegistry) Get(variant any) StyleStrategy {
	if vr == nil {
		return nil
	}
	return vr.strategies[variant]
}

// Theme is an immutable styling theme. Build a new one rather than mutating
// a shared instance.
type Theme struct {
	Name     string
	Palette  Palette
	Border   lipgloss.Border
	Menu     MenuStyles
	Variants *VariantRegistry
}

// ThemeNames lists the built-in themes accepted by ThemeByName.
var ThemeNames = []string{"default", "dark"}

// ThemeByName returns a built-in theme.
func ThemeByName(name string) (Theme, error) {
	switch strings.ToLower(name) {
	case "", "default", "light":
		return DefaultTheme(), nil
	case "dark":
		return DarkTheme(), nil
	default:
		return Theme{}, fmt.Errorf("unknown theme %q", name)
	}
}

// DefaultTheme returns the standard theme.
func DefaultTheme() Theme {
	ac := func(light, dark string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}

	palette := Palette{
		Primary: ColourSet{
			Base:   ac("#3b82f6", "#60a5fa"),
			OnBase: ac("#f8fafc", "#0b1120"),
			Muted:  ac("#2563eb", "#1d4ed8"),
		},
		Surface: ColourSet{
			Base:   ac("#f9fafb", "#111827"),
			OnBase: ac("#111827", "#f9fafb"),
			Muted:  ac("#e5e7eb", "#1f2937"),
		},
		Neutral: ColourSet{
			Base:   ac("#9ca3af", "#4b5563"),
			OnBase: ac("#111827", "#f3f4f6"),
			Muted:  ac("#6b7280", "#6b7280"),
		},
		Danger: ColourSet{
			Base:   ac("#ef4444", "#f87171"),
			OnBase: ac("#f8fafc", "#1f2937"),
			Muted:  ac("#dc2626", "#b91c1c"),
		},
		Info: ColourSet{
			Base:   ac("#0ea5e9", "#38bdf8"),
			OnBase: ac("#f8fafc", "#0b1120"),
			Muted:  ac("#0284c7", "#0369a1"),
		},
	}

	return newTheme("default", palette)
}

// DarkTheme returns a theme with a darker surface.
func DarkTheme() Theme {
	palette := DefaultTheme().Palette
	palette.Surface = ColourSet{
		Base:   lipgloss.AdaptiveColor{Light: "#111827", Dark: "#0b1120"},
		OnBase: lipgloss.AdaptiveColor{Light: "#f9fafb", Dark: "#e5e7eb"},
		Muted:  lipgloss.AdaptiveColor{Light: "#1f2937", Dark: "#111827"},
	}
	palette.Neutral = ColourSet{
		Base:   lipgloss.AdaptiveColor{Light: "#475569", Dark: "#334155"},
		OnBase: lipgloss.AdaptiveColor{Light: "#e5e7eb", Dark: "#cbd5f5"},
		Muted:  lipgloss.AdaptiveColor{Light: "#374151", Dark: "#1f2937"},
	}

	return newTheme("dark", palette)
}

func newTheme(name string, palette Palette) Theme {
	theme := Theme{
		Name:     name,
		Palette:  palette,
		Border:   lipgloss.RoundedBorder(),
		Variants: NewVariantRegistry(),
	}
	theme.Menu = menuStyles(palette, theme.Border)
	registerButtonVariants(theme.Variants)
	registerBadgeVariants(theme.Variants)
	return theme
}

func menuStyles(p Palette, border lipgloss.Border) MenuStyles {
	return MenuStyles{
		Panel: lipgloss.NewStyle().
			Border(border).
			BorderForeground(p.Neutral.Base).
			Background(p.Surface.Base).
			Foreground(p.Surface.OnBase),
		Item: lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1),
		Focused: lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1).
			Background(p.Primary.Base).
			Foreground(p.Primary.OnBase).
			Bold(true),
		Disabled:  lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1).Faint(true),
		Separator: lipgloss.NewStyle().Foreground(p.Neutral.Muted),
	}
}

func registerButtonVariants(registry *VariantRegistry) {
	registry.Register(ButtonVariantPrimary, NewCompositeStrategy(Background(PalettePrimary), PaddingX(1)))
	registry.Register(ButtonVariantMuted, NewCompositeStrategy(Background(PaletteNeutral), PaddingX(1)))
	registry.Register(ButtonVariantDanger, NewCompositeStrategy(Background(PaletteDanger), PaddingX(1)))
	registry.Register(ButtonVariantGhost, NewCompositeStrategy(Foreground(PalettePrimary), PaddingX(1)))
}

func registerBadgeVariants(registry *VariantRegistry) {
	registry.Register(BadgeVariantPrimary, NewCompositeStrategy(Background(PalettePrimary), PaddingX(1)))
	registry.Register(BadgeVariantInfo, NewCompositeStrategy(Background(PaletteInfo), PaddingX(1)))
	registry.Register(BadgeVariantMuted, NewCompositeStrategy(Foreground(PaletteNeutral)))
}

// Background applies a semantic background colour and the matching
// foreground.
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a semantic foreground colour.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Base)
	}
}

// PaddingX pads left and right by n cells.
func PaddingX(n int) StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.PaddingLeft(n).PaddingRight(n)
	}
}

// Bold makes the text bold.
func Bold() StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.Bold(true)
	}
}

// Faint dims the text.
func Faint() StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.Faint(true)
	}
}
