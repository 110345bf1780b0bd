package components

import (
	"maps"

	"github.com/charmbracelet/lipgloss"
)

// ButtonVariant specifies the visual style of a button.
type ButtonVariant int

const (
	ButtonVariantPrimary ButtonVariant = iota
	ButtonVariantMuted
	ButtonVariantDanger
	ButtonVariantGhost
)

// Popup indicators drawn after the label of a button that controls a menu.
const (
	IndicatorCollapsed = "▾"
	IndicatorExpanded  = "▴"
)

// Button is a focusable button. Spreading dropdown trigger attributes onto
// it with WithAttrs turns it into a menu trigger.
type Button struct {
	BaseComponent
	label    string
	variant  ButtonVariant
	disabled bool
	focused  bool
	attrs    map[string]string
}

// NewButton creates a primary button with the given label.
func NewButton(label string) *Button {
	return &Button{
		BaseComponent: NewBaseComponent(),
		label:         label,
		variant:       ButtonVariantPrimary,
		attrs:         map[string]string{},
	}
}

// View renders the button.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button with the given theme context.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	label := b.label
	if b.attrs["aria-haspopup"] == "menu" {
		indicator := IndicatorCollapsed
		if b.attrs["aria-expanded"] == "true" {
			indicator = IndicatorExpanded
		}
		label += " " + indicator
	}
	return b.computeStyle(ctx.Theme).Render(label)
}

func (b *Button) computeStyle(theme Theme) lipgloss.Style {
	style := b.ComputeStyle(theme)
	if strategy := theme.Variants.Get(b.variant); strategy != nil {
		style = strategy.Apply(style, theme)
	}
	if b.disabled {
		style = style.Faint(true)
	}
	if b.focused {
		style = style.Bold(true).Underline(true)
	}
	return style
}

// WithVariant sets the button variant.
func (b *Button) WithVariant(variant ButtonVariant) *Button {
	b.variant = variant
	return b
}

// WithDisabled sets the disabled state.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.disabled = disabled
	return b
}

// WithAttrs merges attributes onto the button.
func (b *Button) WithAttrs(attrs map[string]string) *Button {
	merged := maps.Clone(b.attrs)
	if merged == nil {
		merged = map[string]string{}
	}
	maps.Copy(merged, attrs)
	b.attrs = merged
	return b
}

// WithAppliers applies theme-based style modifiers.
func (b *Button) WithAppliers(appliers ...StyleFunc) *Button {
	b.AddAppliers(appliers...)
	return b
}

// Attr returns the named attribute or the empty string.
func (b *Button) Attr(name string) string {
	return b.attrs[name]
}

// SetFocused marks the button as focused.
func (b *Button) SetFocused(focused bool) {
	b.focused = focused
}

// IsFocused reports whether the button has focus.
func (b *Button) IsFocused() bool {
	return b.focused
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

// IsDisabled returns true if the button is disabled.
func (b *Button) IsDisabled() bool {
	return b.disabled
}
