// Package components provides the theme-aware widgets that sit on either side
// of a dropdown: the trigger button and the menu panel, plus the small
// primitives they are built from.
//
// # Theme System
//
// Themes are immutable and passed explicitly through RenderContext:
//
//	theme := components.DarkTheme()
//	ctx := components.DefaultContext().WithTheme(theme)
//	output := menu.ViewWithContext(ctx)
//
// View() renders with the default theme.
//
// # Menus
//
// Menu implements dropdown.Panel and MenuItem implements dropdown.Item, so a
// menu can be handed straight to a dropdown controller:
//
//	menu := components.NewMenu(
//		components.NewMenuItem("Open", openCmd).WithShortcut("o"),
//		components.NewMenuItem("Save", saveCmd),
//		components.MenuSeparator(),
//		components.NewMenuItem("Delete", nil).WithDisabled(true),
//	)
//	ctrl := dropdown.New(dropdown.WithPanel(menu), dropdown.WithTrigger(&ref))
//
// Items carry role="menuitem" and, when inactive, aria-disabled="true".
// Separators carry role="separator" and are never focused.
//
// # Style Modifiers
//
// Components accept theme-aware style functions through WithAppliers:
//
//	badge := NewBadge("beta").WithAppliers(Background(PaletteInfo), PaddingX(1))
package components
