// Package dropdown implements the floating-overlay controller behind menu
// style overlays: it anchors a panel to a trigger surface, keeps the panel
// inside the viewport, gates visibility until the placement has settled,
// moves roving focus across the panel's items and dismisses the overlay on
// outside clicks or Escape.
//
// The controller is driven by Bubble Tea messages. Hosts forward every
// message to Update, spread TriggerProps onto their trigger widget and call
// RenderMenu while building their view:
//
//	dd := dropdown.New(
//		dropdown.WithTrigger(&triggerRef),
//		dropdown.WithPanel(menu),
//		dropdown.WithLayer(layer),
//	)
//
//	func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
//		cmd, handled := m.dropdown.Update(msg)
//		if handled {
//			return m, cmd
//		}
//		...
//	}
//
//	func (m Model) View() string {
//		m.dropdown.RenderMenu(overlay.NewDescriptor(m.menu.View()))
//		return m.layer.Composite(base, m.width, m.height)
//	}
//
// # Positioning sequence
//
// Opening starts a small state machine driven by frame ticks:
//
//	awaiting-mount -> mounted -> measured-once -> measured-final -> settled
//
// The panel stays invisible (and ignores the pointer) until the settle delay
// after the third frame has elapsed. Closing drops straight back to idle and
// cancels every outstanding tick.
package dropdown
