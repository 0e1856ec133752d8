// Package teatour hosts tours inside bubbletea programs.
//
// # Overview
//
// The package adapts a [tea.Model] into a [tour.Host]. A [Registry] maps
// target identifiers to cell rectangles, a [Model] wraps the application's
// own model and composites the tour overlay over its view, and the tooltip
// renderer measures its output so the controller can converge on the real
// tooltip size.
//
// # Wiring
//
// The application reports its layout into the registry as it renders, wraps
// its root model, and attaches a controller:
//
//	reg := teatour.NewRegistry()
//	m := teatour.New(app, reg)
//	c, err := tour.New("onboarding", steps, tour.Config{}, callbacks, m)
//	if err != nil { ... }
//	m.Attach(c)
//	p := tea.NewProgram(m, tea.WithMouseCellMotion())
//
// Step targets are registry identifiers (strings). While a tour is active
// the wrapper owns input: enter or n advances, s skips, esc dismisses, and a
// mouse click lands on the tooltip (advance) or outside it (dismiss, when
// the configuration allows). Everything else is swallowed until the tour
// ends; window size messages always reach the inner model.
//
// # Measurement
//
// Tooltips are laid out against an estimated size first. After every
// controller call the wrapper renders the tooltip for the pending frame,
// measures it with [lipgloss.Width] and [lipgloss.Height], and reports the
// result back under the frame's epoch until the size settles. The whole
// cycle happens synchronously inside Update, so a frame never reaches the
// screen with a stale placement.
package teatour
