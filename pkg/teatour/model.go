package teatour

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/usherkit/usher/pkg/errors"
	"github.com/usherkit/usher/pkg/tour"
	"github.com/usherkit/usher/pkg/tour/layout"
)

// Model wraps an application model and hosts a tour over it. It implements
// both [tea.Model] and [tour.Host]: controller calls land here, and the
// overlay is composited over the inner model's view.
//
// Model is a pointer model. Pass the same *Model to [tea.NewProgram] that
// the controller was attached to.
type Model struct {
	inner      tea.Model
	registry   *Registry
	controller *tour.Controller

	width  int
	height int

	frame   *tour.Frame
	tooltip string
	err     error
}

// New wraps inner with tour hosting backed by the given registry.
func New(inner tea.Model, registry *Registry) *Model {
	return &Model{inner: inner, registry: registry}
}

// Attach binds the controller driving this host. It must be called before
// the program runs; construction is two-phase because the controller itself
// needs the host at [tour.New] time.
func (m *Model) Attach(c *tour.Controller) { m.controller = c }

// Inner returns the wrapped application model, updated by messages the tour
// let through.
func (m *Model) Inner() tea.Model { return m.inner }

// Err returns the most recent tour error, if any. Target resolution
// failures surface here because key handling inside Update has no caller to
// return them to.
func (m *Model) Err() error { return m.err }

// StartTourMsg starts the attached tour when it reaches the wrapper. Inner
// models emit it, typically after their first layout pass has populated the
// registry, to launch the tour from inside the program loop.
type StartTourMsg struct{}

// StartTour starts the attached tour and settles its first layout pass.
func (m *Model) StartTour() error {
	if m.controller == nil {
		return errors.New(errors.ErrCodeInvalidConfig, "no controller attached")
	}
	err := m.controller.Start()
	m.settle()
	return err
}

// =============================================================================
// tour.Host
// =============================================================================

// ResolveGeometry looks the target up in the registry. Targets must be the
// string identifiers the application registered.
func (m *Model) ResolveGeometry(target tour.TargetRef) (layout.Rect, error) {
	id, ok := target.(string)
	if !ok {
		return layout.Rect{}, errors.New(errors.ErrCodeInvalidStep,
			"target %v is not a registry identifier", target)
	}
	rect, ok := m.registry.Rect(id)
	if !ok {
		return layout.Rect{}, errors.New(errors.ErrCodeTargetNotFound,
			"target %q is not registered", id)
	}
	return rect, nil
}

// ViewportSize returns the terminal size from the last window size message.
func (m *Model) ViewportSize() layout.Size {
	return layout.Size{Width: float64(m.width), Height: float64(m.height)}
}

// ShowOverlay stores the frame for the next View pass, replacing any
// previous one.
func (m *Model) ShowOverlay(frame tour.Frame) {
	m.frame = &frame
}

// RemoveOverlay drops the overlay.
func (m *Model) RemoveOverlay() {
	m.frame = nil
	m.tooltip = ""
}

// =============================================================================
// tea.Model
// =============================================================================

func (m *Model) Init() tea.Cmd {
	return m.inner.Init()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		// The inner model sees the size first: applications re-register
		// their target rects from this message, and relayout must read
		// the updated registry.
		model, cmd := m.forward(msg)
		if m.active() {
			m.err = m.controller.Relayout()
			m.settle()
		}
		return model, cmd

	case StartTourMsg:
		m.err = m.StartTour()
		return m, nil

	case tea.KeyMsg:
		if !m.active() {
			return m.forward(msg)
		}
		switch msg.String() {
		case "enter", "n":
			m.err = m.controller.Advance()
		case "s":
			m.controller.Skip()
		case "esc":
			m.controller.Dismiss()
		}
		// Remaining keys are swallowed while the tour owns input.
		m.settle()
		return m, nil

	case tea.MouseMsg:
		if !m.active() {
			return m.forward(msg)
		}
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.click(msg.X, msg.Y)
			m.settle()
		}
		return m, nil
	}

	return m.forward(msg)
}

func (m *Model) View() string {
	view := m.inner.View()
	if m.frame == nil {
		return view
	}
	frame := *m.frame

	view = drawRing(view, frame.Placement.Hole)

	tooltip := m.tooltip
	if tooltip == "" {
		tooltip = renderTooltip(frame)
	}
	left, top := int(frame.Placement.Left), int(frame.Placement.Top)
	view = overlayAt(view, tooltip, left, top)

	glyph, ax, ay := renderArrow(frame, lipgloss.Height(tooltip))
	if ay >= 0 && ay < m.height {
		view = overlayAt(view, glyph, ax, ay)
	}
	return view
}

// =============================================================================
// Internals
// =============================================================================

func (m *Model) active() bool {
	return m.controller != nil && m.controller.Active()
}

// forward passes msg to the inner model.
func (m *Model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	inner, cmd := m.inner.Update(msg)
	m.inner = inner
	return m, cmd
}

// click routes a mouse press: on the tooltip it advances, outside both the
// tooltip and the hole it dismisses when the configuration allows.
func (m *Model) click(x, y int) {
	frame := m.frame
	if frame == nil {
		return
	}
	fx, fy := float64(x), float64(y)

	box := layout.Rect{
		Left:   frame.Placement.Left,
		Top:    frame.Placement.Top,
		Width:  float64(lipgloss.Width(m.tooltip)),
		Height: float64(lipgloss.Height(m.tooltip)),
	}
	switch {
	case box.Contains(fx, fy):
		m.err = m.controller.Advance()
	case frame.Placement.Hole.Contains(fx, fy):
		// Clicks on the highlighted target are swallowed.
	case frame.Config.DismissOnTapOutside:
		m.controller.Dismiss()
	}
}

// settle runs the render→measure→re-layout cycle until the tooltip size the
// controller laid out against matches what actually renders. An identical
// measurement is a controller no-op, so the cycle ends after at most one
// re-layout.
func (m *Model) settle() {
	for i := 0; i < 4 && m.frame != nil; i++ {
		frame := *m.frame
		m.tooltip = renderTooltip(frame)
		size := layout.Size{
			Width:  float64(lipgloss.Width(m.tooltip)),
			Height: float64(lipgloss.Height(m.tooltip)),
		}
		if size == frame.TooltipSize {
			return
		}
		if err := m.controller.ReportMeasuredTooltipSize(frame.Epoch, size); err != nil {
			m.err = err
			return
		}
	}
}
