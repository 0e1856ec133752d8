package tour

import "github.com/usherkit/usher/pkg/tour/layout"

// Host is the rendering surface a tour runs on. The controller owns
// sequencing and placement; everything the host framework actually does —
// insert a floating layer, draw boxes and text, deliver input — sits behind
// this interface.
//
// All methods are called from the controller, which in turn is driven from
// the host's own UI loop, so implementations need no locking.
type Host interface {
	// ResolveGeometry returns the viewport rectangle of the given target.
	// A target that cannot be located in the live UI is a caller bug, not a
	// transient condition: implementations must return an error rather than
	// guess at geometry.
	ResolveGeometry(target TargetRef) (layout.Rect, error)

	// ViewportSize returns the current viewport dimensions in the same
	// coordinate space as ResolveGeometry.
	ViewportSize() layout.Size

	// ShowOverlay inserts the tour overlay, or replaces the existing one.
	// At most one overlay exists per tour; replacing must tear the previous
	// layer down before the new one appears.
	ShowOverlay(frame Frame)

	// RemoveOverlay tears down the overlay layer. Removing an absent
	// overlay is a no-op.
	RemoveOverlay()
}

// Frame is everything a host needs to render one layout pass of the current
// step. Frames are ephemeral: a new one is issued for every pass and none is
// retained by the controller.
type Frame struct {
	// Step is the step being shown; Index is its zero-based position and
	// StepCount the tour's total.
	Step      Step
	Index     int
	StepCount int

	// Placement is where the tooltip goes, including the highlight hole.
	Placement layout.Placement

	// TooltipSize is the size estimate this placement was computed with.
	TooltipSize layout.Size

	// Epoch identifies this pass. Hosts echo it back through
	// [Controller.ReportMeasuredTooltipSize] so measurements that arrive
	// after the tour has moved on are discarded.
	Epoch int

	// Config carries the presentation settings (labels, button visibility,
	// tap-outside behavior) the host honors while rendering.
	Config Config
}

// IsLast reports whether the frame shows the tour's final step, which is when
// hosts swap the next label for the finish label.
func (f Frame) IsLast() bool {
	return f.Index == f.StepCount-1
}
