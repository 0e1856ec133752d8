package tour

import (
	"time"

	"github.com/google/uuid"

	"github.com/usherkit/usher/pkg/errors"
	"github.com/usherkit/usher/pkg/observability"
	"github.com/usherkit/usher/pkg/tour/layout"
)

// Callbacks are the application-facing notifications of a tour. All fields
// are optional; nil callbacks are skipped.
type Callbacks struct {
	// OnComplete fires when the final step is advanced past. It fires before
	// OnFinish, exactly once per completed run.
	OnComplete func()

	// OnFinish fires after OnComplete on completion. It exists alongside
	// OnComplete for callers migrating between the two; both always fire.
	OnFinish func()

	// OnSkip fires when the user skips the tour.
	OnSkip func()

	// OnAdvance is the legacy global advance channel. On every non-final
	// advance it fires after the leaving step's own OnAdvance callback; the
	// two channels are independent and both always fire. New code should
	// prefer per-step callbacks.
	OnAdvance func()
}

// Controller owns a tour's ordered steps and drives its lifecycle:
// idle → showing step i → (showing step i+1 | completed | dismissed). It is
// the sole mutator of the tour's state.
//
// Controllers are not safe for concurrent use. Like the hosts they drive,
// they expect every call on the host's single UI loop; the epoch check in
// [Controller.ReportMeasuredTooltipSize] handles the one source of
// out-of-order delivery (measurements scheduled by a previous render pass).
type Controller struct {
	id        string
	steps     []Step
	config    Config
	callbacks Callbacks
	host      Host

	active      bool
	current     int
	epoch       int
	tooltipSize layout.Size
	runID       string
	startedAt   time.Time
}

// New constructs a tour over the given steps. The id names the tour in
// progress records and analytics events. A zero config takes DefaultConfig.
//
// Construction fails with an INVALID_CONFIG or INVALID_STEP error when the
// step list is empty, a step has no target, or the config would leave the
// user unable to advance or leave the tour.
func New(id string, steps []Step, config Config, callbacks Callbacks, host Host) (*Controller, error) {
	if err := errors.ValidateTourID(id); err != nil {
		return nil, err
	}
	if host == nil {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "tour %q: host is required", id)
	}
	if len(steps) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "tour %q: at least one step is required", id)
	}
	for i, s := range steps {
		if s.Target == nil {
			return nil, errors.New(errors.ErrCodeInvalidStep, "tour %q: step %d has no target", id, i)
		}
	}
	config = config.withDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Controller{
		id:        id,
		steps:     append([]Step(nil), steps...),
		config:    config,
		callbacks: callbacks,
		host:      host,
	}, nil
}

// ID returns the tour's identifier.
func (c *Controller) ID() string { return c.id }

// Active reports whether the tour is currently showing a step.
func (c *Controller) Active() bool { return c.active }

// CurrentIndex returns the zero-based index of the step being shown. It is 0
// when the tour is inactive.
func (c *Controller) CurrentIndex() int { return c.current }

// CurrentStep returns the step being shown, or false when inactive.
func (c *Controller) CurrentStep() (Step, bool) {
	if !c.active {
		return Step{}, false
	}
	return c.steps[c.current], true
}

// StepCount returns the number of steps in the tour.
func (c *Controller) StepCount() int { return len(c.steps) }

// Epoch returns the current render epoch. Each Start, Advance, Skip, and
// Dismiss begins a new epoch.
func (c *Controller) Epoch() int { return c.epoch }

// RunID returns the identifier of the current (or most recent) run. Empty
// before the first Start.
func (c *Controller) RunID() string { return c.runID }

// Config returns the tour's effective configuration, defaults applied.
func (c *Controller) Config() Config { return c.config }

// Start activates the tour at step 0 and renders it. Starting an active tour
// is a deliberate no-op; see the package documentation for the restart
// policy. Start fails with TARGET_NOT_FOUND when step 0's target cannot be
// resolved, leaving the tour inactive.
func (c *Controller) Start() error {
	if c.active {
		return nil
	}

	c.active = true
	c.current = 0
	c.epoch++
	c.tooltipSize = c.config.InitialTooltipSize
	c.runID = uuid.NewString()
	c.startedAt = time.Now()

	observability.Tour().OnTourStart(c.id, c.runID, len(c.steps))

	if err := c.show(); err != nil {
		c.teardown()
		return err
	}
	return nil
}

// Advance moves the tour forward one step. On the final step it completes
// the tour instead: the step's OnAdvance fires with the step's own tag, the
// overlay is torn down, and OnComplete then OnFinish fire exactly once each.
//
// On earlier steps the next step is rendered first, then the leaving step's
// OnAdvance fires with the tag of the step being entered (the historical
// post-increment rule), then the legacy global OnAdvance channel fires.
//
// Advancing an inactive tour is a no-op. A step whose target cannot be
// resolved aborts the call with TARGET_NOT_FOUND and tears the tour down.
func (c *Controller) Advance() error {
	if !c.active {
		return nil
	}

	c.epoch++
	leaving := c.steps[c.current]

	if c.current == len(c.steps)-1 {
		tag := tagAt(c.steps, c.current)
		if leaving.OnAdvance != nil {
			leaving.OnAdvance(tag)
		}
		observability.Tour().OnStepAdvance(c.id, c.runID, tag)

		c.teardown()
		if c.callbacks.OnComplete != nil {
			c.callbacks.OnComplete()
		}
		if c.callbacks.OnFinish != nil {
			c.callbacks.OnFinish()
		}
		observability.Tour().OnTourComplete(c.id, c.runID, time.Since(c.startedAt))
		return nil
	}

	// The last measured size carries over as the next step's first-pass
	// estimate; only Start falls back to the configured estimate.
	c.current++
	if err := c.show(); err != nil {
		c.teardown()
		return err
	}

	tag := tagAt(c.steps, c.current)
	if leaving.OnAdvance != nil {
		leaving.OnAdvance(tag)
	}
	observability.Tour().OnStepAdvance(c.id, c.runID, tag)
	if c.callbacks.OnAdvance != nil {
		c.callbacks.OnAdvance()
	}
	return nil
}

// Skip ends the tour early and fires OnSkip. Per-step callbacks do not fire.
// Skipping an inactive tour is a no-op.
func (c *Controller) Skip() {
	if !c.active {
		return
	}
	at := c.current
	c.epoch++
	c.teardown()
	if c.callbacks.OnSkip != nil {
		c.callbacks.OnSkip()
	}
	observability.Tour().OnTourSkip(c.id, c.runID, at)
}

// Dismiss tears the tour down without firing any callbacks. It serves both
// explicit dismissal and tap-outside. Dismissing an inactive tour is a
// no-op. A later Start begins again from step 0.
func (c *Controller) Dismiss() {
	if !c.active {
		return
	}
	at := c.current
	c.epoch++
	c.teardown()
	observability.Tour().OnTourDismiss(c.id, c.runID, at)
}

// Relayout recomputes placement for the current step against the host's
// current viewport, without changing epoch or position. Hosts call it when
// the viewport itself changes, typically on terminal resize. Relayout on an
// inactive tour is a no-op. A target that can no longer be resolved aborts
// the call with TARGET_NOT_FOUND and tears the tour down.
func (c *Controller) Relayout() error {
	if !c.active {
		return nil
	}
	if err := c.show(); err != nil {
		c.teardown()
		return err
	}
	return nil
}

// ReportMeasuredTooltipSize delivers the actual rendered tooltip size for
// the render pass identified by epoch. Stale epochs — the tour advanced,
// restarted, or ended since the pass was issued — are silently ignored. A
// fresh measurement matching the current estimate is also a no-op, which is
// what terminates the render→measure→re-render cycle. A target that vanished
// between passes aborts with TARGET_NOT_FOUND and tears the tour down.
func (c *Controller) ReportMeasuredTooltipSize(epoch int, size layout.Size) error {
	if !c.active || epoch != c.epoch {
		observability.Tour().OnMeasure(c.id, c.runID, c.current, size.Width, size.Height, true)
		return nil
	}
	observability.Tour().OnMeasure(c.id, c.runID, c.current, size.Width, size.Height, false)

	if size == c.tooltipSize {
		return nil
	}
	c.tooltipSize = size
	if err := c.show(); err != nil {
		c.teardown()
		return err
	}
	return nil
}

// show resolves the current step's target, computes placement with the
// current size estimate, and hands the frame to the host.
func (c *Controller) show() error {
	step := c.steps[c.current]

	target, err := c.host.ResolveGeometry(step.Target)
	if err != nil {
		return errors.Wrap(errors.ErrCodeTargetNotFound, err,
			"tour %q: step %d target cannot be resolved", c.id, c.current)
	}

	placement := layout.ComputePlacement(
		target,
		c.host.ViewportSize(),
		c.tooltipSize,
		c.config.EdgePadding,
		c.config.TargetInflation,
	)

	c.host.ShowOverlay(Frame{
		Step:        step,
		Index:       c.current,
		StepCount:   len(c.steps),
		Placement:   placement,
		TooltipSize: c.tooltipSize,
		Epoch:       c.epoch,
		Config:      c.config,
	})
	observability.Tour().OnStepShown(c.id, c.runID, c.current, tagAt(c.steps, c.current))
	return nil
}

// teardown deactivates the tour, resets the position to step 0, and removes
// the overlay layer.
func (c *Controller) teardown() {
	c.active = false
	c.current = 0
	c.host.RemoveOverlay()
}
