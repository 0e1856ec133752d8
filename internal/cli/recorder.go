package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/usherkit/usher/pkg/observability"
	"github.com/usherkit/usher/pkg/progress"
)

// tourRecorder turns tour lifecycle events into progress records. It is
// registered as the process-wide tour hooks for the duration of the demo and
// runs on the UI goroutine, so no locking is needed.
type tourRecorder struct {
	observability.NoopTourHooks

	ctx       context.Context
	store     progress.Store
	logger    *log.Logger
	stepCount int

	runID string
	seen  int
}

// newTourRecorder registers a recorder as the active tour hooks.
func newTourRecorder(ctx context.Context, store progress.Store, logger *log.Logger, stepCount int) *tourRecorder {
	r := &tourRecorder{
		ctx:       ctx,
		store:     store,
		logger:    logger,
		stepCount: stepCount,
	}
	observability.SetTourHooks(r)
	return r
}

// detach restores the no-op hooks.
func (r *tourRecorder) detach() {
	observability.Reset()
}

func (r *tourRecorder) OnTourStart(tourID, runID string, stepCount int) {
	r.runID = runID
	r.seen = 0
	r.logger.Debug("tour started", "tour", tourID, "run", runID, "steps", stepCount)
}

func (r *tourRecorder) OnStepShown(tourID, runID string, index int, tag string) {
	if index+1 > r.seen {
		r.seen = index + 1
	}
	r.logger.Debug("step shown", "tour", tourID, "index", index, "tag", tag)
}

func (r *tourRecorder) OnTourComplete(tourID, runID string, duration time.Duration) {
	r.logger.Debug("tour completed", "tour", tourID, "duration", duration)
	r.write(tourID, progress.StatusCompleted, r.stepCount)
}

func (r *tourRecorder) OnTourSkip(tourID, runID string, atIndex int) {
	r.logger.Debug("tour skipped", "tour", tourID, "at", atIndex)
	r.write(tourID, progress.StatusSkipped, r.seen)
}

func (r *tourRecorder) OnTourDismiss(tourID, runID string, atIndex int) {
	r.logger.Debug("tour dismissed", "tour", tourID, "at", atIndex)
	r.write(tourID, progress.StatusDismissed, r.seen)
}

func (r *tourRecorder) write(tourID string, status progress.Status, seen int) {
	rec := &progress.Record{
		TourID:    tourID,
		RunID:     r.runID,
		Status:    status,
		StepsSeen: seen,
		UpdatedAt: time.Now().UTC(),
	}
	if err := r.store.Set(r.ctx, rec); err != nil {
		r.logger.Warn("recording tour outcome failed", "tour", tourID, "err", err)
	}
}
