// Package progress stores which tours a user has already been through.
//
// This package defines a small Store interface with implementations for
// different deployments:
//   - memory: In-memory storage for tests and single-run tools
//   - file: JSON files under the user config directory for CLI applications
//   - redis: Redis-backed storage for applications with shared state
//
// # Records
//
// A [Record] captures the outcome of one tour run: whether it completed, was
// skipped, or was dismissed, and how many steps the user saw. Applications
// consult the store before starting a tour ("has this user already seen
// onboarding?") and write a record from the tour's lifecycle callbacks.
//
// # Usage
//
//	store := progress.NewMemoryStore()          // tests
//	store, err := progress.NewFileStore("")     // CLI, ~/.config/usher/progress/
//	store, err := progress.NewRedisStore(ctx, progress.RedisConfig{Addr: "localhost:6379"})
//
//	rec, err := store.Get(ctx, "onboarding")
//	if rec == nil {
//	    // first run, start the tour
//	}
package progress

import (
	"context"
	"time"

	"github.com/usherkit/usher/pkg/errors"
)

// Status is the terminal state of a tour run.
type Status string

const (
	// StatusCompleted means the user advanced through every step.
	StatusCompleted Status = "completed"

	// StatusSkipped means the user pressed skip.
	StatusSkipped Status = "skipped"

	// StatusDismissed means the tour was dismissed without finishing.
	StatusDismissed Status = "dismissed"
)

// Record is the stored outcome of a tour run.
type Record struct {
	TourID    string    `json:"tour_id"`
	RunID     string    `json:"run_id"`
	Status    Status    `json:"status"`
	StepsSeen int       `json:"steps_seen"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Store is the interface for progress storage backends.
type Store interface {
	// Get retrieves the record for a tour.
	// Returns nil, nil when the tour has no record.
	Get(ctx context.Context, tourID string) (*Record, error)

	// Set stores a record, replacing any previous one for the same tour.
	Set(ctx context.Context, rec *Record) error

	// Delete removes a tour's record. Deleting an absent record is a no-op.
	Delete(ctx context.Context, tourID string) error

	// List returns all stored records.
	List(ctx context.Context) ([]*Record, error)

	// Close releases backend resources.
	Close() error
}

// validate checks a record before it is written.
func validate(rec *Record) error {
	if rec == nil {
		return errors.New(errors.ErrCodeStore, "record is nil")
	}
	if err := errors.ValidateTourID(rec.TourID); err != nil {
		return err
	}
	switch rec.Status {
	case StatusCompleted, StatusSkipped, StatusDismissed:
	default:
		return errors.New(errors.ErrCodeStore, "unknown status %q", rec.Status)
	}
	return nil
}
