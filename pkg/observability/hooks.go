// Package observability provides hooks for tour analytics and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific analytics backends. Consumers can register hooks at startup to
// receive events about tour lifecycle transitions and progress storage.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from analytics frameworks
//   - Allows different backends (product analytics, metrics, plain logs)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetTourHooks(&myTourHooks{})
//	    observability.SetStoreHooks(&myStoreHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Tour().OnStepShown(tourID, runID, index, tag)
package observability

import (
	"sync"
	"time"
)

// =============================================================================
// Tour Hooks
// =============================================================================

// TourHooks receives events from tour controllers. Step tags are the ones
// declared in tour content (or the index-derived defaults), which makes them
// stable identifiers for downstream analytics.
type TourHooks interface {
	// Lifecycle events
	OnTourStart(tourID, runID string, stepCount int)
	OnTourComplete(tourID, runID string, duration time.Duration)
	OnTourSkip(tourID, runID string, atIndex int)
	OnTourDismiss(tourID, runID string, atIndex int)

	// Step events
	OnStepShown(tourID, runID string, index int, tag string)
	OnStepAdvance(tourID, runID string, tag string)

	// Layout events
	OnMeasure(tourID, runID string, index int, width, height float64, stale bool)
}

// =============================================================================
// Store Hooks
// =============================================================================

// StoreHooks receives events from progress store operations.
type StoreHooks interface {
	// OnStoreGet records a progress read and whether it found a record.
	OnStoreGet(backend, tourID string, found bool)

	// OnStoreSet records a progress write.
	OnStoreSet(backend, tourID string)

	// OnStoreError records a failed store operation.
	OnStoreError(backend, op string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopTourHooks is a no-op implementation of TourHooks.
type NoopTourHooks struct{}

func (NoopTourHooks) OnTourStart(string, string, int)                       {}
func (NoopTourHooks) OnTourComplete(string, string, time.Duration)          {}
func (NoopTourHooks) OnTourSkip(string, string, int)                        {}
func (NoopTourHooks) OnTourDismiss(string, string, int)                     {}
func (NoopTourHooks) OnStepShown(string, string, int, string)               {}
func (NoopTourHooks) OnStepAdvance(string, string, string)                  {}
func (NoopTourHooks) OnMeasure(string, string, int, float64, float64, bool) {}

// NoopStoreHooks is a no-op implementation of StoreHooks.
type NoopStoreHooks struct{}

func (NoopStoreHooks) OnStoreGet(string, string, bool)    {}
func (NoopStoreHooks) OnStoreSet(string, string)          {}
func (NoopStoreHooks) OnStoreError(string, string, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	tourHooks  TourHooks  = NoopTourHooks{}
	storeHooks StoreHooks = NoopStoreHooks{}
	hooksMu    sync.RWMutex
)

// SetTourHooks registers custom tour hooks.
// This should be called once at application startup before any tour runs.
func SetTourHooks(h TourHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		tourHooks = h
	}
}

// SetStoreHooks registers custom store hooks.
// This should be called once at application startup before any store operations.
func SetStoreHooks(h StoreHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		storeHooks = h
	}
}

// Tour returns the registered tour hooks.
func Tour() TourHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return tourHooks
}

// Store returns the registered store hooks.
func Store() StoreHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return storeHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	tourHooks = NoopTourHooks{}
	storeHooks = NoopStoreHooks{}
}
