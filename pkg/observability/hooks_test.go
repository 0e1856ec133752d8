package observability

import (
	"errors"
	"testing"
	"time"
)

// testTourHooks records which events fired.
type testTourHooks struct {
	NoopTourHooks
	starts   int
	advances []string
}

func (h *testTourHooks) OnTourStart(tourID, runID string, stepCount int) { h.starts++ }
func (h *testTourHooks) OnStepAdvance(tourID, runID string, tag string) {
	h.advances = append(h.advances, tag)
}

// testStoreHooks records store events.
type testStoreHooks struct {
	NoopStoreHooks
	gets int
}

func (h *testStoreHooks) OnStoreGet(backend, tourID string, found bool) { h.gets++ }

func TestNoopHooksDoNotPanic(t *testing.T) {
	// Tour hooks
	th := NoopTourHooks{}
	th.OnTourStart("onboarding", "run-1", 3)
	th.OnTourComplete("onboarding", "run-1", time.Second)
	th.OnTourSkip("onboarding", "run-1", 1)
	th.OnTourDismiss("onboarding", "run-1", 0)
	th.OnStepShown("onboarding", "run-1", 0, "step_1")
	th.OnStepAdvance("onboarding", "run-1", "step_2")
	th.OnMeasure("onboarding", "run-1", 0, 44, 8, false)

	// Store hooks
	sh := NoopStoreHooks{}
	sh.OnStoreGet("memory", "onboarding", true)
	sh.OnStoreSet("memory", "onboarding")
	sh.OnStoreError("memory", "get", errors.New("boom"))
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()
	t.Cleanup(Reset)

	// Verify defaults are noop
	if _, ok := Tour().(NoopTourHooks); !ok {
		t.Error("Tour() should return NoopTourHooks by default")
	}
	if _, ok := Store().(NoopStoreHooks); !ok {
		t.Error("Store() should return NoopStoreHooks by default")
	}

	// Set custom hooks
	customTour := &testTourHooks{}
	SetTourHooks(customTour)
	if Tour() != customTour {
		t.Error("SetTourHooks should set custom hooks")
	}

	customStore := &testStoreHooks{}
	SetStoreHooks(customStore)
	if Store() != customStore {
		t.Error("SetStoreHooks should set custom hooks")
	}

	// Events reach the registered hooks
	Tour().OnTourStart("onboarding", "run-1", 2)
	Tour().OnStepAdvance("onboarding", "run-1", "step_2")
	Store().OnStoreGet("memory", "onboarding", false)

	if customTour.starts != 1 {
		t.Errorf("starts = %d, want 1", customTour.starts)
	}
	if len(customTour.advances) != 1 || customTour.advances[0] != "step_2" {
		t.Errorf("advances = %v, want [step_2]", customTour.advances)
	}
	if customStore.gets != 1 {
		t.Errorf("gets = %d, want 1", customStore.gets)
	}

	// Nil registrations are ignored
	SetTourHooks(nil)
	if Tour() != customTour {
		t.Error("SetTourHooks(nil) should keep previous hooks")
	}

	// Reset restores noop defaults
	Reset()
	if _, ok := Tour().(NoopTourHooks); !ok {
		t.Error("Reset() should restore NoopTourHooks")
	}
}
