// Package tour implements the sequencing core of a guided UI tour: an
// ordered list of highlighted steps presented one at a time, each with a
// positioned tooltip.
//
// # Overview
//
// A [Controller] owns the step list and the tour's state machine
// (idle → showing step → completed/dismissed). It renders nothing itself;
// a [Host] supplies target geometry, the viewport size, and the single
// floating overlay layer, so the same controller runs on any rendering
// surface. Placement math lives in the layout subpackage and is pure.
//
// The bubbletea host adapter lives in package teatour; tours can also be
// declared in TOML files via package content.
//
// # Two-phase rendering
//
// Tooltip content size is unknown until the host has laid it out once.
// Each render pass therefore starts from a size estimate, and the host
// reports the measured size back through
// [Controller.ReportMeasuredTooltipSize], which recomputes placement when
// the estimate was off. Passes carry an epoch; a measurement from a pass the
// tour has since moved past is silently discarded. Measurements matching
// the current estimate stop the cycle.
//
// # Callback semantics
//
// Per-step OnAdvance callbacks receive tags under the post-increment rule:
// the final step's callback receives that step's own tag, while earlier
// steps receive the tag of the step being entered. The asymmetry is
// deliberate — existing analytics consumers depend on the historical
// delivery — and is pinned by tests rather than "fixed". The legacy global
// [Callbacks.OnAdvance] channel fires after the per-step callback on every
// non-final advance; the two channels stay independent until the legacy one
// is retired.
//
// # Threading
//
// Controllers are single-threaded by contract: every method is expected on
// the host's UI loop, which is how bubbletea programs behave naturally. The
// epoch guard exists for scheduling gaps inside that loop, not for
// cross-goroutine use.
package tour
