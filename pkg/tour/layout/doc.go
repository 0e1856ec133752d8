// Package layout computes tooltip placement for guided-tour overlays.
//
// # Overview
//
// Given a target rectangle, the viewport size, and a tooltip size, the package
// decides which side of the target the tooltip goes on, clamps its coordinates
// into the viewport, and positions the pointer arrow over the target's center.
// Everything is a pure function of its inputs: no state, no host dependencies,
// no units beyond "the same units as the viewport".
//
// # Two-phase layout
//
// The tooltip's true size is unknown until the host has rendered it once, so
// callers run [ComputePlacement] twice per step: first with a provisional size
// estimate, then again with the measured size once the host reports it. The
// engine has no special case for estimates; it treats whatever size it is
// handed as authoritative.
//
// # Degenerate viewports
//
// When the viewport is smaller than the tooltip plus padding the clamp ranges
// invert. The engine resolves empty ranges to their lower bound so results
// stay finite and deterministic; it never panics and never returns NaN.
package layout
