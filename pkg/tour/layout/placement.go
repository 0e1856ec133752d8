package layout

// Side is the vertical side of the hole on which the tooltip is placed.
type Side int

const (
	// Below places the tooltip underneath the hole. This is the preferred side.
	Below Side = iota
	// Above places the tooltip on top of the hole when there is not enough
	// room underneath.
	Above
)

// String returns "below" or "above".
func (s Side) String() string {
	if s == Above {
		return "above"
	}
	return "below"
}

const (
	// overflowSafety is extra headroom required under the hole before the
	// tooltip is allowed to stay below it.
	overflowSafety = 20

	// arrowMargin keeps the pointer arrow clear of the tooltip's corners.
	arrowMargin = 20
)

// Placement is the result of a single layout pass. It is recomputed from
// scratch on every pass and never cached across steps.
type Placement struct {
	Side Side

	// Top and Left are the tooltip's clamped viewport coordinates.
	Top, Left float64

	// ArrowOffset is the horizontal distance from the tooltip's left edge at
	// which the pointer arrow is drawn.
	ArrowOffset float64

	// Hole is the inflated target rectangle excluded from the dimming layer.
	Hole Rect
}

// ComputePlacement determines where a tooltip of the given size goes relative
// to target inside viewport. The target is first inflated by targetInflation
// on all sides to form the highlight hole. The tooltip prefers the space below
// the hole and flips above only when the space underneath cannot fit the
// tooltip plus safety headroom; the decision is made once, not searched.
//
// Coordinates are clamped so the tooltip stays edgePadding away from every
// viewport edge. When a clamp range is inverted (viewport smaller than tooltip
// plus padding) the lower bound wins, so the result is always finite.
//
// The tooltip size may be a provisional estimate; the engine treats whatever
// it is given as authoritative. Callers re-run ComputePlacement when the real
// rendered size becomes known.
func ComputePlacement(target Rect, viewport Size, tooltip Size, edgePadding, targetInflation float64) Placement {
	hole := target.Inflate(targetInflation)

	side := Below
	if hole.Bottom()+edgePadding+tooltip.Height+overflowSafety > viewport.Height {
		side = Above
	}

	var top float64
	if side == Below {
		top = hole.Bottom() + edgePadding
	} else {
		top = hole.Top - edgePadding - tooltip.Height
	}
	top = clamp(top, edgePadding, viewport.Height-edgePadding-tooltip.Height)

	left := hole.CenterX() - tooltip.Width/2
	left = clamp(left, edgePadding, viewport.Width-edgePadding-tooltip.Width)

	arrow := clamp(hole.CenterX()-left, arrowMargin, tooltip.Width-arrowMargin)

	return Placement{
		Side:        side,
		Top:         top,
		Left:        left,
		ArrowOffset: arrow,
		Hole:        hole,
	}
}

// clamp restricts v to [lo, hi]. When the range is empty (lo > hi) the lower
// bound wins; this keeps degenerate viewports from producing values outside
// the viewport entirely.
func clamp(v, lo, hi float64) float64 {
	if lo > hi {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
