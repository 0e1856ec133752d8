package layout

import (
	"math"
	"testing"
)

func TestComputePlacementSide(t *testing.T) {
	tests := []struct {
		name     string
		target   Rect
		viewport Size
		tooltip  Size
		want     Side
	}{
		{
			name:     "ample room below",
			target:   Rect{Left: 40, Top: 5, Width: 20, Height: 3},
			viewport: Size{Width: 120, Height: 100},
			tooltip:  Size{Width: 44, Height: 8},
			want:     Below,
		},
		{
			name:     "target near bottom flips above",
			target:   Rect{Left: 40, Top: 80, Width: 20, Height: 10},
			viewport: Size{Width: 120, Height: 100},
			tooltip:  Size{Width: 44, Height: 8},
			want:     Above,
		},
		{
			name: "exactly at the threshold stays below",
			// holeBottom(50) + padding(2) + height(8) + safety(20) == 80, not > 80.
			target:   Rect{Left: 0, Top: 40, Width: 10, Height: 10},
			viewport: Size{Width: 120, Height: 80},
			tooltip:  Size{Width: 44, Height: 8},
			want:     Below,
		},
		{
			name:     "one unit past the threshold flips",
			target:   Rect{Left: 0, Top: 41, Width: 10, Height: 10},
			viewport: Size{Width: 120, Height: 80},
			tooltip:  Size{Width: 44, Height: 8},
			want:     Above,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputePlacement(tt.target, tt.viewport, tt.tooltip, 2, 0)
			if got.Side != tt.want {
				t.Errorf("Side = %v, want %v", got.Side, tt.want)
			}
		})
	}
}

func TestComputePlacementDeterministic(t *testing.T) {
	target := Rect{Left: 33, Top: 47, Width: 17, Height: 4}
	viewport := Size{Width: 100, Height: 60}
	tooltip := Size{Width: 40, Height: 9}

	first := ComputePlacement(target, viewport, tooltip, 2, 1)
	for i := 0; i < 10; i++ {
		if got := ComputePlacement(target, viewport, tooltip, 2, 1); got != first {
			t.Fatalf("run %d: placement %+v differs from first %+v", i, got, first)
		}
	}
}

func TestComputePlacementCoordinates(t *testing.T) {
	tests := []struct {
		name     string
		target   Rect
		tooltip  Size
		wantTop  float64
		wantLeft float64
	}{
		{
			name:     "below the hole, centered",
			target:   Rect{Left: 40, Top: 10, Width: 20, Height: 4},
			tooltip:  Size{Width: 30, Height: 6},
			wantTop:  17, // holeBottom(15) + padding(2)
			wantLeft: 36, // centerX(51) - width/2(15)
		},
		{
			name:     "left clamp at padding",
			target:   Rect{Left: 0, Top: 10, Width: 4, Height: 4},
			tooltip:  Size{Width: 30, Height: 6},
			wantTop:  17,
			wantLeft: 2,
		},
		{
			name:     "right clamp at viewport edge",
			target:   Rect{Left: 96, Top: 10, Width: 4, Height: 4},
			tooltip:  Size{Width: 30, Height: 6},
			wantTop:  17,
			wantLeft: 68, // 100 - 2 - 30
		},
	}

	viewport := Size{Width: 100, Height: 60}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputePlacement(tt.target, viewport, tt.tooltip, 2, 1)
			if got.Top != tt.wantTop {
				t.Errorf("Top = %v, want %v", got.Top, tt.wantTop)
			}
			if got.Left != tt.wantLeft {
				t.Errorf("Left = %v, want %v", got.Left, tt.wantLeft)
			}
		})
	}
}

func TestComputePlacementStaysInsideViewport(t *testing.T) {
	// Sweep targets across and beyond the viewport with several tooltip
	// sizes; the clamped coordinates must never leave the padded viewport
	// while the clamp ranges are non-empty.
	viewport := Size{Width: 80, Height: 24}
	const padding = 2

	tooltips := []Size{
		{Width: 44, Height: 8},
		{Width: 60, Height: 12},
		{Width: 76, Height: 20},
	}

	for _, tooltip := range tooltips {
		for top := -10.0; top <= 30; top += 7 {
			for left := -20.0; left <= 90; left += 11 {
				target := Rect{Left: left, Top: top, Width: 12, Height: 3}
				p := ComputePlacement(target, viewport, tooltip, padding, 1)

				if p.Left < padding || p.Left > viewport.Width-padding-tooltip.Width {
					t.Fatalf("tooltip %v target %v: Left %v outside [%v, %v]",
						tooltip, target, p.Left, padding, viewport.Width-padding-tooltip.Width)
				}
				if p.Top < padding || p.Top > viewport.Height-padding-tooltip.Height {
					t.Fatalf("tooltip %v target %v: Top %v outside [%v, %v]",
						tooltip, target, p.Top, padding, viewport.Height-padding-tooltip.Height)
				}
			}
		}
	}
}

func TestComputePlacementTargetLargerThanViewport(t *testing.T) {
	viewport := Size{Width: 40, Height: 20}
	target := Rect{Left: -10, Top: -5, Width: 80, Height: 40}
	p := ComputePlacement(target, viewport, Size{Width: 30, Height: 6}, 2, 0)

	if math.IsNaN(p.Top) || math.IsNaN(p.Left) || math.IsNaN(p.ArrowOffset) {
		t.Fatalf("placement contains NaN: %+v", p)
	}
	if p.Left < 0 || p.Left > viewport.Width {
		t.Errorf("Left = %v, outside viewport", p.Left)
	}
	if p.Top < 0 || p.Top > viewport.Height {
		t.Errorf("Top = %v, outside viewport", p.Top)
	}
}

func TestComputePlacementViewportSmallerThanTooltip(t *testing.T) {
	// Both clamp ranges invert; the lower bound (edge padding) must win.
	viewport := Size{Width: 20, Height: 10}
	target := Rect{Left: 5, Top: 3, Width: 4, Height: 2}
	p := ComputePlacement(target, viewport, Size{Width: 44, Height: 14}, 2, 0)

	if p.Top != 2 {
		t.Errorf("Top = %v, want lower bound 2", p.Top)
	}
	if p.Left != 2 {
		t.Errorf("Left = %v, want lower bound 2", p.Left)
	}
	if math.IsNaN(p.ArrowOffset) || math.IsInf(p.ArrowOffset, 0) {
		t.Errorf("ArrowOffset = %v, want finite", p.ArrowOffset)
	}
}

func TestArrowOffsetBounds(t *testing.T) {
	viewport := Size{Width: 120, Height: 40}

	tests := []struct {
		name    string
		target  Rect
		tooltip Size
		want    float64
	}{
		{
			name:    "centered target keeps arrow at center",
			target:  Rect{Left: 50, Top: 5, Width: 20, Height: 3},
			tooltip: Size{Width: 60, Height: 8},
			want:    30, // centerX(60) - left(30)
		},
		{
			name:    "target at left edge clamps arrow to margin",
			target:  Rect{Left: 0, Top: 5, Width: 4, Height: 3},
			tooltip: Size{Width: 60, Height: 8},
			want:    20,
		},
		{
			name:    "target at right edge clamps arrow near far corner",
			target:  Rect{Left: 116, Top: 5, Width: 4, Height: 3},
			tooltip: Size{Width: 60, Height: 8},
			want:    40, // 60 - 20
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ComputePlacement(tt.target, viewport, tt.tooltip, 2, 0)
			if p.ArrowOffset != tt.want {
				t.Errorf("ArrowOffset = %v, want %v", p.ArrowOffset, tt.want)
			}
		})
	}
}

func TestArrowOffsetNarrowTooltip(t *testing.T) {
	// Width < 40 makes the arrow clamp range empty; the lower bound (20)
	// must win and the result must be finite.
	viewport := Size{Width: 80, Height: 24}
	target := Rect{Left: 10, Top: 4, Width: 6, Height: 2}
	p := ComputePlacement(target, viewport, Size{Width: 28, Height: 5}, 2, 0)

	if p.ArrowOffset != 20 {
		t.Errorf("ArrowOffset = %v, want 20 for narrow tooltip", p.ArrowOffset)
	}
}

func TestComputePlacementInflation(t *testing.T) {
	target := Rect{Left: 30, Top: 10, Width: 10, Height: 4}
	p := ComputePlacement(target, Size{Width: 100, Height: 60}, Size{Width: 40, Height: 6}, 2, 3)

	want := Rect{Left: 27, Top: 7, Width: 16, Height: 10}
	if p.Hole != want {
		t.Errorf("Hole = %+v, want %+v", p.Hole, want)
	}
	// Tooltip hangs off the inflated hole, not the raw target.
	if p.Top != want.Bottom()+2 {
		t.Errorf("Top = %v, want %v", p.Top, want.Bottom()+2)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		v, lo, hi float64
		want      float64
	}{
		{"inside range", 5, 0, 10, 5},
		{"below range", -3, 0, 10, 0},
		{"above range", 15, 0, 10, 10},
		{"at lower bound", 0, 0, 10, 0},
		{"at upper bound", 10, 0, 10, 10},
		{"empty range resolves low", 5, 8, 2, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clamp(tt.v, tt.lo, tt.hi); got != tt.want {
				t.Errorf("clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}
