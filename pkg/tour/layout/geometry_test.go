package layout

import "testing"

func TestRectEdges(t *testing.T) {
	r := Rect{Left: 10, Top: 20, Width: 30, Height: 8}

	if got := r.Right(); got != 40 {
		t.Errorf("Right() = %v, want 40", got)
	}
	if got := r.Bottom(); got != 28 {
		t.Errorf("Bottom() = %v, want 28", got)
	}
	if got := r.CenterX(); got != 25 {
		t.Errorf("CenterX() = %v, want 25", got)
	}
	if got := r.CenterY(); got != 24 {
		t.Errorf("CenterY() = %v, want 24", got)
	}
}

func TestRectInflate(t *testing.T) {
	tests := []struct {
		name string
		rect Rect
		d    float64
		want Rect
	}{
		{
			name: "grow",
			rect: Rect{Left: 10, Top: 10, Width: 20, Height: 10},
			d:    2,
			want: Rect{Left: 8, Top: 8, Width: 24, Height: 14},
		},
		{
			name: "zero is identity",
			rect: Rect{Left: 5, Top: 5, Width: 3, Height: 3},
			d:    0,
			want: Rect{Left: 5, Top: 5, Width: 3, Height: 3},
		},
		{
			name: "shrink",
			rect: Rect{Left: 10, Top: 10, Width: 20, Height: 10},
			d:    -2,
			want: Rect{Left: 12, Top: 12, Width: 16, Height: 6},
		},
		{
			name: "shrink past zero floors dimensions",
			rect: Rect{Left: 10, Top: 10, Width: 4, Height: 4},
			d:    -5,
			want: Rect{Left: 15, Top: 15, Width: 0, Height: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rect.Inflate(tt.d); got != tt.want {
				t.Errorf("Inflate(%v) = %+v, want %+v", tt.d, got, tt.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{Left: 10, Top: 10, Width: 10, Height: 5}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 15, 12, true},
		{"top-left corner inclusive", 10, 10, true},
		{"right edge exclusive", 20, 12, false},
		{"bottom edge exclusive", 15, 15, false},
		{"outside", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestSideString(t *testing.T) {
	if got := Below.String(); got != "below" {
		t.Errorf("Below.String() = %q, want %q", got, "below")
	}
	if got := Above.String(); got != "above" {
		t.Errorf("Above.String() = %q, want %q", got, "above")
	}
}
