package layout

// Rect is an axis-aligned rectangle in viewport coordinates.
// All values are in user units (terminal cells for TUI hosts, pixels elsewhere).
type Rect struct {
	Left, Top     float64
	Width, Height float64
}

// Right returns the x coordinate of the rectangle's right edge.
func (r Rect) Right() float64 { return r.Left + r.Width }

// Bottom returns the y coordinate of the rectangle's bottom edge.
func (r Rect) Bottom() float64 { return r.Top + r.Height }

// CenterX returns the horizontal center point of the rectangle.
func (r Rect) CenterX() float64 { return r.Left + r.Width/2 }

// CenterY returns the vertical center point of the rectangle.
func (r Rect) CenterY() float64 { return r.Top + r.Height/2 }

// Inflate returns a copy of the rectangle grown by d units on every side.
// A negative d shrinks the rectangle; width and height never drop below zero.
func (r Rect) Inflate(d float64) Rect {
	out := Rect{
		Left:   r.Left - d,
		Top:    r.Top - d,
		Width:  r.Width + 2*d,
		Height: r.Height + 2*d,
	}
	if out.Width < 0 {
		out.Width = 0
	}
	if out.Height < 0 {
		out.Height = 0
	}
	return out
}

// Contains reports whether the point (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left && x < r.Right() && y >= r.Top && y < r.Bottom()
}

// Size is a width/height pair in the same units as Rect.
type Size struct {
	Width, Height float64
}

// IsZero reports whether both dimensions are zero.
func (s Size) IsZero() bool { return s.Width == 0 && s.Height == 0 }
