package teatour

import (
	"github.com/usherkit/usher/pkg/errors"
	"github.com/usherkit/usher/pkg/tour/layout"
)

// Registry maps target identifiers to viewport rectangles. The application
// reports each highlightable region's position as it lays itself out, and
// steps reference regions by identifier.
//
// A registry belongs to the program's UI loop and needs no locking.
type Registry struct {
	rects map[string]layout.Rect
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{rects: make(map[string]layout.Rect)}
}

// Put records the rectangle for id in viewport cells. Re-registering an id
// replaces its previous rectangle.
func (r *Registry) Put(id string, left, top, width, height int) error {
	if err := errors.ValidateTargetID(id); err != nil {
		return err
	}
	r.rects[id] = layout.Rect{
		Left:   float64(left),
		Top:    float64(top),
		Width:  float64(width),
		Height: float64(height),
	}
	return nil
}

// Rect returns the rectangle registered for id.
func (r *Registry) Rect(id string) (layout.Rect, bool) {
	rect, ok := r.rects[id]
	return rect, ok
}

// Remove drops id from the registry. Removing an unknown id is a no-op.
func (r *Registry) Remove(id string) {
	delete(r.rects, id)
}

// Len returns the number of registered targets.
func (r *Registry) Len() int { return len(r.rects) }
