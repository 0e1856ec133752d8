package tour

import "fmt"

// TargetRef is an opaque handle to the UI element a step highlights. The core
// never inspects it; the host's [Host.ResolveGeometry] turns it into screen
// geometry. Hosts choose the concrete type — the bubbletea adapter uses string
// IDs looked up in a registry.
type TargetRef any

// Step is a single stop in a guided tour. Steps are immutable once the tour
// is constructed; their order is significant and fixed for the tour's
// lifetime.
type Step struct {
	// Target identifies the element to highlight.
	Target TargetRef

	// Title and Description are the tooltip's text content.
	Title       string
	Description string

	// Tag identifies the step in callbacks and analytics events. When empty
	// it defaults to DefaultTag of the step's position.
	Tag string

	// OnAdvance fires when the tour advances off this step. The tag it
	// receives follows the post-increment rule: for the final step it is the
	// step's own tag, for earlier steps it is the tag of the step being
	// entered. See the package documentation for why this asymmetry is kept.
	OnAdvance func(tag string)
}

// DefaultTag returns the tag assigned to an untagged step at the given
// zero-based index. Tags are 1-based to match how tours are written.
func DefaultTag(index int) string {
	return fmt.Sprintf("step_%d", index+1)
}

// tagAt resolves the effective tag of the step at index i.
func tagAt(steps []Step, i int) string {
	if steps[i].Tag != "" {
		return steps[i].Tag
	}
	return DefaultTag(i)
}
