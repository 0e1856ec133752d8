package tour_test

import (
	"fmt"

	"github.com/usherkit/usher/pkg/tour"
	"github.com/usherkit/usher/pkg/tour/layout"
)

// exampleHost is a minimal Host that prints what it is asked to render.
// Real applications use a rendering adapter such as package teatour.
type exampleHost struct{}

func (exampleHost) ResolveGeometry(target tour.TargetRef) (layout.Rect, error) {
	// A fixed layout: the "search" box sits at the top, the "results" pane
	// fills the middle of a 120x50 viewport.
	switch target {
	case "search":
		return layout.Rect{Left: 2, Top: 1, Width: 40, Height: 3}, nil
	case "results":
		return layout.Rect{Left: 2, Top: 5, Width: 76, Height: 16}, nil
	}
	return layout.Rect{}, fmt.Errorf("unknown target %v", target)
}

func (exampleHost) ViewportSize() layout.Size { return layout.Size{Width: 120, Height: 50} }

func (exampleHost) ShowOverlay(frame tour.Frame) {
	fmt.Printf("step %d/%d %q tooltip %s at (%.0f,%.0f)\n",
		frame.Index+1, frame.StepCount, frame.Step.Title,
		frame.Placement.Side, frame.Placement.Left, frame.Placement.Top)
}

func (exampleHost) RemoveOverlay() {}

func Example() {
	steps := []tour.Step{
		{Target: "search", Title: "Search", Description: "Type to filter."},
		{Target: "results", Title: "Results", Description: "Pick an entry."},
	}
	callbacks := tour.Callbacks{
		OnComplete: func() { fmt.Println("tour complete") },
	}

	c, err := tour.New("quickstart", steps, tour.Config{}, callbacks, exampleHost{})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	if err := c.Start(); err != nil {
		fmt.Println("error:", err)
		return
	}
	if err := c.Advance(); err != nil {
		fmt.Println("error:", err)
		return
	}
	if err := c.Advance(); err != nil {
		fmt.Println("error:", err)
		return
	}

	// Output:
	// step 1/2 "Search" tooltip below at (2,7)
	// step 2/2 "Results" tooltip above at (18,2)
	// tour complete
}
