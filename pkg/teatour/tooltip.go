package teatour

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/usherkit/usher/pkg/tour"
	"github.com/usherkit/usher/pkg/tour/layout"
)

// minTooltipWidth keeps degenerate size estimates from collapsing the box
// below anything readable.
const minTooltipWidth = 16

// renderTooltip renders the tooltip box for one frame. The box is forced to
// the frame's estimated width; its height falls out of the wrapped content
// and is what the measurement pass feeds back to the controller.
func renderTooltip(frame tour.Frame) string {
	width := int(frame.TooltipSize.Width)
	if width < minTooltipWidth {
		width = minTooltipWidth
	}
	inner := width - 4 // border and padding

	title := styleTitle.Render(frame.Step.Title)
	counter := styleCounter.Render(fmt.Sprintf("%d/%d", frame.Index+1, frame.StepCount))
	gap := inner - lipgloss.Width(title) - lipgloss.Width(counter)
	if gap < 1 {
		gap = 1
	}
	header := title + strings.Repeat(" ", gap) + counter

	lines := []string{header}
	if frame.Step.Description != "" {
		lines = append(lines, styleBody.Width(inner).Render(frame.Step.Description))
	}
	if frame.Config.ShowButtons {
		lines = append(lines, "", buttonRow(frame))
	}

	return styleTooltip.Width(width - 2).Render(strings.Join(lines, "\n"))
}

// buttonRow renders the advance and skip affordances with their key hints.
// The final step shows the finish label and drops skip.
func buttonRow(frame tour.Frame) string {
	next := frame.Config.NextLabel
	if frame.IsLast() {
		next = frame.Config.FinishLabel
	}
	row := styleButton.Render(next + " ⏎")
	if !frame.IsLast() {
		row += "  " + styleButtonSkip.Render(frame.Config.SkipLabel+" s")
	}
	return row
}

// renderArrow returns the arrow glyph pointing from the tooltip at the hole,
// with the cell it should be drawn at. The column follows the placement's
// arrow offset from the tooltip's left edge; the row is the line adjacent to
// the box on the hole's side.
func renderArrow(frame tour.Frame, tooltipHeight int) (glyph string, left, top int) {
	left = int(frame.Placement.Left + frame.Placement.ArrowOffset)
	if frame.Placement.Side == layout.Below {
		// Tooltip sits below the hole, arrow points up from the top edge.
		return styleArrow.Render(arrowUp), left, int(frame.Placement.Top) - 1
	}
	return styleArrow.Render(arrowDown), left, int(frame.Placement.Top) + tooltipHeight
}
