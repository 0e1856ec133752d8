package teatour

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/usherkit/usher/pkg/tour/layout"
)

// overlayAt splices layer into base at the given cell position. Both strings
// may carry ANSI escape sequences; splicing is done on visible cell widths so
// styled base content survives on either side of the layer.
func overlayAt(base, layer string, left, top int) string {
	if layer == "" {
		return base
	}
	baseLines := strings.Split(base, "\n")
	for i, layerLine := range strings.Split(layer, "\n") {
		row := top + i
		if row < 0 || layerLine == "" {
			continue
		}
		for row >= len(baseLines) {
			baseLines = append(baseLines, "")
		}
		baseLines[row] = spliceLine(baseLines[row], layerLine, left)
	}
	return strings.Join(baseLines, "\n")
}

// spliceLine overwrites the cells [left, left+width(layer)) of base with
// layer, padding base with spaces when it is shorter than left.
func spliceLine(base, layer string, left int) string {
	if left < 0 {
		left = 0
	}
	lhs := ansi.Truncate(base, left, "")
	if pad := left - ansi.StringWidth(lhs); pad > 0 {
		lhs += strings.Repeat(" ", pad)
	}
	rhs := ansi.TruncateLeft(base, left+ansi.StringWidth(layer), "")
	return lhs + layer + rhs
}

// drawRing overlays a one-cell border around the hole rectangle. The hole's
// interior is left untouched so the highlighted target keeps showing through.
// Holes too small to carry a border are skipped.
func drawRing(base string, hole layout.Rect) string {
	left, top := int(hole.Left), int(hole.Top)
	w, h := int(hole.Width), int(hole.Height)
	if w < 2 || h < 2 {
		return base
	}

	topLine := ringTopLeft + strings.Repeat(ringHorizontal, w-2) + ringTopRight
	bottomLine := ringBottomLeft + strings.Repeat(ringHorizontal, w-2) + ringBottomRight
	base = overlayAt(base, styleRing.Render(topLine), left, top)
	base = overlayAt(base, styleRing.Render(bottomLine), left, top+h-1)

	side := styleRing.Render(ringVertical)
	for row := top + 1; row < top+h-1; row++ {
		base = overlayAt(base, side, left, row)
		base = overlayAt(base, side, left+w-1, row)
	}
	return base
}
