package teatour

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan  = lipgloss.Color("36")  // Teal - borders, arrow
	colorWhite = lipgloss.Color("255") // Bright white - body text
	colorGray  = lipgloss.Color("245") // Gray - step counter
	colorDim   = lipgloss.Color("240") // Dim gray - skip button
)

// =============================================================================
// Tooltip Styles
// =============================================================================

var (
	styleTooltip = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorCyan).
			Padding(0, 1)

	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleBody    = lipgloss.NewStyle().Foreground(colorWhite)
	styleCounter = lipgloss.NewStyle().Foreground(colorGray)

	styleButton     = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleButtonSkip = lipgloss.NewStyle().Foreground(colorDim)

	styleArrow = lipgloss.NewStyle().Foreground(colorCyan)
	styleRing  = lipgloss.NewStyle().Foreground(colorCyan)
)

// Arrow glyphs point from the tooltip toward the highlighted target.
const (
	arrowUp   = "▲"
	arrowDown = "▼"
)

// Ring glyphs draw the highlight border around the hole.
const (
	ringTopLeft     = "┌"
	ringTopRight    = "┐"
	ringBottomLeft  = "└"
	ringBottomRight = "┘"
	ringHorizontal  = "─"
	ringVertical    = "│"
)
