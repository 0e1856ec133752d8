package tour

import (
	"github.com/usherkit/usher/pkg/errors"
	"github.com/usherkit/usher/pkg/tour/layout"
)

// Config captures tour-wide presentation settings at construction time.
// It is immutable for the lifetime of the tour.
type Config struct {
	// EdgePadding is the minimum distance kept between the tooltip and every
	// viewport edge, and between the hole and the tooltip.
	EdgePadding float64

	// TargetInflation grows the highlight hole beyond the target's own
	// bounds on all sides.
	TargetInflation float64

	// InitialTooltipSize is the provisional size used for the first layout
	// pass of each step, before the host has measured the rendered tooltip.
	InitialTooltipSize layout.Size

	// ShowButtons controls whether the tooltip renders Next/Skip controls.
	ShowButtons bool

	// DismissOnTapOutside allows the user to end the tour by interacting
	// outside the tooltip and hole.
	DismissOnTapOutside bool

	// Button label overrides. Empty strings take the defaults.
	NextLabel   string
	SkipLabel   string
	FinishLabel string
}

// Default presentation values.
const (
	DefaultNextLabel   = "Next"
	DefaultSkipLabel   = "Skip"
	DefaultFinishLabel = "Done"
)

// DefaultConfig returns the configuration used when callers pass a zero
// Config. Sizes are in terminal cells, matching the bubbletea adapter.
func DefaultConfig() Config {
	return Config{
		EdgePadding:         2,
		TargetInflation:     1,
		InitialTooltipSize:  layout.Size{Width: 44, Height: 8},
		ShowButtons:         true,
		DismissOnTapOutside: true,
		NextLabel:           DefaultNextLabel,
		SkipLabel:           DefaultSkipLabel,
		FinishLabel:         DefaultFinishLabel,
	}
}

// Validate checks the configuration invariants. A tour with hidden buttons
// and tap-outside dismissal disabled would leave the user with no way to
// advance or leave, so that combination is rejected up front.
func (c Config) Validate() error {
	if !c.ShowButtons && !c.DismissOnTapOutside {
		return errors.New(errors.ErrCodeInvalidConfig,
			"buttons are hidden and tap-outside dismissal is disabled; the tour would be inescapable")
	}
	if c.EdgePadding < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "edge padding cannot be negative")
	}
	if c.InitialTooltipSize.Width < 0 || c.InitialTooltipSize.Height < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "initial tooltip size cannot be negative")
	}
	return nil
}

// withDefaults fills unset presentation fields. A fully zero Config becomes
// DefaultConfig; a partially filled one only has its empty labels and zero
// tooltip estimate replaced.
func (c Config) withDefaults() Config {
	if c == (Config{}) {
		return DefaultConfig()
	}
	def := DefaultConfig()
	if c.NextLabel == "" {
		c.NextLabel = def.NextLabel
	}
	if c.SkipLabel == "" {
		c.SkipLabel = def.SkipLabel
	}
	if c.FinishLabel == "" {
		c.FinishLabel = def.FinishLabel
	}
	if c.InitialTooltipSize.IsZero() {
		c.InitialTooltipSize = def.InitialTooltipSize
	}
	return c
}
