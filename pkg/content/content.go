// Package content loads tour definitions from TOML files.
//
// A tour file names the tour, optionally tunes its presentation, and lists
// the steps in order:
//
//	id = "onboarding"
//
//	[config]
//	edge_padding = 2
//	target_inflation = 1
//	tooltip_width = 44
//	tooltip_height = 8
//	show_buttons = true
//	dismiss_on_tap_outside = true
//
//	[[step]]
//	target = "sidebar"
//	title = "Your library"
//	description = "Everything you have imported lives here."
//	tag = "library"
//
// Targets are string IDs resolved by the host (the bubbletea adapter looks
// them up in its registry). Omitted config fields take the package tour
// defaults; omitted tags take the 1-based step_N defaults.
package content

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/usherkit/usher/pkg/errors"
	"github.com/usherkit/usher/pkg/tour"
	"github.com/usherkit/usher/pkg/tour/layout"
)

// Tour is a parsed, validated tour definition.
type Tour struct {
	ID     string
	Steps  []tour.Step
	Config tour.Config
}

// tourFile mirrors the TOML document structure.
type tourFile struct {
	ID     string     `toml:"id"`
	Config configFile `toml:"config"`
	Steps  []stepFile `toml:"step"`
}

type configFile struct {
	EdgePadding         *float64 `toml:"edge_padding"`
	TargetInflation     *float64 `toml:"target_inflation"`
	TooltipWidth        *float64 `toml:"tooltip_width"`
	TooltipHeight       *float64 `toml:"tooltip_height"`
	ShowButtons         *bool    `toml:"show_buttons"`
	DismissOnTapOutside *bool    `toml:"dismiss_on_tap_outside"`
	NextLabel           string   `toml:"next_label"`
	SkipLabel           string   `toml:"skip_label"`
	FinishLabel         string   `toml:"finish_label"`
}

type stepFile struct {
	Target      string `toml:"target"`
	Title       string `toml:"title"`
	Description string `toml:"description"`
	Tag         string `toml:"tag"`
}

// Load reads and parses the tour file at path.
func Load(path string) (*Tour, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "tour file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidContent, err, "read tour file %s", path)
	}
	return Parse(data)
}

// Parse parses a TOML tour definition and validates it with the same rules
// the controller applies at construction, so a file that parses here will
// also construct.
func Parse(data []byte) (*Tour, error) {
	var file tourFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidContent, err, "parse tour definition")
	}

	if err := errors.ValidateTourID(file.ID); err != nil {
		return nil, err
	}
	if len(file.Steps) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidContent, "tour %q declares no steps", file.ID)
	}

	steps := make([]tour.Step, 0, len(file.Steps))
	seenTags := make(map[string]int)
	for i, s := range file.Steps {
		if err := errors.ValidateTargetID(s.Target); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidContent, err, "tour %q step %d", file.ID, i+1)
		}
		if s.Title == "" {
			return nil, errors.New(errors.ErrCodeInvalidContent, "tour %q step %d has no title", file.ID, i+1)
		}
		if s.Tag != "" {
			if prev, dup := seenTags[s.Tag]; dup {
				return nil, errors.New(errors.ErrCodeInvalidContent,
					"tour %q: steps %d and %d share tag %q", file.ID, prev, i+1, s.Tag)
			}
			seenTags[s.Tag] = i + 1
		}
		steps = append(steps, tour.Step{
			Target:      s.Target,
			Title:       s.Title,
			Description: s.Description,
			Tag:         s.Tag,
		})
	}

	cfg := buildConfig(file.Config)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Tour{ID: file.ID, Steps: steps, Config: cfg}, nil
}

// buildConfig folds the file's optional settings over the tour defaults.
func buildConfig(f configFile) tour.Config {
	cfg := tour.DefaultConfig()
	if f.EdgePadding != nil {
		cfg.EdgePadding = *f.EdgePadding
	}
	if f.TargetInflation != nil {
		cfg.TargetInflation = *f.TargetInflation
	}
	if f.TooltipWidth != nil || f.TooltipHeight != nil {
		size := cfg.InitialTooltipSize
		if f.TooltipWidth != nil {
			size.Width = *f.TooltipWidth
		}
		if f.TooltipHeight != nil {
			size.Height = *f.TooltipHeight
		}
		cfg.InitialTooltipSize = layout.Size{Width: size.Width, Height: size.Height}
	}
	if f.ShowButtons != nil {
		cfg.ShowButtons = *f.ShowButtons
	}
	if f.DismissOnTapOutside != nil {
		cfg.DismissOnTapOutside = *f.DismissOnTapOutside
	}
	if f.NextLabel != "" {
		cfg.NextLabel = f.NextLabel
	}
	if f.SkipLabel != "" {
		cfg.SkipLabel = f.SkipLabel
	}
	if f.FinishLabel != "" {
		cfg.FinishLabel = f.FinishLabel
	}
	return cfg
}
