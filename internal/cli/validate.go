package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/usherkit/usher/pkg/content"
	"github.com/usherkit/usher/pkg/tour"
)

// validateCommand creates the validate command for checking tour files.
func (c *CLI) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file.toml>",
		Short: "Validate a TOML tour definition",
		Long: `Validate parses a tour definition and applies the same rules a tour
controller applies at construction: a non-empty tour id, at least one step,
a target and title on every step, unique explicit tags, and a configuration
that leaves the user a way to advance or leave the tour.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := content.Load(args[0])
			if err != nil {
				printError("Invalid tour file")
				return err
			}

			printSuccess("Tour %q is valid", def.ID)
			printKeyValue("Steps", fmt.Sprintf("%d", len(def.Steps)))
			printKeyValue("Tooltip", fmt.Sprintf("%.0f×%.0f (estimate)",
				def.Config.InitialTooltipSize.Width, def.Config.InitialTooltipSize.Height))
			printKeyValue("Padding", fmt.Sprintf("%.0f", def.Config.EdgePadding))
			for i, s := range def.Steps {
				tag := s.Tag
				if tag == "" {
					tag = tour.DefaultTag(i)
				}
				printDetail("%d. %s → %s (tag %s)", i+1, s.Target, s.Title, tag)
			}
			return nil
		},
	}
}
