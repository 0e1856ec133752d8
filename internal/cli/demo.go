package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/usherkit/usher/pkg/content"
	"github.com/usherkit/usher/pkg/progress"
	"github.com/usherkit/usher/pkg/teatour"
	"github.com/usherkit/usher/pkg/tour"
)

// demoCommand creates the demo command, a small document-browser screen with
// a guided tour running over it.
func (c *CLI) demoCommand() *cobra.Command {
	var (
		tourFile  string
		redisAddr string
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in demo application with a guided tour",
		Long: `Demo starts a small terminal application and immediately runs a guided
tour over it. By default the built-in three-step tour is used; --tour loads
a TOML tour definition instead (its targets must be sidebar, list, or
status). Tour outcomes are written to the progress store.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDemo(cmd.Context(), tourFile, redisAddr)
		},
	}

	cmd.Flags().StringVar(&tourFile, "tour", "", "TOML tour definition to run instead of the built-in tour")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "redis address for progress storage (host:port)")

	return cmd
}

func (c *CLI) runDemo(ctx context.Context, tourFile, redisAddr string) error {
	def := builtinTour()
	if tourFile != "" {
		loaded, err := content.Load(tourFile)
		if err != nil {
			return err
		}
		def = loaded
	}

	store, err := newStore(ctx, redisAddr)
	if err != nil {
		c.Logger.Warn("progress store unavailable, recording in memory", "err", err)
		store = progress.NewMemoryStore()
	}
	defer store.Close()

	if rec, err := store.Get(ctx, def.ID); err != nil {
		c.Logger.Warn("progress lookup failed", "err", err)
	} else if rec != nil && rec.Status == progress.StatusCompleted {
		printInfo("Tour %q was already completed on %s, running again",
			def.ID, rec.UpdatedAt.Format("Jan 2, 2006"))
	}

	recorder := newTourRecorder(ctx, store, c.Logger, len(def.Steps))
	defer recorder.detach()

	reg := teatour.NewRegistry()
	m := teatour.New(newDemoModel(reg), reg)

	controller, err := tour.New(def.ID, def.Steps, def.Config, tour.Callbacks{}, m)
	if err != nil {
		return err
	}
	m.Attach(controller)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run demo: %w", err)
	}
	if err := m.Err(); err != nil {
		return err
	}

	printSuccess("Demo finished")
	printDetail("Tour: %s", def.ID)
	return nil
}

// builtinTour is the demo's default three-step tour.
func builtinTour() *content.Tour {
	return &content.Tour{
		ID: "demo",
		Steps: []tour.Step{
			{
				Target:      "sidebar",
				Title:       "Collections",
				Description: "Your collections live in the sidebar. The active one feeds the document list.",
				Tag:         "collections",
			},
			{
				Target:      "list",
				Title:       "Documents",
				Description: "Move through documents with j and k. Press q at any time to leave the demo.",
				Tag:         "documents",
			},
			{
				Target:      "status",
				Title:       "Status bar",
				Description: "Sync state and key hints always show down here.",
				Tag:         "status",
			},
		},
		Config: tour.DefaultConfig(),
	}
}
