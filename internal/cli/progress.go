package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/usherkit/usher/pkg/progress"
)

// progressCommand creates the progress management command.
func (c *CLI) progressCommand() *cobra.Command {
	var redisAddr string

	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Inspect and manage recorded tour progress",
	}

	cmd.PersistentFlags().StringVar(&redisAddr, "redis", "", "redis address for progress storage (host:port)")

	cmd.AddCommand(c.progressListCommand(&redisAddr))
	cmd.AddCommand(c.progressClearCommand(&redisAddr))

	return cmd
}

// progressListCommand creates the "progress list" subcommand.
func (c *CLI) progressListCommand(redisAddr *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recorded tour outcomes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := newStore(cmd.Context(), *redisAddr)
			if err != nil {
				return fmt.Errorf("open progress store: %w", err)
			}
			defer store.Close()

			records, err := store.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("list progress: %w", err)
			}
			if len(records) == 0 {
				printInfo("No tour progress recorded")
				return nil
			}

			rows := make([][]string, 0, len(records))
			for _, rec := range records {
				rows = append(rows, []string{
					rec.TourID,
					string(rec.Status),
					fmt.Sprintf("%d", rec.StepsSeen),
					rec.UpdatedAt.Local().Format("2006-01-02 15:04"),
				})
			}

			headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
				Headers("Tour", "Status", "Steps seen", "Updated").
				Rows(rows...).
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == -1 {
						return headerStyle
					}
					if col == 1 && records[row].Status == progress.StatusCompleted {
						return StyleSuccess
					}
					return lipgloss.NewStyle()
				})

			fmt.Println(t.Render())
			return nil
		},
	}
}

// progressClearCommand creates the "progress clear" subcommand.
func (c *CLI) progressClearCommand(redisAddr *string) *cobra.Command {
	return &cobra.Command{
		Use:   "clear [tour-id...]",
		Short: "Delete recorded tour outcomes",
		Long: `Clear deletes the progress records for the given tour ids, or every
record when no id is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := newStore(cmd.Context(), *redisAddr)
			if err != nil {
				return fmt.Errorf("open progress store: %w", err)
			}
			defer store.Close()

			ids := args
			if len(ids) == 0 {
				records, err := store.List(cmd.Context())
				if err != nil {
					return fmt.Errorf("list progress: %w", err)
				}
				for _, rec := range records {
					ids = append(ids, rec.TourID)
				}
			}
			if len(ids) == 0 {
				printInfo("No tour progress recorded")
				return nil
			}

			for _, id := range ids {
				if err := store.Delete(cmd.Context(), id); err != nil {
					return fmt.Errorf("delete %q: %w", id, err)
				}
			}
			printSuccess("Cleared %d record(s)", len(ids))
			return nil
		},
	}
}
