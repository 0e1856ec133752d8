// Package cli implements the usher command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/usherkit/usher/pkg/buildinfo"
	"github.com/usherkit/usher/pkg/progress"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "usher"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "usher",
		Short:        "Usher runs guided tours inside terminal applications",
		Long:         `Usher is a library and CLI for spotlight onboarding tours in bubbletea applications: it highlights one region of the screen at a time and walks the user through it step by step.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.demoCommand())
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.progressCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Store Factory
// =============================================================================

// newStore opens the progress backend selected by the --redis flag: the
// redis store when an address is given, the file store under the config
// directory otherwise.
func newStore(ctx context.Context, redisAddr string) (progress.Store, error) {
	if redisAddr != "" {
		return progress.NewRedisStore(ctx, progress.RedisConfig{Addr: redisAddr})
	}
	dir, err := progressDir()
	if err != nil {
		return nil, err
	}
	return progress.NewFileStore(dir)
}

// =============================================================================
// Paths
// =============================================================================

// progressDir returns the progress directory using XDG standard
// (~/.config/usher/progress/).
func progressDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "progress"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "progress"), nil
}
