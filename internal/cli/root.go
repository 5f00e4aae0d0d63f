package cli

import (
	"context"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/plof27/atomichron/internal/app"
)

var appInstance *app.App

var rootCmd = &cobra.Command{
	Use:   "atomichron",
	Short: "A minimal CLI time tracker",
	Long: `Atomichron tracks what you work on: start a named, tagged entry, stop it
when you're done, and review the log later.

All entries live in a single JSON file. At most one entry runs at a time;
starting a new entry stops the previous one first.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute(ctx context.Context, version string) error {
	return fang.Execute(ctx, rootCmd, fang.WithVersion(version))
}

// SetApp sets the app instance for commands to use
func SetApp(a *app.App) {
	appInstance = a
}

func init() {
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(tuiCmd)
}
