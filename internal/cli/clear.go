package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:     "clear",
	Aliases: []string{"reset"},
	Short:   "Discard the running time entry",
	Long: `Stop the running time entry and throw it away, as if it was never
started. Useful for cancelling an entry started by mistake.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		entry, err := appInstance.Tracker.Clear(ctx)
		if err != nil {
			return fmt.Errorf("failed to clear entry: %w", err)
		}
		if entry == nil {
			fmt.Println("No entry running.")
			return nil
		}

		fmt.Printf("%s Discarded %s\n", successStyle.Render("✓"), formatEntryLine(entry))

		return nil
	},
}
