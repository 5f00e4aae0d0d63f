package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var startTags []string

var startCmd = &cobra.Command{
	Use:   "start [project] [description]",
	Short: "Start a new time entry",
	Long: `Start a new time entry with an optional project, description, and tags.
If an entry is already running, it is stopped as-is before the new one starts.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		project, description := entryArgs(args)

		started, stopped, err := appInstance.Tracker.Start(ctx, project, description, startTags)
		if err != nil {
			return fmt.Errorf("failed to start entry: %w", err)
		}

		if stopped != nil {
			fmt.Fprintln(os.Stderr, warnStyle.Render(
				fmt.Sprintf("Stopped running entry %s", stopped)))
		}

		fmt.Printf("%s Started %s\n", successStyle.Render("✓"), formatEntryLine(started))
		fmt.Printf("  At: %s\n", started.StartTime.Format(timeFormat()))

		return nil
	},
}

func init() {
	startCmd.Flags().StringSliceVarP(&startTags, "tags", "t", nil, "Tags for this entry (comma-separated)")
}
