package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/plof27/atomichron/internal/domain"
)

var stopTags []string

var stopCmd = &cobra.Command{
	Use:   "stop [project] [description]",
	Short: "Stop the running time entry",
	Long: `Stop the running time entry. A project, description, or tags given here
overwrite whatever was set at start time; tags only replace the existing
list when at least one tag is provided.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		project, description := entryArgs(args)

		entry, alreadyClosed, err := appInstance.Tracker.Stop(ctx, domain.StopOverrides{
			Project:     project,
			Description: description,
			Tags:        stopTags,
		})
		if err != nil {
			return fmt.Errorf("failed to stop entry: %w", err)
		}
		if entry == nil {
			fmt.Println("No entry running.")
			return nil
		}

		if alreadyClosed {
			fmt.Fprintln(os.Stderr, warnStyle.Render(
				"Entry was already stopped; keeping its original end time."))
		}

		fmt.Printf("%s Stopped %s\n", successStyle.Render("✓"), formatEntryLine(entry))
		fmt.Printf("  Duration: %s\n", formatDuration(entry.Duration()))

		return nil
	},
}

func init() {
	stopCmd.Flags().StringSliceVarP(&stopTags, "tags", "t", nil, "Replace the entry's tags (comma-separated)")
}
