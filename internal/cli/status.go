package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/plof27/atomichron/internal/domain"
)

var statusJSON bool

// statusPayload is the --json shape for the status command
type statusPayload struct {
	Running        bool          `json:"running"`
	Entry          *domain.Entry `json:"entry,omitempty"`
	ElapsedSeconds int64         `json:"elapsed_seconds"`
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the running time entry",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		entry, err := appInstance.Tracker.Current(ctx)
		if err != nil {
			return fmt.Errorf("failed to get current entry: %w", err)
		}

		if statusJSON {
			payload := statusPayload{Running: entry != nil, Entry: entry}
			if entry != nil {
				payload.ElapsedSeconds = int64(entry.Duration().Seconds())
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(payload)
		}

		if entry == nil {
			fmt.Println("No entry running.")
			return nil
		}

		fmt.Println("Running:")
		fmt.Printf("  Project: %s\n", entry.ProjectLabel())
		fmt.Printf("  Description: %s\n", entry.DescriptionLabel())
		fmt.Printf("  Tags: %v\n", entry.Tags)
		fmt.Printf("  Started: %s\n", entry.StartTime.Format(timeFormat()))
		fmt.Printf("  Elapsed: %s\n", formatDuration(entry.Duration()))

		return nil
	},
}

func init() {
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "Output in JSON format")
}
