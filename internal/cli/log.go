package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/plof27/atomichron/internal/domain"
)

var (
	logJSON      bool
	logAscending bool
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "List all time entries",
	Long:  `List all time entries grouped by day, most recent first.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		entries, err := appInstance.Tracker.Entries(ctx, logAscending)
		if err != nil {
			return fmt.Errorf("failed to list entries: %w", err)
		}

		if logJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(entries)
		}

		printLog(entries)
		return nil
	},
}

// printLog groups entries by day and prints them
func printLog(entries []*domain.Entry) {
	if len(entries) == 0 {
		fmt.Println("No entries found.")
		return
	}

	var currentDay string
	for _, e := range entries {
		day := e.StartTime.Format("2006-01-02")
		if day != currentDay {
			fmt.Println(mutedStyle.Render(day))
			currentDay = day
		}

		startStr := e.StartTime.Format("15:04")
		endStr := "ongoing"
		if e.EndTime != nil {
			endStr = e.EndTime.Format("15:04")
		}

		fmt.Printf("  %s–%s  %s %s\n",
			startStr, endStr, formatEntryLine(e),
			mutedStyle.Render("("+formatDuration(e.Duration())+")"))
	}
}

func init() {
	logCmd.Flags().BoolVar(&logJSON, "json", false, "Output in JSON format")
	logCmd.Flags().BoolVar(&logAscending, "ascending", false, "List oldest entries first")
}
