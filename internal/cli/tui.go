package cli

import (
	"github.com/spf13/cobra"

	"github.com/plof27/atomichron/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the terminal UI",
	Long:  `Launch the interactive terminal user interface showing the running entry live.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run(appInstance)
	},
}
