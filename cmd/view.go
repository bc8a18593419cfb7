package cmd

import (
	"github.com/spf13/cobra"

	"github.com/RickarySanchez/RusticFourier/internal/domain"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View the last saved scan report",
		Long:  "View the scan report previously saved to the reports directory.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.View(cmd.Context(), domain.ViewArgs{Reports: reportsPath()})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
