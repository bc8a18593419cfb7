package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/RickarySanchez/RusticFourier/internal/domain"
)

// anchorCmd represents the anchor command.
var anchorCmd = newAnchorCmd()

func newAnchorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "anchor",
		Short: "Show the path from the working directory to the anchor",
		Long: `Walk up from the current working directory to the first ancestor named
by --anchor and print the relative path to it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.Root(cmd.Context(), domain.RootArgs{Name: viper.GetString(anchorConfigKey)})
		},
	}
}

func init() {
	rootCmd.AddCommand(anchorCmd)
}
