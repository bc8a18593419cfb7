package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/RickarySanchez/RusticFourier/internal/domain"
)

// loadCmd represents the load command.
var loadCmd = newLoadCmd()

func newLoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load <fragment>",
		Short: "Load one fixture and print its summary",
		Long:  "Resolve the fragment below the anchor, decode the JSON fixture found there and print its metadata.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Load(cmd.Context(), domain.LoadArgs{
				Root:       viper.GetString(anchorConfigKey),
				Fragment:   args[0],
				SkipHidden: viper.GetBool(skipHiddenConfigKey),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(loadCmd)
}
