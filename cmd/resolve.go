package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/RickarySanchez/RusticFourier/internal/domain"
)

// resolveCmd represents the resolve command.
var resolveCmd = newResolveCmd()

func newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <fragment>...",
		Short: "Resolve fragments below the anchor",
		Long:  resolveLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Resolve(cmd.Context(), domain.ResolveArgs{
				Root:       viper.GetString(anchorConfigKey),
				Fragments:  args,
				SkipHidden: viper.GetBool(skipHiddenConfigKey),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}
