package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/RickarySanchez/RusticFourier/internal/domain"
)

var scanParallelFlagValue int

// scanCmd represents the scan command.
var scanCmd = newScanCmd()

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan <fragment>...",
		Short: "Load a batch of fixtures and report failures",
		Long:  scanLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Scan(cmd.Context(), domain.ScanArgs{
				Root:       viper.GetString(anchorConfigKey),
				Fragments:  args,
				SkipHidden: viper.GetBool(skipHiddenConfigKey),
				Threads:    viper.GetInt(scanParallelKey),
				Reports:    reportsPath(),
			})
		},
	}

	configureScanFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

func configureScanFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&scanParallelFlagValue, scanParallelFlag, "p", viper.GetInt(scanParallelKey), "number of fixtures loaded in parallel")
	bindFlagToConfig(cmd.Flags().Lookup(scanParallelFlag), scanParallelKey)
}
