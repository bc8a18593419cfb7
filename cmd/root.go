// Package cmd provides the root command and CLI setup for fixtures.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/RickarySanchez/RusticFourier/internal/adapter"
	"github.com/RickarySanchez/RusticFourier/internal/controller"
	"github.com/RickarySanchez/RusticFourier/internal/domain"
	m "github.com/RickarySanchez/RusticFourier/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var reportStore adapter.ReportStore
var workflow domain.Workflow
var ui controller.UI

// reportsOutputDirFlag is a root-level flag shared by commands that read/write reports.
var reportsOutputDirFlag string

// anchorNameFlag names the ancestor directory fragments are resolved under.
var anchorNameFlag string

// skipHiddenFlag excludes dot-prefixed entries from matching.
var skipHiddenFlag bool

var verboseFlag bool
var logFileFlag string

func init() {
	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	reportStore = adapter.NewReportStore(fsAdapter)
	workflow = domain.NewWorkflow(fsAdapter, reportStore, ui)
}

const fragmentHelp = `Fragments are partial paths such as datasets/wavegen/sine. A fragment
matches the first entry below the anchor whose last N path components
contain all N fragment components, in any order.`

const rootLongDescription = `fixtures locates the project anchor directory by walking up from the
current working directory, resolves partial paths below it and loads the
JSON test fixtures found there.

` + fragmentHelp

const resolveLongDescription = `Resolve fragments below the anchor and print where each was found.

` + fragmentHelp

const scanLongDescription = `Load every fragment as a fixture, print a summary table and save a
YAML report to the output directory. Failed fixtures are reported, not fatal.

` + fragmentHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fixtures",
		Short: "Anchored fixture path resolver and loader",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&reportsOutputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"output directory for scan reports",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().StringVarP(&anchorNameFlag, anchorFlagName, "a", viper.GetString(anchorConfigKey), "name of the ancestor directory to anchor at")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(anchorFlagName), anchorConfigKey)

	cmd.PersistentFlags().BoolVar(&skipHiddenFlag, skipHiddenFlagName, viper.GetBool(skipHiddenConfigKey), "ignore dot-prefixed files and directories when matching")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(skipHiddenFlagName), skipHiddenConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func reportsPath() m.Path {
	return m.Path(viper.GetString(outputFlagName))
}
