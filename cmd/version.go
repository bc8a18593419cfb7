package cmd

import (
	"runtime"
	"runtime/debug"
	"strconv"

	"github.com/spf13/cobra"
)

const unknownVersion = "unknown"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the build version, the Go version and the config format version of fixtures.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			info, ok := debug.ReadBuildInfo()
			for _, line := range versionLines(info, ok) {
				cmd.Printf("%-15s %s\n", line[0], line[1])
			}
		},
	}
}

func versionLines(info *debug.BuildInfo, ok bool) [][2]string {
	toolVersion := unknownVersion
	goVersion := runtime.Version()

	if ok && info != nil {
		if info.Main.Version != "" {
			toolVersion = info.Main.Version
		}

		if info.GoVersion != "" {
			goVersion = info.GoVersion
		}
	}

	return [][2]string{
		{"fixtures", toolVersion},
		{"go version", goVersion},
		{"config version", strconv.Itoa(currentConfigVersion)},
	}
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
