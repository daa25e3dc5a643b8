package commands

import (
	"log/slog"

	"github.com/ppiankov/s3reach/internal/config"
	"github.com/ppiankov/s3reach/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	version string
	commit  string
	date    string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:   "s3reach",
	Short: "s3reach - S3 access reachability checker",
	Long: `s3reach reads a list of S3 bucket domains or URLs from a text file,
normalizes each entry to a canonical s3:// address, and probes each one
under your current AWS credentials using minimal-permission calls.
It reports which entries are reachable, without transferring any data.

Part of the Spectre family of infrastructure cleanup tools.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(verbose)
		loaded, err := config.Load(".")
		if err != nil {
			slog.Warn("Failed to load config file", "error", err)
		} else {
			cfg = loaded
		}
	},
}

// Execute runs the root command with injected build info.
func Execute(v, c, d string) error {
	version = v
	commit = c
	date = d
	return rootCmd.Execute()
}

// GetVersion returns the current version.
func GetVersion() string {
	return version
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable verbose logging")
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(regionsCmd)
	rootCmd.AddCommand(versionCmd)
}
