package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "calamares-plan",
	Short: "Disk partition layout planner",
	Long: `calamares-plan computes erase-and-autopartition and replace-partition
layouts for a storage device: boot/ESP, optional swap and root as
non-overlapping sector ranges. It is a dry-run planner; it never touches
a device.`,
}

// Global flags shared by all commands
var (
	verbose bool
	quiet   bool
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress output except errors")

	rootCmd.AddCommand(
		planCmd,
		replaceCmd,
		suggestSwapCmd,
	)
}

// newLogger builds the CLI logger honoring the verbosity flags.
func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	if quiet {
		level = zerolog.ErrorLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
