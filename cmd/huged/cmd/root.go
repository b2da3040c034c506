package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vanderheijden86/hugegraph/internal/telemetry"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "huged",
	Short: "Run graph algorithms over the hugegraph Pregel core",
	Long: `huged builds a synthetic input graph and runs one of the core's
registered algorithms over it, printing a one-line summary of the result
(status and supersteps for the Pregel-based algorithms).`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			telemetry.SetEnabled(true)
		}
	},
}

// Execute runs the root command, exiting the process with status 1 on
// error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
