package main

import (
	"github.com/spf13/cobra"
)

var (
	verbose bool
	quiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "argspan",
	Short: "Argspan - locate parameter spans on a command line",
	Long: `Argspan finds the exact byte spans that a named parameter occupies in a raw
command line: its declaration marker, name text, delimiter, and value content.

Spans are reported against the flattened argv string (tokens joined with single
spaces) so diagnostics can underline the precise substring responsible for an
error.`,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode (errors only)")

	// Add subcommands
	rootCmd.AddCommand(locateCmd)
	rootCmd.AddCommand(aliasesCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
