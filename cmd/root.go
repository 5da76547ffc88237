package cmd

import (
	"github.com/spf13/cobra"
)

// rootCmd represents the base command. Running it with no arguments performs
// the cross-reference check with the built-in configuration.
var rootCmd = &cobra.Command{
	Use:   "apidrift",
	Short: "Flags API endpoints that appear unused by UI code",
	Long: `apidrift statically cross-references server-side route declarations
against client-side source files and reports API endpoints that no UI
artifact appears to reference.

The check is textual: routes are recovered from the registration file with a
fixed lexical pattern and matched against UI files as loose substrings, with
path parameters widened to "any non-slash run". Results are advisory; routes
may still be consumed by non-UI clients.`,
	Version: Version,
	Args:    cobra.NoArgs,
	RunE:    runCheck,
}

// Execute runs the root command and its subcommands.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "text", "output format (text, json)")
	rootCmd.PersistentFlags().String("root", ".", "repository root that configured paths resolve against")
	rootCmd.PersistentFlags().String("config", "", "config file (default: discovered .apidrift.yaml)")
}
