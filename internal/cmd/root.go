package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// verbose is a global flag for verbose output
var verbose bool

var rootCmd = &cobra.Command{
	Use:   "oxmigrate",
	Short: "oxmigrate - find ESLint rules made redundant by oxlint",
	Long: `oxmigrate compares the ESLint configuration tree of a project against
its oxlint configuration and reports which ESLint rules are now redundant:
rules oxlint already enforces can be removed or disabled, entire plugins
can be dropped when every rule they contribute is covered, and dead
override disables are flagged.

Rules oxlint does not support stay in ESLint and are listed separately.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(applyCmd)
	// Note: mcpCmd and versionCmd are registered in their own init()
}
