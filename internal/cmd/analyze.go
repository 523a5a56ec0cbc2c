package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/oxmigrate/oxmigrate-cli/internal/analyze"
	"github.com/oxmigrate/oxmigrate-cli/internal/report"
	"github.com/oxmigrate/oxmigrate-cli/internal/ui"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [path]",
	Short: "Analyze a directory tree and report redundant ESLint rules",
	Long: `Discovers every ESLint config under the given path (default: current
directory), pairs each with the .oxlintrc.json in the same directory, and
reports which rules are covered by oxlint, which plugins can be dropped
entirely, and which rules still need ESLint.

Loading the oxlint rule catalog requires oxlint to be installed locally
(node_modules) or globally; npx is used as a last resort.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := "."
		if len(args) > 0 {
			root = args[0]
		}

		typeAware, _ := cmd.Flags().GetBool("type-aware")
		output, _ := cmd.Flags().GetString("output")
		open, _ := cmd.Flags().GetBool("open")
		asJSON, _ := cmd.Flags().GetBool("json")

		res, err := analyze.Directory(cmd.Context(), root, analyze.Options{
			TypeAware: typeAware,
			Verbose:   verbose,
		})
		if err != nil {
			return err
		}

		for _, w := range res.Warnings {
			ui.PrintWarn(w)
		}

		var rendered string
		if asJSON {
			data, err := json.MarshalIndent(res, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode result: %w", err)
			}
			rendered = string(data) + "\n"
		} else {
			rendered = report.Generate(res)
		}

		if output == "" && !open {
			fmt.Print(rendered)
			return nil
		}

		if output == "" {
			output = filepath.Join(root, "oxmigrate-report.txt")
		}
		if err := os.WriteFile(output, []byte(rendered), 0644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		ui.PrintOK(fmt.Sprintf("report written to %s", output))

		if open {
			if err := browser.OpenFile(output); err != nil {
				ui.PrintWarn(fmt.Sprintf("could not open report: %v", err))
			}
		}
		return nil
	},
}

func init() {
	analyzeCmd.Flags().Bool("type-aware", false, "include rules that need cross-file type information")
	analyzeCmd.Flags().StringP("output", "o", "", "write the report to a file instead of stdout")
	analyzeCmd.Flags().Bool("open", false, "write the report to a file and open it")
	analyzeCmd.Flags().Bool("json", false, "emit the raw analysis result as JSON")
}
