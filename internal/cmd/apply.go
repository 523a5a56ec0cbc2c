package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/oxmigrate/oxmigrate-cli/internal/analyze"
	"github.com/oxmigrate/oxmigrate-cli/internal/oxlint"
	"github.com/oxmigrate/oxmigrate-cli/internal/report"
	"github.com/oxmigrate/oxmigrate-cli/internal/ui"
)

var applyCmd = &cobra.Command{
	Use:   "apply [path]",
	Short: "Generate migration files from the analysis",
	Long: `Runs the same analysis as 'analyze' and writes migration artifacts:
a JSONC patch listing the "off" entries to paste into each ESLint config,
and a seed .oxlintrc.json next to every ESLint config that has none yet.

Existing files are only overwritten after confirmation (or with --yes).`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := "."
		if len(args) > 0 {
			root = args[0]
		}

		typeAware, _ := cmd.Flags().GetBool("type-aware")
		yes, _ := cmd.Flags().GetBool("yes")

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

		patchPath := filepath.Join(root, report.PatchFilename)
		if err := writeConfirmed(patchPath, []byte(report.BuildESLintPatch(res, time.Now())), yes); err != nil {
			return err
		}

		for _, cfgPath := range res.ConfigsWithoutTarget {
			seedPath := filepath.Join(filepath.Dir(cfgPath), oxlint.ConfigFilename)
			if err := writeConfirmed(seedPath, []byte(report.SeedOxlintConfig), yes); err != nil {
				return err
			}
		}

		return nil
	},
}

// writeConfirmed writes a file, asking before overwriting an existing
// one unless confirmation was skipped with --yes.
func writeConfirmed(path string, content []byte, yes bool) error {
	if _, err := os.Stat(path); err == nil && !yes {
		prompt := promptui.Prompt{
			Label:     fmt.Sprintf("Overwrite %s", path),
			IsConfirm: true,
		}
		if _, err := prompt.Run(); err != nil {
			ui.PrintInfo(fmt.Sprintf("skipped %s", path))
			return nil
		}
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	ui.PrintOK(fmt.Sprintf("wrote %s", path))
	return nil
}

func init() {
	applyCmd.Flags().Bool("type-aware", false, "include rules that need cross-file type information")
	applyCmd.Flags().BoolP("yes", "y", false, "overwrite existing files without asking")
}
