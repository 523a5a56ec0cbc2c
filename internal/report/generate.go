package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/oxmigrate/oxmigrate-cli/internal/analyze"
	"github.com/oxmigrate/oxmigrate-cli/internal/rule"
)

// PatchFilename is where the generated ESLint patch is written.
const PatchFilename = "oxmigrate-eslint-off.jsonc"

// BuildESLintPatch renders the generated-file variant of the report: a
// JSONC fragment of "off" entries to paste into each config, stamped
// with a single generation timestamp. Callers snapshotting the output
// must normalize the timestamp line; everything else is deterministic.
func BuildESLintPatch(res *analyze.Result, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "// Generated by oxmigrate on %s\n", now.UTC().Format(time.RFC3339))
	b.WriteString("// Paste each block's \"off\" entries into the rules section of the named config.\n")

	disabledScopes := whollyDisabledScopes(res)
	dedup := newAncestorFilter()

	for _, fr := range orderByDepth(res.Results) {
		removable := dedup.filter(fr.ConfigPath, dropScopes(fr.Result.Removable, disabledScopes))
		inherited := dedup.filter(fr.ConfigPath, dropScopes(fr.Result.InheritedRemovable, disabledScopes))
		dedup.add(fr.ConfigPath, removable)
		dedup.add(fr.ConfigPath, inherited)

		if len(removable)+len(inherited) == 0 {
			continue
		}

		fmt.Fprintf(&b, "\n// %s\n", fr.ConfigPath)
		for _, name := range removable {
			fmt.Fprintf(&b, "%q: \"off\",\n", rule.Display(name))
		}
		for _, name := range inherited {
			fmt.Fprintf(&b, "%q: \"off\", // inherited; disable locally\n", rule.Display(name))
		}
	}

	return b.String()
}

// SeedOxlintConfig is the content written for configs that have no
// paired .oxlintrc.json yet.
const SeedOxlintConfig = "{\n  \"rules\": {}\n}\n"
