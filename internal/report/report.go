// Package report renders analysis results as deterministic plain text
// and generates migration artifacts. Apart from the explicitly
// timestamped patch variant, output is byte-for-byte reproducible on
// unchanged input: every listing is sorted, nothing depends on map
// iteration order.
package report

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/oxmigrate/oxmigrate-cli/internal/analyze"
	"github.com/oxmigrate/oxmigrate-cli/internal/rule"
)

// Generate renders the tree-wide analysis as a human-readable report.
func Generate(res *analyze.Result) string {
	var b strings.Builder

	b.WriteString("oxlint migration report\n")
	b.WriteString("=======================\n")

	disabledScopes := whollyDisabledScopes(res)
	if len(disabledScopes) > 0 {
		b.WriteString("\nESLint plugins fully covered by oxlint (remove from your configs):\n")
		for _, scope := range disabledScopes {
			fmt.Fprintf(&b, "  - %s\n", scope)
		}
	}

	dedup := newAncestorFilter()
	var toRemove, inherited, redundant int

	for _, fr := range orderByDepth(res.Results) {
		removable := dedup.filter(fr.ConfigPath, dropScopes(fr.Result.Removable, disabledScopes))
		inheritedRules := dedup.filter(fr.ConfigPath, dropScopes(fr.Result.InheritedRemovable, disabledScopes))
		redundantOffs := dropScopes(fr.Result.RedundantlyDisabled, disabledScopes)
		dedup.add(fr.ConfigPath, removable)
		dedup.add(fr.ConfigPath, inheritedRules)

		if len(removable)+len(inheritedRules)+len(redundantOffs) == 0 {
			continue
		}

		fmt.Fprintf(&b, "\n%s\n", fr.ConfigPath)
		if len(removable) > 0 {
			b.WriteString("  rules to remove:\n")
			for _, name := range removable {
				fmt.Fprintf(&b, "    %q: \"off\",\n", rule.Display(name))
			}
			toRemove += len(removable)
		}
		if len(inheritedRules) > 0 {
			b.WriteString("  inherited rules to disable here:\n")
			for _, name := range inheritedRules {
				fmt.Fprintf(&b, "    %q: \"off\",\n", rule.Display(name))
			}
			inherited += len(inheritedRules)
		}
		if len(redundantOffs) > 0 {
			b.WriteString("  redundant override disables:\n")
			for _, name := range redundantOffs {
				fmt.Fprintf(&b, "    %q: \"off\", // redundant: oxlint already covers this rule\n", rule.Display(name))
			}
			redundant += len(redundantOffs)
		}
	}

	stillNeeded := dropScopes(res.UnsupportedRulesUnion, disabledScopes)
	if len(stillNeeded) > 0 {
		b.WriteString("\nRules still requiring ESLint:\n")
		for _, name := range stillNeeded {
			fmt.Fprintf(&b, "  - %s\n", rule.Display(name))
		}
	}

	if len(res.ConfigsWithoutTarget) > 0 {
		b.WriteString("\nConfigs without a paired .oxlintrc.json:\n")
		for _, path := range res.ConfigsWithoutTarget {
			fmt.Fprintf(&b, "  - %s\n", path)
		}
	}

	if len(res.Warnings) > 0 {
		b.WriteString("\nWarnings:\n")
		for _, w := range res.Warnings {
			fmt.Fprintf(&b, "  - %s\n", w)
		}
	}

	fmt.Fprintf(&b, "\nSummary: %d removable, %d inherited to disable, %d redundant overrides, %d still needed\n",
		toRemove, inherited, redundant, len(stillNeeded))

	return b.String()
}

// whollyDisabledScopes unions the per-file plugin subsumption results.
func whollyDisabledScopes(res *analyze.Result) []string {
	seen := make(map[string]bool)
	for _, fr := range res.Results {
		for _, scope := range fr.Result.PluginsToDisable {
			seen[scope] = true
		}
	}
	scopes := make([]string, 0, len(seen))
	for scope := range seen {
		scopes = append(scopes, scope)
	}
	sort.Strings(scopes)
	return scopes
}

// dropScopes filters out rules whose plugin scope is wholly disabled.
// Those plugins are reported once at the top rather than rule by rule.
func dropScopes(names []string, scopes []string) []string {
	if len(scopes) == 0 {
		return names
	}
	drop := make(map[string]bool, len(scopes))
	for _, s := range scopes {
		drop[s] = true
	}
	var kept []string
	for _, name := range names {
		if !drop[rule.Scope(name)] {
			kept = append(kept, name)
		}
	}
	return kept
}

// orderByDepth sorts file results by increasing path depth, then path.
// Ancestor deduplication depends on shallower configs being rendered
// first.
func orderByDepth(results []analyze.FileResult) []analyze.FileResult {
	ordered := make([]analyze.FileResult, len(results))
	copy(ordered, results)
	sort.SliceStable(ordered, func(i, j int) bool {
		di := strings.Count(filepath.ToSlash(ordered[i].ConfigPath), "/")
		dj := strings.Count(filepath.ToSlash(ordered[j].ConfigPath), "/")
		if di != dj {
			return di < dj
		}
		return ordered[i].ConfigPath < ordered[j].ConfigPath
	})
	return ordered
}

// ancestorFilter suppresses suggestions already made for an ancestor
// directory. Once a rule is suggested at the root, nested configs do
// not repeat the instruction.
type ancestorFilter struct {
	byDir map[string]map[string]bool
}

func newAncestorFilter() *ancestorFilter {
	return &ancestorFilter{byDir: make(map[string]map[string]bool)}
}

// filter drops names already suggested at the config's directory or
// any of its ancestors.
func (f *ancestorFilter) filter(configPath string, names []string) []string {
	if len(names) == 0 {
		return names
	}
	suggested := f.ancestorSet(filepath.Dir(configPath))
	var kept []string
	for _, name := range names {
		if !suggested[name] {
			kept = append(kept, name)
		}
	}
	return kept
}

// add records this file's own (already filtered) suggestions for
// descendants to consult.
func (f *ancestorFilter) add(configPath string, names []string) {
	if len(names) == 0 {
		return
	}
	dir := filepath.Dir(configPath)
	set := f.byDir[dir]
	if set == nil {
		set = make(map[string]bool)
		f.byDir[dir] = set
	}
	for _, name := range names {
		set[name] = true
	}
}

// ancestorSet unions the suggestion sets of dir and all its ancestors.
func (f *ancestorFilter) ancestorSet(dir string) map[string]bool {
	union := make(map[string]bool)
	for {
		for name := range f.byDir[dir] {
			union[name] = true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return union
		}
		dir = parent
	}
}
