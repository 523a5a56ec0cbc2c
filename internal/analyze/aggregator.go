// Package analyze walks a directory tree of ESLint configs, pairs each
// with its oxlint config, runs reconciliation per pair, and merges the
// per-file results into one tree-wide view.
package analyze

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/oxmigrate/oxmigrate-cli/internal/confload"
	"github.com/oxmigrate/oxmigrate-cli/internal/eslint"
	"github.com/oxmigrate/oxmigrate-cli/internal/oxlint"
	"github.com/oxmigrate/oxmigrate-cli/internal/reconcile"
	"github.com/oxmigrate/oxmigrate-cli/internal/registry"
)

// Options configure a directory analysis run.
type Options struct {
	// TypeAware enables classification of type-aware rules.
	TypeAware bool

	// Verbose prints collaborator diagnostics to stderr.
	Verbose bool

	// Registry overrides catalog loading; used by tests and by callers
	// that already hold a built registry. When nil the catalog is
	// loaded from the oxlint binary and the type-aware list from its
	// default source.
	Registry *registry.Registry

	// TypeAwareSource overrides the type-aware rule list source.
	// Ignored when Registry is set.
	TypeAwareSource registry.TypeAwareSource
}

// FileResult pairs one config file with its classification.
type FileResult struct {
	ConfigPath string
	TargetPath string
	Result     *reconcile.Result
}

// Result is the tree-wide analysis output.
type Result struct {
	Results               []FileResult
	ConfigsWithTarget     []string
	ConfigsWithoutTarget  []string
	UnsupportedRulesUnion []string

	// Warnings carry recovered per-file failures. Never silently
	// dropped; the caller decides how to render them.
	Warnings []string
}

// CycleError reports an extends cycle among discovered configs.
type CycleError struct {
	Paths []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("extends cycle among configs: %v", e.Paths)
}

// Directory analyzes every ESLint config under root. Registry/catalog
// failures are fatal; per-file failures become warnings and the run
// continues over the remaining files.
func Directory(ctx context.Context, root string, opts Options) (*Result, error) {
	reg := opts.Registry
	if reg == nil {
		entries, err := oxlint.LoadRuleCatalog(ctx, root)
		if err != nil {
			return nil, err
		}
		source := opts.TypeAwareSource
		if source == nil {
			source = registry.NewHTTPSource()
		}
		reg = registry.New(entries, registry.LoadTypeAwareRules(ctx, source, opts.Verbose))
	}

	res := &Result{}

	paths, err := eslint.DiscoverConfigFiles(root)
	if err != nil {
		return nil, fmt.Errorf("config discovery failed: %w", err)
	}

	// Resolve every meaningful config up front; the forest ordering
	// needs all extendsFrom edges before any file is processed.
	nodes := make(map[string]*eslint.Config)
	var nodePaths []string
	for _, path := range paths {
		cfg, err := eslint.ResolveConfig(path)
		if err != nil {
			// package.json files without an eslintConfig field are not
			// configs at all, only genuinely broken files warrant a
			// warning.
			if !errors.Is(err, confload.ErrNoConfig) {
				res.Warnings = append(res.Warnings, fmt.Sprintf("skipping %s: %v", path, err))
			}
			continue
		}
		// Pure-extends configs (and package.json files without an
		// eslintConfig) have nothing to reconcile.
		if !eslint.HasMeaningfulRules(path) {
			continue
		}
		nodes[canonical(path)] = cfg
		nodePaths = append(nodePaths, path)
	}

	ordered, cycles := orderParentsFirst(nodes, nodePaths)
	for _, cyc := range cycles {
		res.Warnings = append(res.Warnings, (&CycleError{Paths: cyc}).Error())
	}

	unsupported := make(map[string]bool)
	for _, cfg := range ordered {
		targetPath := oxlint.FindPairedConfig(cfg.Path)
		if targetPath == "" {
			res.ConfigsWithoutTarget = append(res.ConfigsWithoutTarget, cfg.Path)
			continue
		}

		target, err := oxlint.LoadConfig(targetPath)
		if err != nil {
			res.Warnings = append(res.Warnings, fmt.Sprintf("skipping %s: %v", cfg.Path, err))
			continue
		}

		classification := reconcile.Reconcile(
			cfg.Resolved, cfg.Raw, cfg.OverrideRules,
			target.Resolved, reg,
			reconcile.Options{TypeAware: opts.TypeAware},
		)

		res.Results = append(res.Results, FileResult{
			ConfigPath: cfg.Path,
			TargetPath: targetPath,
			Result:     classification,
		})
		res.ConfigsWithTarget = append(res.ConfigsWithTarget, cfg.Path)
		for _, name := range classification.Unsupported {
			unsupported[name] = true
		}
	}

	for name := range unsupported {
		res.UnsupportedRulesUnion = append(res.UnsupportedRulesUnion, name)
	}
	sort.Strings(res.UnsupportedRulesUnion)
	sort.Strings(res.ConfigsWithoutTarget)

	return res, nil
}

// canonical normalizes a path for identity comparison between
// discovered paths and resolver-produced extendsFrom references.
func canonical(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}

// orderParentsFirst returns configs in a stable depth-first order with
// parents before children wherever both sides of an extends edge were
// discovered. Roots and siblings are ordered lexicographically by
// path. Configs trapped in an extends cycle are excluded from the
// ordering and reported.
func orderParentsFirst(nodes map[string]*eslint.Config, nodePaths []string) ([]*eslint.Config, [][]string) {
	children := make(map[string][]string)
	hasParent := make(map[string]bool)

	sort.Strings(nodePaths)
	for _, path := range nodePaths {
		key := canonical(path)
		cfg := nodes[key]
		if cfg.ExtendsFrom == "" {
			continue
		}
		parentKey := canonical(cfg.ExtendsFrom)
		if _, ok := nodes[parentKey]; !ok {
			continue // parent not in the discovered set
		}
		children[parentKey] = append(children[parentKey], key)
		hasParent[key] = true
	}

	var ordered []*eslint.Config
	visited := make(map[string]bool)

	var visit func(key string)
	visit = func(key string) {
		if visited[key] {
			return
		}
		visited[key] = true
		ordered = append(ordered, nodes[key])
		kids := children[key]
		sort.Slice(kids, func(i, j int) bool { return nodes[kids[i]].Path < nodes[kids[j]].Path })
		for _, kid := range kids {
			visit(kid)
		}
	}

	for _, path := range nodePaths {
		key := canonical(path)
		if !hasParent[key] {
			visit(key)
		}
	}

	// Anything unvisited sits on an extends cycle: every member has a
	// parent, so no root ever reaches it.
	var cycle []string
	for _, path := range nodePaths {
		if !visited[canonical(path)] {
			cycle = append(cycle, path)
		}
	}
	if len(cycle) == 0 {
		return ordered, nil
	}
	sort.Strings(cycle)
	return ordered, [][]string{cycle}
}
