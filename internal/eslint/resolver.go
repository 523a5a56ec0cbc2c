// Package eslint discovers and resolves ESLint configuration files,
// producing the raw (file-local) and resolved (extends-chain) rule set
// views the reconciliation engine works on.
package eslint

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/oxmigrate/oxmigrate-cli/internal/confload"
	"github.com/oxmigrate/oxmigrate-cli/internal/rule"
)

// Config is one resolved ESLint config file.
type Config struct {
	// Path is the config file path as discovered.
	Path string

	// Resolved holds every rule applying to files governed by this
	// config after following all extends links. Override rules are
	// merged in only when they enable something.
	Resolved *rule.Set

	// Raw holds only the rules declared directly in this file's own
	// rule block and override blocks. On a name collision the top-level
	// severity is authoritative.
	Raw *rule.Set

	// OverrideRules holds only the rules declared in override blocks,
	// regardless of top-level declarations. The reconciliation engine
	// scans these for redundant explicit "off" entries.
	OverrideRules *rule.Set

	// ExtendsFrom is the immediate parent config path when the first
	// extends target is a relative file path, or "" when inheritance is
	// package-based or absent.
	ExtendsFrom string
}

// ResolveConfig loads and resolves one config file. It fails with
// *NotFoundError when the path does not exist and *ParseError when the
// file cannot be parsed into the expected shape.
func ResolveConfig(path string) (*Config, error) {
	return resolve(path, map[string]bool{})
}

func resolve(path string, visiting map[string]bool) (*Config, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	// Guard against extends cycles; the aggregator reports them as a
	// configuration error, here we only need to not recurse forever.
	if visiting[abs] {
		return &Config{Path: path, Resolved: rule.NewSet(), Raw: rule.NewSet(), OverrideRules: rule.NewSet()}, nil
	}
	visiting[abs] = true
	defer delete(visiting, abs)

	raw, err := loadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Path:          path,
		Resolved:      rule.NewSet(),
		Raw:           rule.NewSet(),
		OverrideRules: rule.NewSet(),
	}

	// Raw view: top-level first, then overrides without displacing
	// top-level entries. The raw view is a per-name map, not a list.
	topLevel := rule.NewSet()
	for name, value := range raw.Rules {
		r, err := rule.Parse(name, value)
		if err != nil {
			return nil, &ParseError{Path: path, Err: err}
		}
		topLevel.Put(r)
		cfg.Raw.Put(r)
	}
	for _, o := range raw.Overrides {
		for name, value := range o.Rules {
			r, err := rule.Parse(name, value)
			if err != nil {
				return nil, &ParseError{Path: path, Err: err}
			}
			cfg.Raw.PutIfAbsent(r)
			cfg.OverrideRules.Put(r)
		}
	}

	// Resolved view: parents first, in declaration order, so later
	// sources win on collision.
	for _, target := range raw.Extends {
		parentPath, ok := resolveExtendsTarget(path, target)
		if !ok {
			continue
		}
		parent, err := resolve(parentPath, visiting)
		if err != nil {
			// A missing or malformed parent aborts this file's
			// resolution; the aggregator recovers per file.
			return nil, err
		}
		cfg.Resolved.Merge(parent.Resolved)
		if cfg.ExtendsFrom == "" {
			cfg.ExtendsFrom = parentPath
		}
	}

	// Own top-level rules override anything inherited, including
	// explicit disables. Override-block rules are merged in only when
	// they enable something: a file-scoped "off" narrows patterns, it
	// does not turn the rule off for the config as a whole.
	cfg.Resolved.Merge(topLevel)
	for _, name := range cfg.OverrideRules.Names() {
		r, _ := cfg.OverrideRules.Get(name)
		if !r.Severity.Enabled() {
			continue
		}
		if !topLevel.Has(name) {
			cfg.Resolved.Put(r)
		}
	}

	return cfg, nil
}

// resolveExtendsTarget maps an extends entry to a config file path.
// Only relative (or absolute) file paths are resolvable; package or
// registry references ("eslint:recommended", "plugin:react/recommended",
// bare package names) are treated as no parent.
func resolveExtendsTarget(fromPath, target string) (string, bool) {
	if strings.HasPrefix(target, "./") || strings.HasPrefix(target, "../") {
		return filepath.Join(filepath.Dir(fromPath), target), true
	}
	if filepath.IsAbs(target) {
		return target, true
	}
	return "", false
}

// loadFile reads and parses a config file via the loader registry.
func loadFile(path string) (*confload.RawConfig, error) {
	loader, err := confload.Global().ForFile(filepath.Base(path))
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, &ParseError{Path: path, Err: err}
	}

	cfg, err := loader.Parse(data)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return cfg, nil
}

// HasMeaningfulRules reports whether the config at path declares any
// top-level rule or any override with rules. A file the registry cannot
// parse, or a package.json without an eslintConfig field, counts as not
// meaningful rather than an error.
func HasMeaningfulRules(path string) bool {
	raw, err := loadFile(path)
	if err != nil {
		return false
	}
	return raw.HasMeaningfulRules()
}
