// Package registry indexes the oxlint rule catalog for classification
// lookups: supported names, default-enabled plugin scopes, and rules
// that need cross-file type information.
package registry

import (
	"sort"

	"github.com/oxmigrate/oxmigrate-cli/internal/rule"
)

// Entry is one rule from the target linter's catalog.
type Entry struct {
	Scope     string `json:"scope"`
	LocalName string `json:"value"`
	Category  string `json:"category"`
}

// Name returns the canonical rule name for the entry. Core-language
// rules ("core"/"eslint" scopes) are registered without a scope, which
// is how oxlint names them.
func (e Entry) Name() string {
	if e.Scope == "" || e.Scope == "core" || e.Scope == "eslint" {
		return e.LocalName
	}
	return e.Scope + "/" + e.LocalName
}

// defaultEnabledScopes are the plugin scopes oxlint runs without any
// explicit configuration. Rules under any other scope must be enabled
// in the oxlint config to count as covered.
var defaultEnabledScopes = map[string]bool{
	"":           true, // core rules
	"core":       true,
	"eslint":     true,
	"oxc":        true,
	"typescript": true,
	"unicorn":    true,
	"react":      true,
}

// Registry is the read-only per-run index over the target rule catalog.
// Built once from the external catalog, never mutated afterwards, so it
// is safe to share across concurrent classification of independent
// config files.
type Registry struct {
	entries   map[string]Entry
	typeAware map[string]bool
}

// New builds a Registry from catalog entries and the type-aware rule
// name list (see LoadTypeAwareRules for how callers obtain the latter).
func New(entries []Entry, typeAwareNames []string) *Registry {
	r := &Registry{
		entries:   make(map[string]Entry, len(entries)),
		typeAware: make(map[string]bool, len(typeAwareNames)),
	}
	for _, e := range entries {
		r.entries[e.Name()] = e
	}
	for _, name := range typeAwareNames {
		r.typeAware[rule.Normalize(name)] = true
	}
	return r
}

// lookup finds the catalog entry for a name, trying the normalized form
// first and the scope-stripped bare form second. Some catalogs register
// core-language rules without any scope at all.
func (r *Registry) lookup(name string) (Entry, bool) {
	n := rule.Normalize(name)
	if e, ok := r.entries[n]; ok {
		return e, true
	}
	if e, ok := r.entries[rule.Bare(n)]; ok {
		return e, true
	}
	return Entry{}, false
}

// Supported reports whether the target linter recognizes the rule name.
func (r *Registry) Supported(name string) bool {
	_, ok := r.lookup(name)
	return ok
}

// DefaultEnabled reports whether the rule belongs to a plugin scope the
// target engine turns on without configuration.
func (r *Registry) DefaultEnabled(name string) bool {
	e, ok := r.lookup(name)
	if !ok {
		return false
	}
	return defaultEnabledScopes[e.Scope]
}

// TypeAware reports whether the rule requires cross-file type
// information to evaluate.
func (r *Registry) TypeAware(name string) bool {
	return r.typeAware[rule.Normalize(name)]
}

// Len returns the number of catalog entries.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Names returns every canonical rule name in the catalog, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
