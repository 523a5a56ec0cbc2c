// Package reconcile decides, for one ESLint config file paired with an
// oxlint config, which rules are redundant, which must stay, and which
// plugins become dead weight entirely.
package reconcile

import (
	"sort"

	"github.com/oxmigrate/oxmigrate-cli/internal/registry"
	"github.com/oxmigrate/oxmigrate-cli/internal/rule"
)

// Options control reconciliation behavior.
type Options struct {
	// TypeAware includes rules that need cross-file type information.
	// When false, such rules are excluded from every category: the
	// target engine will not evaluate them in this run mode, so they
	// are neither removable nor reportable as unsupported.
	TypeAware bool
}

// Result is the classification of one config file's rules. The
// removable / inheritedRemovable / unsupported categories are disjoint
// per rule name; redundantlyDisabled only examines override-local off
// entries and is independent of the others.
type Result struct {
	// Removable rules are directly defined here and already covered by
	// the enabled oxlint configuration; the declaration can be deleted.
	Removable []string

	// InheritedRemovable rules reach this file only through an extends
	// chain. They cannot be deleted here; the actionable edit is a
	// local disable.
	InheritedRemovable []string

	// RedundantlyDisabled rules are explicitly turned off in an
	// override block even though oxlint would already cover them, so
	// the override entry is dead configuration.
	RedundantlyDisabled []string

	// Unsupported rules are unknown to oxlint, or known but not
	// enabled under the target's own configuration. ESLint still has
	// to carry them.
	Unsupported []string

	// PluginsToDisable are plugin scopes whose every enabled rule is
	// removable, making the whole plugin dead weight.
	PluginsToDisable []string

	// Tallies.
	TotalDirectRules        int
	ToRemoveCount           int
	InheritedToDisableCount int
	RedundantOffCount       int
}

// outcome of the shared three-way rule test.
type outcome int

const (
	outcomeSkip outcome = iota
	outcomeRemovable
	outcomeUnsupported
)

// Reconcile classifies every rule of one config file. Pure function of
// its inputs; the registry is shared immutable state.
func Reconcile(resolved, raw, overrideRules *rule.Set, target *rule.Set, reg *registry.Registry, opts Options) *Result {
	e := &engine{target: target, reg: reg, opts: opts}
	res := &Result{TotalDirectRules: raw.Len()}

	// Step 1: directly defined candidates.
	for _, name := range raw.Enabled() {
		switch e.classify(name) {
		case outcomeRemovable:
			res.Removable = append(res.Removable, name)
		case outcomeUnsupported:
			res.Unsupported = append(res.Unsupported, name)
		}
	}

	// Step 2: candidates reachable only through extends.
	for _, name := range resolved.Enabled() {
		if raw.Has(name) {
			continue
		}
		switch e.classify(name) {
		case outcomeRemovable:
			res.InheritedRemovable = append(res.InheritedRemovable, name)
		case outcomeUnsupported:
			res.Unsupported = append(res.Unsupported, name)
		}
	}

	// Step 3: explicit off entries in override blocks that oxlint
	// makes moot. Top-level disables are assumed intentional policy
	// and are never scanned.
	for _, name := range overrideRules.Names() {
		r, _ := overrideRules.Get(name)
		if r.Severity.Enabled() {
			continue
		}
		if !e.reg.Supported(name) {
			continue
		}
		if !e.opts.TypeAware && e.reg.TypeAware(name) {
			continue
		}
		if e.enabledInTarget(name) {
			res.RedundantlyDisabled = append(res.RedundantlyDisabled, name)
		}
	}

	// Step 4: all-or-nothing plugin subsumption.
	res.PluginsToDisable = e.pluginsToDisable(resolved, raw, res)

	sort.Strings(res.Removable)
	sort.Strings(res.InheritedRemovable)
	sort.Strings(res.RedundantlyDisabled)
	sort.Strings(res.Unsupported)
	sort.Strings(res.PluginsToDisable)

	res.ToRemoveCount = len(res.Removable)
	res.InheritedToDisableCount = len(res.InheritedRemovable)
	res.RedundantOffCount = len(res.RedundantlyDisabled)
	return res
}

type engine struct {
	target *rule.Set
	reg    *registry.Registry
	opts   Options
}

// classify applies the shared three-way test from steps 1 and 2.
func (e *engine) classify(name string) outcome {
	if !e.reg.Supported(name) {
		return outcomeUnsupported
	}
	if !e.opts.TypeAware && e.reg.TypeAware(name) {
		return outcomeSkip
	}
	if e.enabledInTarget(name) {
		return outcomeRemovable
	}
	// The rule exists in oxlint's catalog but the target's own current
	// configuration does not enforce it.
	return outcomeUnsupported
}

// enabledInTarget reports whether the paired oxlint configuration
// would enforce the rule: explicitly enabled, or covered by a
// default-enabled plugin scope and not explicitly turned off.
func (e *engine) enabledInTarget(name string) bool {
	if r, ok := e.target.Get(name); ok {
		return r.Severity.Enabled()
	}
	return e.reg.DefaultEnabled(name)
}

// pluginsToDisable returns every plugin scope whose entire enabled rule
// set (raw plus resolved-but-not-raw) is removable for this file.
func (e *engine) pluginsToDisable(resolved, raw *rule.Set, res *Result) []string {
	removable := make(map[string]bool, len(res.Removable)+len(res.InheritedRemovable))
	for _, name := range res.Removable {
		removable[name] = true
	}
	for _, name := range res.InheritedRemovable {
		removable[name] = true
	}

	enabledByScope := make(map[string][]string)
	addEnabled := func(name string) {
		scope := rule.Scope(name)
		if scope == "" {
			return // core rules belong to no plugin
		}
		enabledByScope[scope] = append(enabledByScope[scope], name)
	}
	for _, name := range raw.Enabled() {
		addEnabled(name)
	}
	for _, name := range resolved.Enabled() {
		if !raw.Has(name) {
			addEnabled(name)
		}
	}

	var scopes []string
	for scope, names := range enabledByScope {
		all := true
		for _, name := range names {
			if !removable[name] {
				all = false
				break
			}
		}
		if all {
			scopes = append(scopes, scope)
		}
	}
	sort.Strings(scopes)
	return scopes
}
