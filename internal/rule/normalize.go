package rule

import (
	"strings"
)

// prefixRewrites maps ESLint scoped-plugin prefixes to the plain plugin
// scope oxlint registers the same rules under.
var prefixRewrites = map[string]string{
	"@typescript-eslint/": "typescript/",
}

// corePrefix is the explicit core-rule namespace some configs use for
// plain ESLint rules. Oxlint registers core rules without any scope, so
// the prefix is stripped entirely.
const corePrefix = "eslint/"

// Normalize maps a rule name from ESLint naming conventions onto the
// canonical form used for all identity comparison. Idempotent:
// Normalize(Normalize(x)) == Normalize(x).
func Normalize(name string) string {
	for from, to := range prefixRewrites {
		if strings.HasPrefix(name, from) {
			return to + strings.TrimPrefix(name, from)
		}
	}
	if strings.HasPrefix(name, corePrefix) {
		return strings.TrimPrefix(name, corePrefix)
	}
	return name
}

// Bare drops any "scope/" prefix from a rule name. Some target catalogs
// register core-language rules without a scope at all, so registry
// lookups consult both the normalized and the bare form.
func Bare(name string) string {
	if i := strings.LastIndex(name, "/"); i >= 0 {
		return name[i+1:]
	}
	return name
}

// Scope returns the plugin-scope prefix of a normalized rule name (the
// portion before the first "/"), or "" for unscoped core rules.
func Scope(name string) string {
	if i := strings.Index(name, "/"); i >= 0 {
		return name[:i]
	}
	return ""
}

// Display maps a canonical name back to its ESLint spelling for output.
// Only the scoped-plugin rewrite is inverted; display names are never
// used for comparison.
func Display(name string) string {
	for from, to := range prefixRewrites {
		if strings.HasPrefix(name, to) {
			return from + strings.TrimPrefix(name, to)
		}
	}
	return name
}
