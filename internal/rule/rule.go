package rule

import (
	"reflect"
	"sort"
)

// Rule is one lint rule's configuration at a point in the inheritance
// chain. Name is the identity key and is always stored in normalized
// form (see Normalize).
type Rule struct {
	// Name is the normalized rule name (e.g. "no-console",
	// "typescript/no-floating-promises").
	Name string

	// Severity is the resolved three-valued severity.
	Severity Severity

	// Config is the optional options payload carried for display only.
	// It is compared by deep equality and never interpreted.
	Config []any
}

// HasConfig reports whether the rule carries an options payload.
func (r Rule) HasConfig() bool {
	return len(r.Config) > 0
}

// ConfigEqual compares two rules' option payloads by deep equality.
func (r Rule) ConfigEqual(other Rule) bool {
	return reflect.DeepEqual(r.Config, other.Config)
}

// Parse builds a Rule from a raw ESLint-shaped rule entry: either a bare
// severity token, or a sequence whose first element is the severity and
// whose remainder is the opaque options payload. The name is normalized
// before storage.
func Parse(name string, value any) (Rule, error) {
	r := Rule{Name: Normalize(name)}

	if seq, ok := value.([]any); ok {
		if len(seq) == 0 {
			return Rule{}, &InvalidSeverityError{Value: value}
		}
		sev, err := ParseSeverity(seq[0])
		if err != nil {
			return Rule{}, err
		}
		r.Severity = sev
		if len(seq) > 1 {
			r.Config = seq[1:]
		}
		return r, nil
	}

	sev, err := ParseSeverity(value)
	if err != nil {
		return Rule{}, err
	}
	r.Severity = sev
	return r, nil
}

// Set is a rule set for one config file at one resolution level
// (raw or fully extends-resolved). Names are unique within a set.
type Set struct {
	rules map[string]Rule
}

// NewSet returns an empty rule set.
func NewSet() *Set {
	return &Set{rules: make(map[string]Rule)}
}

// Put inserts or replaces a rule by its normalized name.
func (s *Set) Put(r Rule) {
	s.rules[r.Name] = r
}

// PutIfAbsent inserts a rule only when no rule with that name exists.
// Used to keep top-level declarations authoritative over override
// entries of the same file.
func (s *Set) PutIfAbsent(r Rule) {
	if _, ok := s.rules[r.Name]; !ok {
		s.rules[r.Name] = r
	}
}

// Get returns the rule with the given (normalized) name.
func (s *Set) Get(name string) (Rule, bool) {
	r, ok := s.rules[Normalize(name)]
	return r, ok
}

// Has reports whether the set defines the given name.
func (s *Set) Has(name string) bool {
	_, ok := s.rules[Normalize(name)]
	return ok
}

// Len returns the number of rules in the set.
func (s *Set) Len() int {
	return len(s.rules)
}

// Names returns all rule names sorted lexicographically. Iteration
// order determinism is a hard requirement for report output.
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.rules))
	for name := range s.rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Enabled returns the names of all rules with severity other than off,
// sorted lexicographically.
func (s *Set) Enabled() []string {
	names := make([]string, 0, len(s.rules))
	for name, r := range s.rules {
		if r.Severity.Enabled() {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Merge copies every rule from other into s, replacing collisions.
// Used when folding a parent config's resolved rules under a child's.
func (s *Set) Merge(other *Set) {
	if other == nil {
		return
	}
	for _, r := range other.rules {
		s.rules[r.Name] = r
	}
}

// Clone returns an independent copy of the set.
func (s *Set) Clone() *Set {
	c := NewSet()
	c.Merge(s)
	return c
}
