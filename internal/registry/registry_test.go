package registry

import (
	"context"
	"fmt"
	"testing"
)

func testEntries() []Entry {
	return []Entry{
		{Scope: "eslint", LocalName: "no-console", Category: "suspicious"},
		{Scope: "eslint", LocalName: "no-debugger", Category: "suspicious"},
		{Scope: "eslint", LocalName: "curly", Category: "style"},
		{Scope: "typescript", LocalName: "no-floating-promises", Category: "correctness"},
		{Scope: "unicorn", LocalName: "filename-case", Category: "style"},
		{Scope: "import", LocalName: "no-cycle", Category: "restriction"},
	}
}

func TestEntryName(t *testing.T) {
	tests := []struct {
		entry Entry
		want  string
	}{
		{Entry{Scope: "core", LocalName: "no-var"}, "no-var"},
		{Entry{Scope: "eslint", LocalName: "no-console"}, "no-console"},
		{Entry{Scope: "typescript", LocalName: "no-explicit-any"}, "typescript/no-explicit-any"},
	}
	for _, tt := range tests {
		if got := tt.entry.Name(); got != tt.want {
			t.Errorf("Name() = %q, want %q", got, tt.want)
		}
	}
}

func TestSupported(t *testing.T) {
	r := New(testEntries(), nil)

	tests := []struct {
		name string
		want bool
	}{
		{"no-console", true},
		{"eslint/no-console", true}, // core prefix normalized away
		{"@typescript-eslint/no-floating-promises", true},
		{"typescript/no-floating-promises", true},
		{"import/no-cycle", true},
		{"no-magic-numbers", false},
		{"jest/expect-expect", false},
	}
	for _, tt := range tests {
		if got := r.Supported(tt.name); got != tt.want {
			t.Errorf("Supported(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestSupported_BareFallback(t *testing.T) {
	// Core rules are registered unscoped; a scoped spelling must still hit.
	r := New([]Entry{{Scope: "core", LocalName: "no-var"}}, nil)
	if !r.Supported("no-var") {
		t.Error("bare core rule should be supported")
	}
}

func TestDefaultEnabled(t *testing.T) {
	r := New(testEntries(), nil)

	if !r.DefaultEnabled("no-console") {
		t.Error("core scope should be default-enabled")
	}
	if !r.DefaultEnabled("typescript/no-floating-promises") {
		t.Error("typescript scope should be default-enabled")
	}
	if r.DefaultEnabled("import/no-cycle") {
		t.Error("import scope is not default-enabled")
	}
	if r.DefaultEnabled("no-magic-numbers") {
		t.Error("unknown rule cannot be default-enabled")
	}
}

func TestTypeAware(t *testing.T) {
	r := New(testEntries(), []string{"@typescript-eslint/no-floating-promises"})

	if !r.TypeAware("typescript/no-floating-promises") {
		t.Error("normalized type-aware lookup failed")
	}
	if !r.TypeAware("@typescript-eslint/no-floating-promises") {
		t.Error("scoped-plugin type-aware lookup failed")
	}
	if r.TypeAware("no-console") {
		t.Error("no-console is not type-aware")
	}
}

type failingSource struct{}

func (failingSource) Load(ctx context.Context) ([]string, error) {
	return nil, fmt.Errorf("network unreachable")
}

type fixedSource struct{ names []string }

func (s fixedSource) Load(ctx context.Context) ([]string, error) {
	return s.names, nil
}

func TestLoadTypeAwareRules_FallsBack(t *testing.T) {
	got := LoadTypeAwareRules(context.Background(), failingSource{}, false)
	if len(got) == 0 {
		t.Fatal("fallback list must not be empty")
	}
	found := false
	for _, name := range got {
		if name == "typescript/no-floating-promises" {
			found = true
		}
	}
	if !found {
		t.Error("fallback should contain typescript/no-floating-promises")
	}
}

func TestLoadTypeAwareRules_UsesSource(t *testing.T) {
	got := LoadTypeAwareRules(context.Background(), fixedSource{names: []string{"typescript/unbound-method"}}, false)
	if len(got) != 1 || got[0] != "typescript/unbound-method" {
		t.Errorf("got %v, want the source list", got)
	}
}

func TestLoadTypeAwareRules_NilSource(t *testing.T) {
	if len(LoadTypeAwareRules(context.Background(), nil, false)) == 0 {
		t.Error("nil source should yield the fallback")
	}
}
