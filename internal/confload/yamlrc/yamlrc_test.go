package yamlrc

import (
	"testing"
)

func TestParse(t *testing.T) {
	l := &Loader{}
	cfg, err := l.Parse([]byte(`
extends: ../.eslintrc.yml
rules:
  no-console: warn
  max-len:
    - error
    - code: 120
`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(cfg.Extends) != 1 || cfg.Extends[0] != "../.eslintrc.yml" {
		t.Errorf("extends = %v", cfg.Extends)
	}
	if _, ok := cfg.Rules["no-console"]; !ok {
		t.Error("no-console missing from rules")
	}
	if _, ok := cfg.Rules["max-len"]; !ok {
		t.Error("max-len missing from rules")
	}
}

func TestParse_Invalid(t *testing.T) {
	l := &Loader{}
	if _, err := l.Parse([]byte("rules:\n\tno-console: warn\n")); err == nil {
		t.Error("malformed yaml should fail")
	}
}

func TestMatches(t *testing.T) {
	l := &Loader{}
	for _, name := range []string{".eslintrc.yml", ".eslintrc.yaml"} {
		if !l.Matches(name) {
			t.Errorf("should match %s", name)
		}
	}
	for _, name := range []string{".eslintrc", ".eslintrc.json", "package.json"} {
		if l.Matches(name) {
			t.Errorf("should not match %s", name)
		}
	}
}
