package jsonrc

import (
	"testing"
)

func TestParse_WithCommentsAndTrailingCommas(t *testing.T) {
	l := &Loader{}
	cfg, err := l.Parse([]byte(`{
		// strict project defaults
		"rules": {
			"no-console": "error",
		},
	}`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if _, ok := cfg.Rules["no-console"]; !ok {
		t.Error("no-console missing from rules")
	}
}

func TestParse_Invalid(t *testing.T) {
	l := &Loader{}
	if _, err := l.Parse([]byte(`{"rules":`)); err == nil {
		t.Error("truncated config should fail")
	}
}

func TestMatches(t *testing.T) {
	l := &Loader{}
	for _, name := range []string{".eslintrc", ".eslintrc.json"} {
		if !l.Matches(name) {
			t.Errorf("should match %s", name)
		}
	}
	for _, name := range []string{".eslintrc.yml", "package.json", "eslintrc.json"} {
		if l.Matches(name) {
			t.Errorf("should not match %s", name)
		}
	}
}
