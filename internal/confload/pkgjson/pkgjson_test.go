package pkgjson

import (
	"errors"
	"testing"

	"github.com/oxmigrate/oxmigrate-cli/internal/confload"
)

func TestParse_EmbeddedConfig(t *testing.T) {
	l := &Loader{}
	cfg, err := l.Parse([]byte(`{
		"name": "app",
		"eslintConfig": {"rules": {"no-console": 2}}
	}`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if _, ok := cfg.Rules["no-console"]; !ok {
		t.Error("no-console missing from rules")
	}
}

func TestParse_NoConfigField(t *testing.T) {
	l := &Loader{}
	_, err := l.Parse([]byte(`{"name": "app"}`))
	if !errors.Is(err, confload.ErrNoConfig) {
		t.Errorf("err = %v, want ErrNoConfig", err)
	}
}
