package oxlint

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxmigrate/oxmigrate-cli/internal/rule"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_Rules(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, ConfigFilename, `{
		// project oxlint config
		"rules": {
			"no-console": "deny",
			"eqeqeq": "allow",
			"typescript/no-explicit-any": "warn"
		}
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	r, ok := cfg.Resolved.Get("no-console")
	require.True(t, ok)
	assert.Equal(t, rule.Error, r.Severity)

	r, _ = cfg.Resolved.Get("eqeqeq")
	assert.Equal(t, rule.Off, r.Severity)

	assert.True(t, cfg.Resolved.Has("typescript/no-explicit-any"))
}

func TestLoadConfig_Extends(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "base.oxlintrc.json", `{"rules": {"no-debugger": "error"}}`)
	path := writeConfig(t, dir, ConfigFilename, `{
		"extends": ["./base.oxlintrc.json"],
		"rules": {"no-console": "error"}
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.True(t, cfg.Resolved.Has("no-debugger"))
	assert.True(t, cfg.Resolved.Has("no-console"))
}

func TestLoadConfig_InvalidSeverity(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, ConfigFilename, `{"rules": {"no-console": "loud"}}`)

	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestFindPairedConfig(t *testing.T) {
	dir := t.TempDir()
	eslintPath := writeConfig(t, dir, ".eslintrc.json", `{}`)

	assert.Empty(t, FindPairedConfig(eslintPath))

	oxPath := writeConfig(t, dir, ConfigFilename, `{}`)
	assert.Equal(t, oxPath, FindPairedConfig(eslintPath))
}
