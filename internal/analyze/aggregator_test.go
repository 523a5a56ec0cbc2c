package analyze

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxmigrate/oxmigrate-cli/internal/registry"

	// Register config file loaders.
	_ "github.com/oxmigrate/oxmigrate-cli/internal/confload/jsonrc"
	_ "github.com/oxmigrate/oxmigrate-cli/internal/confload/pkgjson"
	_ "github.com/oxmigrate/oxmigrate-cli/internal/confload/yamlrc"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func testRegistry() *registry.Registry {
	return registry.New([]registry.Entry{
		{Scope: "eslint", LocalName: "no-console", Category: "suspicious"},
		{Scope: "eslint", LocalName: "no-debugger", Category: "suspicious"},
		{Scope: "eslint", LocalName: "eqeqeq", Category: "pedantic"},
	}, nil)
}

func TestDirectory_PairsAndClassifies(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".eslintrc.json", `{"rules": {"no-console": "error", "no-magic-numbers": "error"}}`)
	writeFile(t, dir, ".oxlintrc.json", `{"rules": {"no-console": "error"}}`)

	res, err := Directory(context.Background(), dir, Options{Registry: testRegistry()})
	require.NoError(t, err)

	require.Len(t, res.Results, 1)
	assert.Equal(t, []string{"no-console"}, res.Results[0].Result.Removable)
	assert.Equal(t, []string{"no-magic-numbers"}, res.UnsupportedRulesUnion)
	assert.Len(t, res.ConfigsWithTarget, 1)
	assert.Empty(t, res.ConfigsWithoutTarget)
}

func TestDirectory_ConfigWithoutTarget(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".eslintrc.json", `{"rules": {"no-console": "error"}}`)

	res, err := Directory(context.Background(), dir, Options{Registry: testRegistry()})
	require.NoError(t, err)

	assert.Empty(t, res.Results)
	assert.Len(t, res.ConfigsWithoutTarget, 1)
}

func TestDirectory_SkipsPureExtendsConfigs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".eslintrc.json", `{"rules": {"no-console": "error"}}`)
	writeFile(t, dir, ".oxlintrc.json", `{}`)
	writeFile(t, filepath.Join(dir, "sub"), ".eslintrc.json", `{"extends": "../.eslintrc.json"}`)

	res, err := Directory(context.Background(), dir, Options{Registry: testRegistry()})
	require.NoError(t, err)

	require.Len(t, res.Results, 1)
	assert.Equal(t, filepath.Join(dir, ".eslintrc.json"), res.Results[0].ConfigPath)
}

func TestDirectory_ParentBeforeChild(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".eslintrc.json", `{"rules": {"no-debugger": "error"}}`)
	writeFile(t, dir, ".oxlintrc.json", `{"rules": {"no-debugger": "error"}}`)
	writeFile(t, filepath.Join(dir, "a"), ".eslintrc.json", `{"extends": "../.eslintrc.json", "rules": {"eqeqeq": "error"}}`)
	writeFile(t, filepath.Join(dir, "a"), ".oxlintrc.json", `{"rules": {"eqeqeq": "error"}}`)

	res, err := Directory(context.Background(), dir, Options{Registry: testRegistry()})
	require.NoError(t, err)

	require.Len(t, res.Results, 2)
	assert.Equal(t, filepath.Join(dir, ".eslintrc.json"), res.Results[0].ConfigPath)
	assert.Equal(t, filepath.Join(dir, "a", ".eslintrc.json"), res.Results[1].ConfigPath)

	// Scenario D: the child sees no-debugger only through extends.
	child := res.Results[1].Result
	assert.Equal(t, []string{"no-debugger"}, child.InheritedRemovable)
	assert.Equal(t, []string{"eqeqeq"}, child.Removable)
}

func TestDirectory_BrokenConfigIsWarnedAndSkipped(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".eslintrc.json", `{"rules": {"no-console": "error"}}`)
	writeFile(t, dir, ".oxlintrc.json", `{}`)
	writeFile(t, filepath.Join(dir, "broken"), ".eslintrc.json", `{"rules": {"no-console": "banana"}}`)

	res, err := Directory(context.Background(), dir, Options{Registry: testRegistry()})
	require.NoError(t, err)

	require.Len(t, res.Results, 1)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "broken")
}

func TestDirectory_ExtendsCycleReported(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".oxlintrc.json", `{}`)
	writeFile(t, filepath.Join(dir, "a"), ".eslintrc.json", `{"extends": "../b/.eslintrc.json", "rules": {"no-console": "error"}}`)
	writeFile(t, filepath.Join(dir, "b"), ".eslintrc.json", `{"extends": "../a/.eslintrc.json", "rules": {"eqeqeq": "error"}}`)

	res, err := Directory(context.Background(), dir, Options{Registry: testRegistry()})
	require.NoError(t, err)

	assert.Empty(t, res.Results)
	require.NotEmpty(t, res.Warnings)
	assert.Contains(t, res.Warnings[0], "cycle")
}

func TestDirectory_UnsupportedUnionDeduplicated(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".eslintrc.json", `{"rules": {"no-magic-numbers": "error"}}`)
	writeFile(t, dir, ".oxlintrc.json", `{}`)
	writeFile(t, filepath.Join(dir, "sub"), ".eslintrc.json", `{"rules": {"no-magic-numbers": "error", "max-params": "error"}}`)
	writeFile(t, filepath.Join(dir, "sub"), ".oxlintrc.json", `{}`)

	res, err := Directory(context.Background(), dir, Options{Registry: testRegistry()})
	require.NoError(t, err)

	assert.Equal(t, []string{"max-params", "no-magic-numbers"}, res.UnsupportedRulesUnion)
}
