// Package oxlint provides the target-side collaborators: the rule
// catalog obtained from the oxlint binary and resolution of
// .oxlintrc.json configuration files.
package oxlint

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/oxmigrate/oxmigrate-cli/internal/registry"
	"github.com/oxmigrate/oxmigrate-cli/internal/toolexec"
)

// CatalogError is returned when the oxlint rule catalog cannot be
// obtained. There is no meaningful classification without the catalog,
// so callers must treat this as fatal for the whole run.
type CatalogError struct {
	Err error
}

func (e *CatalogError) Error() string {
	return fmt.Sprintf("failed to load oxlint rule catalog: %v", e.Err)
}

func (e *CatalogError) Unwrap() error {
	return e.Err
}

// LoadRuleCatalog invokes oxlint to obtain its full rule catalog as
// {scope, localName, category} entries. Lookup order: project-local
// node_modules install, global PATH, then npx.
func LoadRuleCatalog(ctx context.Context, cwd string) ([]registry.Entry, error) {
	executor := toolexec.NewExecutor()
	executor.WorkDir = cwd

	name, args := catalogCommand(cwd)
	output, err := executor.Execute(ctx, name, args...)
	if err != nil {
		return nil, &CatalogError{Err: err}
	}
	if output.Stdout == "" {
		return nil, &CatalogError{Err: fmt.Errorf("oxlint produced no output (stderr: %s)", output.Stderr)}
	}

	var entries []registry.Entry
	if err := json.Unmarshal([]byte(output.Stdout), &entries); err != nil {
		return nil, &CatalogError{Err: fmt.Errorf("unexpected rules output: %w", err)}
	}
	if len(entries) == 0 {
		return nil, &CatalogError{Err: fmt.Errorf("oxlint reported an empty rule catalog")}
	}

	return entries, nil
}

// catalogCommand picks the oxlint invocation for listing rules.
func catalogCommand(cwd string) (string, []string) {
	args := []string{"--rules", "--format=json"}

	if path := toolexec.FindTool(toolexec.LocalBin(cwd, "oxlint"), "oxlint"); path != "" {
		return path, args
	}
	return "npx", append([]string{"oxlint"}, args...)
}
