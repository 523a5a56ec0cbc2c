// Package pkgjson extracts the eslintConfig field from package.json.
package pkgjson

import (
	"encoding/json"
	"fmt"

	"github.com/oxmigrate/oxmigrate-cli/internal/confload"
)

// Compile-time interface check
var _ confload.Loader = (*Loader)(nil)

// Loader extracts embedded ESLint config from package.json.
type Loader struct{}

func (l *Loader) Name() string {
	return "pkgjson"
}

func (l *Loader) Matches(filename string) bool {
	return filename == "package.json"
}

func (l *Loader) Parse(data []byte) (*confload.RawConfig, error) {
	var doc struct {
		ESLintConfig map[string]any `json:"eslintConfig"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid package.json: %w", err)
	}
	if doc.ESLintConfig == nil {
		return nil, confload.ErrNoConfig
	}
	return confload.Coerce(doc.ESLintConfig)
}
