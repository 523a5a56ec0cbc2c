// Package jsonrc parses .eslintrc and .eslintrc.json files. Both allow
// comments and trailing commas in practice, so contents are run through
// a JSONC pass before decoding.
package jsonrc

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/jsonc"

	"github.com/oxmigrate/oxmigrate-cli/internal/confload"
)

// Compile-time interface check
var _ confload.Loader = (*Loader)(nil)

// Loader parses JSON/JSONC ESLint configs.
type Loader struct{}

func (l *Loader) Name() string {
	return "jsonrc"
}

func (l *Loader) Matches(filename string) bool {
	return filename == ".eslintrc" || filename == ".eslintrc.json"
}

func (l *Loader) Parse(data []byte) (*confload.RawConfig, error) {
	var doc map[string]any
	if err := json.Unmarshal(jsonc.ToJSON(data), &doc); err != nil {
		return nil, fmt.Errorf("invalid json config: %w", err)
	}
	return confload.Coerce(doc)
}
