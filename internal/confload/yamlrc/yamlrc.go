// Package yamlrc parses .eslintrc.yml and .eslintrc.yaml files.
package yamlrc

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/oxmigrate/oxmigrate-cli/internal/confload"
)

// Compile-time interface check
var _ confload.Loader = (*Loader)(nil)

// Loader parses YAML ESLint configs.
type Loader struct{}

func (l *Loader) Name() string {
	return "yamlrc"
}

func (l *Loader) Matches(filename string) bool {
	return filename == ".eslintrc.yml" || filename == ".eslintrc.yaml"
}

func (l *Loader) Parse(data []byte) (*confload.RawConfig, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid yaml config: %w", err)
	}
	return confload.Coerce(doc)
}
