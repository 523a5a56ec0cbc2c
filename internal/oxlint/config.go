package oxlint

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"

	"github.com/oxmigrate/oxmigrate-cli/internal/rule"
)

// ConfigFilename is the conventional oxlint config file name paired
// with an ESLint config in the same directory.
const ConfigFilename = ".oxlintrc.json"

// Config is one resolved oxlint config file.
type Config struct {
	Path string

	// Resolved holds every explicitly configured rule after following
	// the config's own extends chain.
	Resolved *rule.Set
}

// wireConfig is the on-disk .oxlintrc.json shape. Oxlint configs are
// JSONC; rule values follow the ESLint severity-or-sequence convention
// with allow/deny tokens also accepted.
type wireConfig struct {
	Extends []string       `json:"extends"`
	Rules   map[string]any `json:"rules"`
}

// LoadConfig resolves the oxlint config at path, following relative
// extends entries. An extends cycle terminates instead of recursing.
func LoadConfig(path string) (*Config, error) {
	return loadConfig(path, map[string]bool{})
}

func loadConfig(path string, visiting map[string]bool) (*Config, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	if visiting[abs] {
		return &Config{Path: path, Resolved: rule.NewSet()}, nil
	}
	visiting[abs] = true
	defer delete(visiting, abs)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read oxlint config %s: %w", path, err)
	}

	var wire wireConfig
	if err := json.Unmarshal(jsonc.ToJSON(data), &wire); err != nil {
		return nil, fmt.Errorf("failed to parse oxlint config %s: %w", path, err)
	}

	cfg := &Config{Path: path, Resolved: rule.NewSet()}

	for _, target := range wire.Extends {
		if !strings.HasPrefix(target, "./") && !strings.HasPrefix(target, "../") && !filepath.IsAbs(target) {
			continue
		}
		parentPath := target
		if !filepath.IsAbs(target) {
			parentPath = filepath.Join(filepath.Dir(path), target)
		}
		parent, err := loadConfig(parentPath, visiting)
		if err != nil {
			return nil, err
		}
		cfg.Resolved.Merge(parent.Resolved)
	}

	for name, value := range wire.Rules {
		r, err := rule.Parse(name, value)
		if err != nil {
			return nil, fmt.Errorf("failed to parse oxlint config %s: %w", path, err)
		}
		cfg.Resolved.Put(r)
	}

	return cfg, nil
}

// FindPairedConfig returns the oxlint config path paired with an ESLint
// config path (same directory), or "" when none exists.
func FindPairedConfig(eslintConfigPath string) string {
	candidate := filepath.Join(filepath.Dir(eslintConfigPath), ConfigFilename)
	if _, err := os.Stat(candidate); err != nil {
		return ""
	}
	return candidate
}
