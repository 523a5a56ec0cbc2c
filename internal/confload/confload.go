// Package confload parses ESLint configuration files into a neutral
// shape. Each on-disk format (JSON/JSONC, YAML, package.json) is
// handled by a Loader registered with the global registry.
package confload

import (
	"fmt"
)

// RawConfig is the format-neutral shape of one ESLint config file.
// Rule values stay untyped here; severity parsing happens in the
// resolver, where an invalid token can be attributed to a file.
type RawConfig struct {
	// Root marks an explicit inheritance boundary ("root": true).
	Root bool

	// Extends lists the configs this file inherits from, in order.
	Extends []string

	// Plugins lists the plugin names the file declares.
	Plugins []string

	// Rules is the top-level rule block.
	Rules map[string]any

	// Overrides are the file-pattern-scoped rule blocks.
	Overrides []Override
}

// Override is one file-pattern-scoped rule block.
type Override struct {
	Files []string
	Rules map[string]any
}

// HasMeaningfulRules reports whether the config declares any top-level
// rule or any override with rules. Pure-extends configs have nothing to
// reconcile and are skipped by discovery.
func (c *RawConfig) HasMeaningfulRules() bool {
	if len(c.Rules) > 0 {
		return true
	}
	for _, o := range c.Overrides {
		if len(o.Rules) > 0 {
			return true
		}
	}
	return false
}

// Loader parses one config file format.
type Loader interface {
	// Name returns the loader name (e.g. "jsonrc", "yamlrc").
	Name() string

	// Matches reports whether this loader handles the given file name
	// (base name, not full path).
	Matches(filename string) bool

	// Parse decodes file contents into a RawConfig. A file that this
	// loader matches but that carries no ESLint config at all (e.g. a
	// package.json without an eslintConfig field) returns ErrNoConfig.
	Parse(data []byte) (*RawConfig, error)
}

// ErrNoConfig is returned by a Loader when the matched file contains no
// ESLint configuration.
var ErrNoConfig = fmt.Errorf("file contains no eslint configuration")

// Coerce converts a decoded document (map from JSON or YAML) into a
// RawConfig. All format loaders share this so shape sniffing happens in
// exactly one place.
func Coerce(doc map[string]any) (*RawConfig, error) {
	cfg := &RawConfig{}

	if root, ok := doc["root"].(bool); ok {
		cfg.Root = root
	}

	switch ext := doc["extends"].(type) {
	case nil:
	case string:
		cfg.Extends = []string{ext}
	case []any:
		for _, e := range ext {
			s, ok := e.(string)
			if !ok {
				return nil, fmt.Errorf("extends entry is not a string: %v", e)
			}
			cfg.Extends = append(cfg.Extends, s)
		}
	default:
		return nil, fmt.Errorf("extends has unexpected shape: %T", ext)
	}

	if plugins, ok := doc["plugins"].([]any); ok {
		for _, p := range plugins {
			if s, ok := p.(string); ok {
				cfg.Plugins = append(cfg.Plugins, s)
			}
		}
	}

	if rules, ok := doc["rules"].(map[string]any); ok {
		cfg.Rules = rules
	}

	if overrides, ok := doc["overrides"].([]any); ok {
		for _, raw := range overrides {
			entry, ok := raw.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("override entry is not an object: %v", raw)
			}
			var o Override
			switch files := entry["files"].(type) {
			case string:
				o.Files = []string{files}
			case []any:
				for _, f := range files {
					if s, ok := f.(string); ok {
						o.Files = append(o.Files, s)
					}
				}
			}
			if rules, ok := entry["rules"].(map[string]any); ok {
				o.Rules = rules
			}
			cfg.Overrides = append(cfg.Overrides, o)
		}
	}

	return cfg, nil
}
