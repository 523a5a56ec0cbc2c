package main

import (
	// Import config loaders for registration side-effects.
	// Each loader's register.go file contains an init() function
	// that registers the loader with the global registry.
	_ "github.com/oxmigrate/oxmigrate-cli/internal/confload/jsonrc"
	_ "github.com/oxmigrate/oxmigrate-cli/internal/confload/pkgjson"
	_ "github.com/oxmigrate/oxmigrate-cli/internal/confload/yamlrc"
)
