package eslint

import (
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/oxmigrate/oxmigrate-cli/internal/confload"
)

// skipDirs are conventional dependency/build/VCS directories excluded
// from discovery.
var skipDirs = map[string]bool{
	"node_modules": true,
	".git":         true,
	".hg":          true,
	".svn":         true,
	"dist":         true,
	"build":        true,
	"out":          true,
	"coverage":     true,
	".next":        true,
	".turbo":       true,
	"vendor":       true,
}

// DiscoverConfigFiles walks root recursively and returns every ESLint
// config file path, sorted lexicographically. Unreadable subtrees are
// skipped rather than failing the walk.
func DiscoverConfigFiles(root string) ([]string, error) {
	known := make(map[string]bool)
	for _, name := range confload.ConfigFilenames() {
		known[name] = true
	}

	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if path != root && skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if known[d.Name()] {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(paths)
	return paths, nil
}
