package confload

import (
	"fmt"
	"log"
	"sync"
)

// errLoaderNotFound is returned when no loader matches the given file.
type errLoaderNotFound struct {
	Filename string
}

func (e *errLoaderNotFound) Error() string {
	return fmt.Sprintf("no config loader for file: %s", e.Filename)
}

// errNilLoader is returned when trying to register a nil loader.
var errNilLoader = fmt.Errorf("cannot register nil loader")

// Registry manages config-format loader registrations.
type Registry struct {
	mu      sync.RWMutex
	loaders []Loader
}

var (
	globalRegistry *Registry
	once           sync.Once
)

// Global returns the singleton registry instance.
func Global() *Registry {
	once.Do(func() {
		globalRegistry = &Registry{}
	})
	return globalRegistry
}

// Register adds a loader. Format packages call this from init().
func (r *Registry) Register(l Loader) error {
	if l == nil {
		return errNilLoader
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.loaders {
		if existing.Name() == l.Name() {
			log.Printf("warning: config loader already registered: %s (ignoring duplicate)", l.Name())
			return nil
		}
	}

	r.loaders = append(r.loaders, l)
	return nil
}

// ForFile finds the loader that handles the given file name.
func (r *Registry) ForFile(filename string) (Loader, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, l := range r.loaders {
		if l.Matches(filename) {
			return l, nil
		}
	}
	return nil, &errLoaderNotFound{Filename: filename}
}

// ConfigFilenames returns the file names discovery looks for. Loaders
// match by name rather than pattern, so this is the conventional set of
// ESLint config file names.
func ConfigFilenames() []string {
	return []string{
		".eslintrc",
		".eslintrc.json",
		".eslintrc.yml",
		".eslintrc.yaml",
		"package.json",
	}
}
