package repositories

import (
	"fmt"
	"sort"

	"github.com/rios0rios0/workbench/internal/domain/entities"
	domainRepos "github.com/rios0rios0/workbench/internal/domain/repositories"
)

// BackendFactory is a constructor function that creates a RepositoryBackend from the settings.
type BackendFactory func(settings *entities.Settings) domainRepos.RepositoryBackend

// BackendRegistry manages all registered repository backend implementations.
type BackendRegistry struct {
	backends map[string]BackendFactory
}

// NewBackendRegistry creates an empty backend registry.
func NewBackendRegistry() *BackendRegistry {
	return &BackendRegistry{
		backends: make(map[string]BackendFactory),
	}
}

// Register adds a backend factory under the given name (e.g. "gogit").
func (r *BackendRegistry) Register(name string, factory BackendFactory) {
	r.backends[name] = factory
}

// Get returns a backend instance for the given name.
func (r *BackendRegistry) Get(name string, settings *entities.Settings) (domainRepos.RepositoryBackend, error) {
	factory, ok := r.backends[name]
	if !ok {
		return nil, fmt.Errorf("unknown git backend: %q (registered: %v)", name, r.Names())
	}
	return factory(settings), nil
}

// Names returns the sorted list of registered backend names.
func (r *BackendRegistry) Names() []string {
	names := make([]string, 0, len(r.backends))
	for name := range r.backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
