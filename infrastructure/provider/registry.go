package provider

import (
	"fmt"

	"github.com/rios0rios0/gitbridge/domain"
)

// Registry manages all registered Git service implementations.
type Registry struct {
	services map[string]Factory
}

// Factory is a constructor function that creates a GitService given an auth
// token and an optional base domain for custom instances.
type Factory func(token, baseDomain string) domain.GitService

// NewRegistry creates an empty service registry.
func NewRegistry() *Registry {
	return &Registry{
		services: make(map[string]Factory),
	}
}

// Register adds a service factory under the given name (e.g. "azuredevops").
func (r *Registry) Register(name string, factory Factory) {
	r.services[name] = factory
}

// Get returns a configured service instance for the given name, token, and
// base domain.
func (r *Registry) Get(name, token, baseDomain string) (domain.GitService, error) {
	factory, ok := r.services[name]
	if !ok {
		return nil, fmt.Errorf("unknown provider type: %q", name)
	}
	return factory(token, baseDomain), nil
}

// Names returns the list of registered service names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.services))
	for name := range r.services {
		names = append(names, name)
	}
	return names
}
