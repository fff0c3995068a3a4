// Package services holds the host-side services built on the core ports.
package services

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/custodia-labs/collabctl/internal/core/ports/driving"
)

// ProviderFactory builds a provider instance. Factories are expected to defer
// credential validation to the first real API call.
type ProviderFactory func(ctx context.Context) (driving.CollaborationProvider, error)

// ProviderRegistry maps provider names to factories. Registration is explicit
// and happens during bootstrap; re-registering a name overwrites the previous
// factory rather than erroring.
type ProviderRegistry struct {
	mu        sync.RWMutex
	factories map[string]ProviderFactory
}

// NewProviderRegistry creates an empty registry.
func NewProviderRegistry() *ProviderRegistry {
	return &ProviderRegistry{
		factories: make(map[string]ProviderFactory),
	}
}

// Register adds a factory under the given name, replacing any previous one.
func (r *ProviderRegistry) Register(name string, factory ProviderFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
}

// Has reports whether a factory is registered under the name.
func (r *ProviderRegistry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[name]
	return ok
}

// Create instantiates the provider registered under the name.
func (r *ProviderRegistry) Create(ctx context.Context, name string) (driving.CollaborationProvider, error) {
	r.mu.RLock()
	factory, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown provider: %s", name)
	}
	return factory(ctx)
}

// Names returns all registered provider names, sorted.
func (r *ProviderRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
