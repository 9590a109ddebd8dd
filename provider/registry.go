package provider

import (
	"slices"
	"strings"
	"sync"
)

// Registry maps names to providers. At most one provider is kept per name;
// adding a provider under an existing name replaces it in place.
//
// Registry is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]Provider
	order     []string
	fuzzy     bool
}

// NewRegistry returns a registry with fuzzy matching enabled, preloaded with
// providers.
func NewRegistry(providers ...Provider) *Registry {
	r := &Registry{
		providers: make(map[string]Provider),
		fuzzy:     true,
	}
	r.Load(providers...)
	return r
}

// Add registers p under p.Name(), replacing any provider with that name.
func (r *Registry) Add(p Provider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.add(p)
}

func (r *Registry) add(p Provider) {
	name := p.Name()
	if _, ok := r.providers[name]; !ok {
		r.order = append(r.order, name)
	}
	r.providers[name] = p
}

// Load registers every provider in order; later entries win over earlier
// ones with the same name. Nil entries are skipped.
func (r *Registry) Load(providers ...Provider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range providers {
		if p != nil {
			r.add(p)
		}
	}
}

// Remove unregisters name (exact match) and reports whether it existed.
func (r *Registry) Remove(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.providers[name]; !ok {
		return false
	}
	delete(r.providers, name)
	r.order = slices.DeleteFunc(r.order, func(n string) bool { return n == name })
	return true
}

// Get resolves name using the registry's fuzzy setting.
func (r *Registry) Get(name string) (Provider, bool) {
	p, _, ok := r.Lookup(name, r.Fuzzy())
	return p, ok
}

// Lookup resolves name and also returns the key it matched.
//
// Resolution order: the trimmed name verbatim; then, if fuzzy, its lowercase
// form; then the lowercase form with all '-' removed.
func (r *Registry) Lookup(name string, fuzzy bool) (Provider, string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, key := range candidates(name, fuzzy) {
		if p, ok := r.providers[key]; ok {
			return p, key, true
		}
	}
	return nil, "", false
}

func candidates(name string, fuzzy bool) []string {
	trimmed := strings.TrimSpace(name)
	if !fuzzy {
		return []string{trimmed}
	}
	lower := strings.ToLower(trimmed)
	return []string{trimmed, lower, strings.ReplaceAll(lower, "-", "")}
}

// Has reports whether name resolves using the registry's fuzzy setting.
func (r *Registry) Has(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// Names returns the registered names in insertion order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.order)
}

// Len returns the number of registered providers.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.providers)
}

// Fuzzy reports whether Get applies fuzzy matching.
func (r *Registry) Fuzzy() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.fuzzy
}

// SetFuzzy sets the default matching mode for Get.
func (r *Registry) SetFuzzy(fuzzy bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fuzzy = fuzzy
}
