// Package registry holds the write-once constant table published during
// bootstrap. A Registry is created once and handed to every consumer.
package registry

import (
	"sort"
	"sync"
)

type Registry struct {
	mu        sync.RWMutex
	constants map[string]any
}

func New() *Registry {
	return &Registry{
		constants: make(map[string]any),
	}
}

// SetIfAbsent publishes value under name unless name is already published.
// It reports whether the value was stored. The first writer always wins.
func (r *Registry) SetIfAbsent(name string, value any) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.constants[name]; ok {
		return false
	}
	r.constants[name] = value
	return true
}

func (r *Registry) Get(name string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	value, ok := r.constants[name]
	return value, ok
}

func (r *Registry) Defined(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// String returns the published string value, or "" when name is absent or
// not a string.
func (r *Registry) String(name string) string {
	value, _ := r.Get(name)
	s, _ := value.(string)
	return s
}

func (r *Registry) Bool(name string) bool {
	value, _ := r.Get(name)
	b, _ := value.(bool)
	return b
}

// Names returns the published names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.constants))
	for name := range r.constants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Snapshot returns a copy of the table.
func (r *Registry) Snapshot() map[string]any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]any, len(r.constants))
	for name, value := range r.constants {
		out[name] = value
	}
	return out
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.constants)
}
