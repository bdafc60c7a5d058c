package shortcut

import (
	"fmt"
	"sort"
	"sync"
)

// Registry holds named shortcut groups. Hosts typically fill it once at
// startup from configuration and read it every tick; reads take a shared
// lock so a registry may be consulted from multiple goroutines.
type Registry struct {
	mu     sync.RWMutex
	groups map[string]Group
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{groups: make(map[string]Group)}
}

// Register adds a group under the given action name.
// If the name is already registered, the group is replaced.
func (r *Registry) Register(name string, g Group) error {
	if name == "" {
		return fmt.Errorf("cannot register group with empty name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.groups[name] = g
	return nil
}

// Unregister removes a group by name.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.groups, name)
}

// Get returns the group registered under name.
// The second result is false if the name is unknown.
func (r *Registry) Get(name string) (Group, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.groups[name]
	return g, ok
}

// Active reports whether the named group matches the live keyboard state.
// Unknown names never match.
func (r *Registry) Active(name string, st KeyState) bool {
	g, ok := r.Get(name)
	return ok && g.Active(st)
}

// Names returns all registered action names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.groups))
	for name := range r.groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered groups.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.groups)
}
