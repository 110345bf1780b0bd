package dropdown

import "sync"

// InstanceRegistry remembers the last open state of uncontrolled controllers
// by instance key, so a controller rebuilt during development (for example
// after a live reload of the view tree) comes back in the state it was left
// in.
//
// Entries are created on first construction of an uncontrolled controller,
// overwritten on every toggle and never deleted. Each key is written only by
// the controller that owns it.
type InstanceRegistry struct {
	mu      sync.RWMutex
	entries map[string]bool
}

// NewInstanceRegistry creates an empty registry.
func NewInstanceRegistry() *InstanceRegistry {
	return &InstanceRegistry{entries: make(map[string]bool)}
}

// Get returns the stored state for key.
func (r *InstanceRegistry) Get(key string) (bool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	open, ok := r.entries[key]
	return open, ok
}

// Set stores the state for key.
func (r *InstanceRegistry) Set(key string, open bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[key] = open
}

// Len returns the number of known instances.
func (r *InstanceRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

var defaultRegistry = NewInstanceRegistry()

// DefaultRegistry returns the process-wide registry.
func DefaultRegistry() *InstanceRegistry {
	return defaultRegistry
}
