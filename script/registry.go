package script

import (
	"fmt"
	"sort"
	"sync"
)

// Registry is a name-keyed catalog of script tables. Construct one at
// startup with NewRegistry and pass it explicitly; there is no ambient
// package-level catalog. Safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	tables map[string]*Table
}

// NewRegistry returns a Registry preloaded with the three builtin tables.
func NewRegistry() *Registry {
	r := &Registry{tables: make(map[string]*Table)}
	_ = r.Register(Kannada())
	_ = r.Register(SanskritDevanagari())
	_ = r.Register(PrakritDevanagari())

	return r
}

// Register adds t under t.Name().
// Returns ErrNilTable for a nil table, ErrDuplicateScript if the name is
// already taken.
func (r *Registry) Register(t *Table) error {
	if t == nil {
		return ErrNilTable
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tables[t.Name()]; ok {
		return fmt.Errorf("%q: %w", t.Name(), ErrDuplicateScript)
	}
	r.tables[t.Name()] = t

	return nil
}

// Lookup returns the table registered under name.
// Returns ErrUnknownScript if no such registration exists.
func (r *Registry) Lookup(name string) (*Table, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tables[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownScript)
	}

	return t, nil
}

// Names returns the registered script names in ascending order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.tables))
	for n := range r.tables {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}
