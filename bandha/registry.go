package bandha

import (
	"fmt"
	"sort"
	"sync"
)

// Registry is a name-keyed catalog of patterns. It is an explicit value:
// construct one at startup with NewRegistry and pass it to whoever selects
// patterns by name. Safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	patterns map[string]Pattern
}

// NewRegistry returns a Registry preloaded with the three builtin Bandhas
// under their default options, each memoized. Callers extend it with
// Register; the traversal engine itself never changes.
func NewRegistry() *Registry {
	r := &Registry{patterns: make(map[string]Pattern)}
	_ = r.Register(Memoize(NewChakraBandh(DefaultChakraOptions())))
	_ = r.Register(Memoize(NewNavamaankBandh(DefaultNavamaankOptions())))
	_ = r.Register(Memoize(NewSarvatobhadraBandh()))

	return r
}

// Register adds p under p.Name().
// Returns ErrNilPattern for a nil or unnamed pattern,
// ErrDuplicatePattern if the name is already taken.
func (r *Registry) Register(p Pattern) error {
	if p == nil || p.Name() == "" {
		return ErrNilPattern
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.patterns[p.Name()]; ok {
		return fmt.Errorf("%q: %w", p.Name(), ErrDuplicatePattern)
	}
	r.patterns[p.Name()] = p

	return nil
}

// Lookup returns the pattern registered under name.
// Returns ErrUnknownPattern if no such registration exists.
func (r *Registry) Lookup(name string) (Pattern, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.patterns[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownPattern)
	}

	return p, nil
}

// Names returns the registered pattern names in ascending order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.patterns))
	for n := range r.patterns {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}
