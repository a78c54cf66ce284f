package bandha

import (
	"sync"

	"github.com/katalvlaran/bhoovalaya/chakra"
)

// memoized caches the underlying pattern's order after the first Generate.
// Patterns are pure functions of their configuration and the grid size is
// fixed, so the cached order never goes stale. Safe for concurrent use.
type memoized struct {
	inner Pattern
	once  sync.Once
	order []chakra.Coord
	err   error
}

// Memoize wraps p so the visitation order is computed once and copied out
// on every subsequent Generate. Useful when the same pattern drives many
// decode pipelines. A nil p is returned unchanged.
func Memoize(p Pattern) Pattern {
	if p == nil {
		return nil
	}

	return &memoized{inner: p}
}

// Name returns the wrapped pattern's name.
func (m *memoized) Name() string { return m.inner.Name() }

// Generate returns a fresh copy of the cached order, computing it on first
// use. Callers receive independent slices and may not interfere with each
// other. Complexity: O(Cells) copy after the one-time compute.
func (m *memoized) Generate() ([]chakra.Coord, error) {
	m.once.Do(func() {
		m.order, m.err = m.inner.Generate()
	})
	if m.err != nil {
		return nil, m.err
	}
	out := make([]chakra.Coord, len(m.order))
	copy(out, m.order)

	return out, nil
}
