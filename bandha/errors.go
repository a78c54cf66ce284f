package bandha

import "errors"

// Sentinel errors for bandha generation and registry operations.
var (
	// ErrPatternIntegrity indicates an emitted order is not a permutation
	// of all 729 coordinates (duplicate, omission, or out-of-range coord).
	ErrPatternIntegrity = errors.New("bandha: order is not a permutation of all 729 cells")
	// ErrUnknownPattern indicates a registry lookup for a name never registered.
	ErrUnknownPattern = errors.New("bandha: unknown pattern name")
	// ErrDuplicatePattern indicates a second registration under the same name.
	ErrDuplicatePattern = errors.New("bandha: pattern name already registered")
	// ErrNilPattern indicates an attempt to register a nil or unnamed pattern.
	ErrNilPattern = errors.New("bandha: nil or unnamed pattern")
)
