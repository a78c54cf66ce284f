// Package bandha: pattern capability, tunable options, and documented
// defaults. Options follow the package convention: enum + options struct +
// DefaultXOptions constructor, so zero configuration is always valid.
package bandha

import "github.com/katalvlaran/bhoovalaya/chakra"

// Pattern is a deterministic, side-effect-free generator of a full
// visitation order over the Chakra. Generate must return a permutation of
// all chakra.Cells coordinates; builtins self-verify and return
// ErrPatternIntegrity rather than a partial order.
type Pattern interface {
	// Name returns the registry key, e.g. "chakra-bandh".
	Name() string
	// Generate returns the full visitation order, fresh on every call.
	Generate() ([]chakra.Coord, error)
}

// Registered names of the builtin patterns.
const (
	// ChakraBandhName keys the concentric-ring traversal.
	ChakraBandhName = "chakra-bandh"
	// NavamaankBandhName keys the by-nines traversal.
	NavamaankBandhName = "navamaank-bandh"
	// SarvatobhadraBandhName keys the anti-diagonal sweep.
	SarvatobhadraBandhName = "sarvatobhadra-bandh"
)

// Rotation selects the rotational sense of a ring walk.
type Rotation int

const (
	// Clockwise walks each ring east along its top row first.
	Clockwise Rotation = iota
	// CounterClockwise walks each ring south along its left column first.
	CounterClockwise
)

// Unwind selects the ring visiting order of ChakraBandh.
type Unwind int

const (
	// OuterToInner starts on the border ring and spirals inward.
	OuterToInner Unwind = iota
	// InnerToOuter starts on the center cell and spirals outward.
	InnerToOuter
)

// Grouping selects the nine-grouping principle of NavamaankBandh.
type Grouping int

const (
	// NineBlocks partitions the grid into 81 row-major 3×3 blocks of 9 cells.
	NineBlocks Grouping = iota
	// NineBands partitions the grid into 9 horizontal 3-row bands of 81 cells.
	NineBands
)

// ChakraOptions configures the ring traversal.
//
// Fields:
//   - Rotation — Clockwise or CounterClockwise walk of each ring.
//   - Unwind   — OuterToInner or InnerToOuter ring order.
//
// The default (Clockwise, OuterToInner) reproduces the canonical spiral
// that starts at (0,0) and heads east.
type ChakraOptions struct {
	Rotation Rotation
	Unwind   Unwind
}

// DefaultChakraOptions returns the canonical configuration:
// Clockwise rotation, OuterToInner unwind.
func DefaultChakraOptions() ChakraOptions {
	return ChakraOptions{Rotation: Clockwise, Unwind: OuterToInner}
}

// NavamaankOptions configures the by-nines traversal.
//
// Fields:
//   - Grouping — NineBlocks (81 blocks of 9) or NineBands (9 bands of 81).
type NavamaankOptions struct {
	Grouping Grouping
}

// DefaultNavamaankOptions returns the canonical configuration: NineBlocks.
func DefaultNavamaankOptions() NavamaankOptions {
	return NavamaankOptions{Grouping: NineBlocks}
}
