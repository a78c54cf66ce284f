// Package bandha implements the Bandha traversal patterns of the Siri
// Bhoovalaya: deterministic rules that order all 729 cells of the Chakra
// for extraction.
//
// What:
//
//   - Pattern is the polymorphic capability: Generate() returns a
//     permutation of every chakra.Coord, exactly once each.
//   - ChakraBandh walks the 14 concentric square rings of the grid in a
//     fixed rotational sense (ring r = cells at Chebyshev distance r from
//     the border), outer→inner or inner→outer.
//   - NavamaankBandh is the "by-nines" walk: 81 row-major 3×3 blocks, or
//     9 three-row bands of 81 cells, row-major inside each group.
//   - SarvatobhadraBandh sweeps the anti-diagonals, upper triangle first.
//   - Verify checks any emitted order against the permutation invariant.
//   - Memoize caches a pattern's order; patterns are pure functions of
//     their configuration, so the cache is always valid.
//   - Registry is a name-keyed catalog ("chakra-bandh", "navamaank-bandh",
//     "sarvatobhadra-bandh", plus caller additions) passed explicitly to
//     callers — no package-level mutable state.
//
// Why:
//
//   - The same grid read under different Bandhas yields different,
//     independently meaningful texts; the steganographic property of the
//     scheme lives entirely in this package's geometry.
//
// Complexity:
//
//   - Generate (all builtins): O(Cells) time and memory (Cells = 729).
//   - Verify:                  O(Cells).
//   - Memoize'd Generate:      O(Cells) copy after a one-time compute.
//
// Errors:
//
//   - ErrPatternIntegrity: an emitted order is not a true permutation.
//   - ErrUnknownPattern: registry lookup for an unregistered name.
//   - ErrDuplicatePattern: registering a name twice.
//   - ErrNilPattern: registering a nil or unnamed pattern.
package bandha
