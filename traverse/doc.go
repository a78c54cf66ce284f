// Package traverse drives a Bandha pattern over a Chakra grid, producing
// the ordered numeric sequence the decoder consumes.
//
// What:
//
//   - Sequence is the 729-element extraction, one grid code per pattern step.
//   - Traverse runs one pattern over one grid.
//   - Many runs several patterns over the same grid concurrently; results
//     come back in argument order, never completion order.
//
// Why:
//
//   - The engine is the only place the pattern and the grid meet, so it is
//     also where the permutation invariant is enforced: a pattern that
//     duplicates or omits a cell fails with ErrPatternIntegrity instead of
//     returning a silently partial decode.
//
// Concurrency:
//
//   - Grids are immutable and patterns are pure, so traversals share no
//     mutable state; Many simply fans them out on an errgroup.
//
// Complexity:
//
//   - Traverse: O(Cells) time and memory.
//   - Many:     O(k×Cells) work across k goroutines.
//
// Errors:
//
//   - ErrNilGrid / ErrNilPattern: programmer errors, checked up front.
//   - bandha.ErrPatternIntegrity, chakra.ErrOutOfBounds: propagated
//     unmodified from the pattern and grid.
package traverse
