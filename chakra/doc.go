// Package chakra models the Siri Bhoovalaya Chakra: a fixed 27×27 grid of
// numeric codes, each in [1,64], addressed by 0-indexed (row, column)
// coordinates.
//
// What:
//
//   - Grid wraps a validated 27×27 board of codes; immutable once built.
//   - Coord is the (Row, Col) addressing unit shared with the bandha and
//     traverse packages.
//   - Construction accepts nested rows (New) or a flat row-major slice
//     (NewRowMajor) and deep-copies either, so callers cannot mutate a
//     Grid after the fact.
//
// Why:
//
//   - The Chakra is the single source of truth of a decode session; every
//     Bandha traversal and every script decode derives from it. Freezing
//     shape and value range at the boundary lets everything downstream
//     assume a well-formed board.
//
// Complexity:
//
//   - New / NewRowMajor: O(Cells) time and memory (Cells = 729).
//   - At / InBounds:     O(1).
//
// Errors:
//
//   - ErrBadShape: input is not exactly 27 rows × 27 columns.
//   - ErrCodeRange: a cell value lies outside [1,64].
//   - ErrOutOfBounds: a coordinate lies outside [0,26]×[0,26].
package chakra
