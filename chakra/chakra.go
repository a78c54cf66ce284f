package chakra

import "fmt"

// Dimensions and value domain of the Chakra. All four are fixed by the
// encoding scheme itself, not tunable.
const (
	// Size is the side length of the grid.
	Size = 27
	// Cells is the total cell count, Size×Size.
	Cells = Size * Size
	// MinCode is the smallest valid cell value.
	MinCode = 1
	// MaxCode is the largest valid cell value.
	MaxCode = 64
)

// Coord addresses a single cell, 0-indexed: Row, Col ∈ [0, Size).
type Coord struct {
	Row, Col int
}

// String formats a Coord as "(row,col)" for error messages and examples.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Grid is the immutable 27×27 board of codes. Construct via New or
// NewRowMajor; traversals only ever read it.
type Grid struct {
	cells [Size][Size]int
}

// New constructs a Grid from nested rows. The input is deep-copied to
// ensure immutability.
// Returns ErrBadShape unless values is exactly Size rows of Size columns,
// ErrCodeRange if any cell lies outside [MinCode, MaxCode].
// Complexity: O(Cells) time and memory.
func New(values [][]int) (*Grid, error) {
	if len(values) != Size {
		return nil, ErrBadShape
	}
	var g Grid
	for r, row := range values {
		if len(row) != Size {
			return nil, ErrBadShape
		}
		for c, v := range row {
			if v < MinCode || v > MaxCode {
				return nil, fmt.Errorf("cell (%d,%d)=%d: %w", r, c, v, ErrCodeRange)
			}
			g.cells[r][c] = v
		}
	}

	return &g, nil
}

// NewRowMajor constructs a Grid from a flat row-major slice of Cells values.
// Returns ErrBadShape unless len(values) == Cells,
// ErrCodeRange if any value lies outside [MinCode, MaxCode].
// Complexity: O(Cells) time and memory.
func NewRowMajor(values []int) (*Grid, error) {
	if len(values) != Cells {
		return nil, ErrBadShape
	}
	var g Grid
	for i, v := range values {
		if v < MinCode || v > MaxCode {
			return nil, fmt.Errorf("cell %d=%d: %w", i, v, ErrCodeRange)
		}
		g.cells[i/Size][i%Size] = v
	}

	return &g, nil
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < Size && c.Col >= 0 && c.Col < Size
}

// At returns the code stored at c.
// Returns ErrOutOfBounds if c lies outside the grid.
// Complexity: O(1).
func (g *Grid) At(c Coord) (int, error) {
	if !g.InBounds(c) {
		return 0, fmt.Errorf("%s: %w", c, ErrOutOfBounds)
	}

	return g.cells[c.Row][c.Col], nil
}

// Values returns a deep copy of the grid contents, row-major nested.
// External presentation layers may render it freely without touching the
// original. Complexity: O(Cells).
func (g *Grid) Values() [][]int {
	out := make([][]int, Size)
	for r := 0; r < Size; r++ {
		out[r] = make([]int, Size)
		copy(out[r], g.cells[r][:])
	}

	return out
}
