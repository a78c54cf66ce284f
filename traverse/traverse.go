package traverse

import (
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/bhoovalaya/bandha"
	"github.com/katalvlaran/bhoovalaya/chakra"
)

// Sentinel errors for traversal calls.
var (
	// ErrNilGrid indicates a nil *chakra.Grid argument.
	ErrNilGrid = errors.New("traverse: grid is nil")
	// ErrNilPattern indicates a nil bandha.Pattern argument.
	ErrNilPattern = errors.New("traverse: pattern is nil")
)

// Sequence is the pattern-ordered extraction of a grid: exactly
// chakra.Cells codes, Sequence[i] = grid value at the pattern's i-th
// coordinate. Immutable by convention once returned.
type Sequence []int

// Traverse reads grid in the order emitted by p and returns the resulting
// Sequence. The grid is never mutated and no state is shared between
// calls, so any number of traversals may run concurrently over one grid.
// Returns ErrNilGrid / ErrNilPattern for nil arguments; propagates
// bandha.ErrPatternIntegrity if p's order fails verification and
// chakra.ErrOutOfBounds if p emits an invalid coordinate.
// Complexity: O(Cells) time and memory.
func Traverse(grid *chakra.Grid, p bandha.Pattern) (Sequence, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}
	if p == nil {
		return nil, ErrNilPattern
	}
	order, err := p.Generate()
	if err != nil {
		return nil, err
	}
	// Builtins self-verify; re-check here so third-party patterns get the
	// same guarantee.
	if err = bandha.Verify(order); err != nil {
		return nil, err
	}
	seq := make(Sequence, len(order))
	for i, c := range order {
		v, err := grid.At(c)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		seq[i] = v
	}

	return seq, nil
}

// Many traverses the same grid under every pattern concurrently and
// returns the sequences in argument order. The first failing traversal
// aborts the group and its error is returned.
// Complexity: O(len(patterns)×Cells) total work.
func Many(grid *chakra.Grid, patterns ...bandha.Pattern) ([]Sequence, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}
	seqs := make([]Sequence, len(patterns))
	var g errgroup.Group
	for i, p := range patterns {
		i, p := i, p
		g.Go(func() error {
			seq, err := Traverse(grid, p)
			if err != nil {
				return err
			}
			seqs[i] = seq

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return seqs, nil
}
