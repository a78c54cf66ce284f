package bandha

import (
	"fmt"

	"github.com/katalvlaran/bhoovalaya/chakra"
)

// Verify checks that order is a true permutation of all chakra.Cells
// coordinates: correct length, every coordinate in range, no duplicates.
// Builtins call it on every Generate; third-party patterns are checked
// again by the traversal engine, so a buggy Pattern fails loudly instead
// of yielding a silently partial decode.
// Returns ErrPatternIntegrity (wrapped with the offending detail) on any
// violation. Complexity: O(Cells).
func Verify(order []chakra.Coord) error {
	if len(order) != chakra.Cells {
		return fmt.Errorf("%d coords, want %d: %w", len(order), chakra.Cells, ErrPatternIntegrity)
	}
	var seen [chakra.Size][chakra.Size]bool
	for i, c := range order {
		if c.Row < 0 || c.Row >= chakra.Size || c.Col < 0 || c.Col >= chakra.Size {
			return fmt.Errorf("coord %s at step %d out of range: %w", c, i, ErrPatternIntegrity)
		}
		if seen[c.Row][c.Col] {
			return fmt.Errorf("coord %s revisited at step %d: %w", c, i, ErrPatternIntegrity)
		}
		seen[c.Row][c.Col] = true
	}

	return nil
}
