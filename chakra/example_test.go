// File: chakra/example_test.go
package chakra_test

import (
	"fmt"

	"github.com/katalvlaran/bhoovalaya/chakra"
)

// ExampleNewRowMajor demonstrates constructing a grid from a flat slice
// and reading a cell back by coordinate.
// Complexity: O(Cells) construction, O(1) access.
func ExampleNewRowMajor() {
	flat := make([]int, chakra.Cells)
	for i := range flat {
		flat[i] = i%chakra.MaxCode + 1
	}
	g, _ := chakra.NewRowMajor(flat)

	v, _ := g.At(chakra.Coord{Row: 0, Col: 5})
	fmt.Println("cell (0,5):", v)

	// Output:
	// cell (0,5): 6
}
