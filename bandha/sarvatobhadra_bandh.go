package bandha

import "github.com/katalvlaran/bhoovalaya/chakra"

// sarvatobhadraBandh sweeps the anti-diagonals of the grid: the upper-left
// triangle (diagonal sums 0..26) top-down, then the lower-right triangle
// (sums 27..52) continuing from the left edge.
type sarvatobhadraBandh struct{}

// NewSarvatobhadraBandh returns the diagonal-sweep pattern. It takes no
// configuration; the sweep is fully determined by the grid size.
func NewSarvatobhadraBandh() Pattern {
	return sarvatobhadraBandh{}
}

// Name returns SarvatobhadraBandhName.
func (sarvatobhadraBandh) Name() string { return SarvatobhadraBandhName }

// Generate emits all 729 coordinates diagonal by diagonal.
// Complexity: O(Cells) time and memory; self-verified before returning.
func (sarvatobhadraBandh) Generate() ([]chakra.Coord, error) {
	order := make([]chakra.Coord, 0, chakra.Cells)
	// Upper-left triangle: anti-diagonals with Row+Col = k, k in [0,26].
	for k := 0; k < chakra.Size; k++ {
		for r := 0; r <= k; r++ {
			order = append(order, chakra.Coord{Row: r, Col: k - r})
		}
	}
	// Lower-right triangle: anti-diagonals with Row+Col = 26+k, k in [1,26].
	for k := 1; k < chakra.Size; k++ {
		for r := k; r < chakra.Size; r++ {
			order = append(order, chakra.Coord{Row: r, Col: chakra.Size - 1 - (r - k)})
		}
	}
	if err := Verify(order); err != nil {
		return nil, err
	}

	return order, nil
}
