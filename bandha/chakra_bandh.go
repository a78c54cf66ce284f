package bandha

import "github.com/katalvlaran/bhoovalaya/chakra"

// rings is the number of concentric square rings in the 27×27 grid:
// (Size+1)/2. Ring r holds the cells at Chebyshev distance r from the
// border; ring rings-1 is the single center cell.
const rings = (chakra.Size + 1) / 2

// chakraBandh walks the grid ring by ring in a constant rotational sense.
type chakraBandh struct {
	opts ChakraOptions
}

// NewChakraBandh returns the Chakra-Bandh pattern under opts.
// The zero ChakraOptions (Clockwise, OuterToInner) is the canonical spiral
// from (0,0) heading east.
func NewChakraBandh(opts ChakraOptions) Pattern {
	return &chakraBandh{opts: opts}
}

// Name returns ChakraBandhName.
func (p *chakraBandh) Name() string { return ChakraBandhName }

// Generate emits all 729 coordinates ring by ring.
// Complexity: O(Cells) time and memory; self-verified before returning.
func (p *chakraBandh) Generate() ([]chakra.Coord, error) {
	order := make([]chakra.Coord, 0, chakra.Cells)
	for i := 0; i < rings; i++ {
		r := i
		if p.opts.Unwind == InnerToOuter {
			r = rings - 1 - i
		}
		order = appendRing(order, r, p.opts.Rotation)
	}
	if err := Verify(order); err != nil {
		return nil, err
	}

	return order, nil
}

// appendRing appends ring r (corners (r,r) and (hi,hi), hi = Size-1-r)
// walked in the given rotational sense, starting at (r,r).
func appendRing(order []chakra.Coord, r int, rot Rotation) []chakra.Coord {
	hi := chakra.Size - 1 - r
	if r == hi {
		// Center cell: degenerate single-cell ring.
		return append(order, chakra.Coord{Row: r, Col: r})
	}
	if rot == Clockwise {
		for c := r; c <= hi; c++ { // top row, west→east
			order = append(order, chakra.Coord{Row: r, Col: c})
		}
		for w := r + 1; w <= hi; w++ { // right column, north→south
			order = append(order, chakra.Coord{Row: w, Col: hi})
		}
		for c := hi - 1; c >= r; c-- { // bottom row, east→west
			order = append(order, chakra.Coord{Row: hi, Col: c})
		}
		for w := hi - 1; w >= r+1; w-- { // left column, south→north
			order = append(order, chakra.Coord{Row: w, Col: r})
		}

		return order
	}
	for w := r; w <= hi; w++ { // left column, north→south
		order = append(order, chakra.Coord{Row: w, Col: r})
	}
	for c := r + 1; c <= hi; c++ { // bottom row, west→east
		order = append(order, chakra.Coord{Row: hi, Col: c})
	}
	for w := hi - 1; w >= r; w-- { // right column, south→north
		order = append(order, chakra.Coord{Row: w, Col: hi})
	}
	for c := hi - 1; c >= r+1; c-- { // top row, east→west
		order = append(order, chakra.Coord{Row: r, Col: c})
	}

	return order
}
