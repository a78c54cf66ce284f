package bandha

import "github.com/katalvlaran/bhoovalaya/chakra"

// blockSide is the side of a Navamaank block; Size/blockSide = 9 blocks
// per axis, 81 blocks of 9 cells in total.
const blockSide = 3

// navamaankBandh walks the grid by nines: 81 blocks of 9 cells or
// 9 bands of 81 cells, in fixed row-major group and intra-group order.
type navamaankBandh struct {
	opts NavamaankOptions
}

// NewNavamaankBandh returns the Navamaank-Bandh pattern under opts.
// The zero NavamaankOptions selects NineBlocks.
func NewNavamaankBandh(opts NavamaankOptions) Pattern {
	return &navamaankBandh{opts: opts}
}

// Name returns NavamaankBandhName.
func (p *navamaankBandh) Name() string { return NavamaankBandhName }

// Generate emits all 729 coordinates group by group.
// Complexity: O(Cells) time and memory; self-verified before returning.
func (p *navamaankBandh) Generate() ([]chakra.Coord, error) {
	order := make([]chakra.Coord, 0, chakra.Cells)
	if p.opts.Grouping == NineBands {
		// 9 horizontal bands of 3 rows, row-major inside each band.
		for band := 0; band < chakra.Size/blockSide; band++ {
			for r := band * blockSide; r < (band+1)*blockSide; r++ {
				for c := 0; c < chakra.Size; c++ {
					order = append(order, chakra.Coord{Row: r, Col: c})
				}
			}
		}
	} else {
		// 81 blocks of 3×3, blocks row-major, cells row-major inside a block.
		for br := 0; br < chakra.Size/blockSide; br++ {
			for bc := 0; bc < chakra.Size/blockSide; bc++ {
				for i := 0; i < blockSide; i++ {
					for j := 0; j < blockSide; j++ {
						order = append(order, chakra.Coord{
							Row: br*blockSide + i,
							Col: bc*blockSide + j,
						})
					}
				}
			}
		}
	}
	if err := Verify(order); err != nil {
		return nil, err
	}

	return order, nil
}
