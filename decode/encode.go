package decode

import (
	"fmt"

	"github.com/katalvlaran/bhoovalaya/bandha"
	"github.com/katalvlaran/bhoovalaya/chakra"
	"github.com/katalvlaran/bhoovalaya/script"
)

// Codes inverts a table: it segments text into the table's glyphs by
// longest match and returns the corresponding numeric codes. Round-trip
// holds for any table with unambiguous coverage: Decode(Codes(text)) == text
// as long as text contains no placeholders or isolated combining signs.
// Returns ErrNilTable for a nil table, ErrUnencodable (wrapped with the
// offending position) when no glyph matches.
// Complexity: O(len(text) × MaxGlyphRunes).
func Codes(text string, t *script.Table) ([]int, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	runes := []rune(text)
	codes := make([]int, 0, len(runes))
	for i := 0; i < len(runes); {
		limit := t.MaxGlyphRunes()
		if rest := len(runes) - i; rest < limit {
			limit = rest
		}
		matched := false
		// Longest match first, so conjuncts like क्ष win over क + ् + ष.
		for l := limit; l >= 1; l-- {
			if code, ok := t.Code(string(runes[i : i+l])); ok {
				codes = append(codes, code)
				i += l
				matched = true

				break
			}
		}
		if !matched {
			return nil, fmt.Errorf("rune %d %q: %w", i, runes[i], ErrUnencodable)
		}
	}

	return codes, nil
}

// EncodeGrid builds a grid whose traversal under p starts with codes, the
// remaining cells holding filler. Decoding the result under p reproduces
// the codes as the leading prefix — the synthetic-encoding half of the
// round-trip property, and the tool for planting steganographic texts.
// Returns ErrTooLong if len(codes) exceeds chakra.Cells; code and filler
// range violations surface as chakra.ErrCodeRange from construction;
// pattern failures propagate as bandha.ErrPatternIntegrity.
// Complexity: O(Cells).
func EncodeGrid(codes []int, p bandha.Pattern, filler int) (*chakra.Grid, error) {
	if len(codes) > chakra.Cells {
		return nil, fmt.Errorf("%d codes: %w", len(codes), ErrTooLong)
	}
	if p == nil {
		return nil, bandha.ErrNilPattern
	}
	order, err := p.Generate()
	if err != nil {
		return nil, err
	}
	if err = bandha.Verify(order); err != nil {
		return nil, err
	}
	values := make([][]int, chakra.Size)
	for r := range values {
		values[r] = make([]int, chakra.Size)
		for c := range values[r] {
			values[r][c] = filler
		}
	}
	for i, code := range codes {
		values[order[i].Row][order[i].Col] = code
	}

	return chakra.New(values)
}
