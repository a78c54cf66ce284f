package decode

import (
	"strings"

	"github.com/rivo/uniseg"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/unicode/norm"

	"github.com/katalvlaran/bhoovalaya/bandha"
	"github.com/katalvlaran/bhoovalaya/chakra"
	"github.com/katalvlaran/bhoovalaya/script"
	"github.com/katalvlaran/bhoovalaya/traverse"
)

// standaloneMark carries a combining sign that has no base to attach to:
// U+25CC DOTTED CIRCLE, the Unicode convention for isolated marks.
const standaloneMark = "◌"

// Result is one decoded text with its confidence signals.
type Result struct {
	// Text is the NFC-normalized grapheme sequence.
	Text string
	// Unknown counts codes the table had no mapping for; each occurrence
	// appears in Text as the table's placeholder.
	Unknown int
	// Graphemes counts user-perceived characters in Text. Combining signs
	// merge with their base, so Graphemes ≤ number of codes decoded.
	Graphemes int
}

// Decode maps seq through t, left to right. A code marked combining by the
// table attaches to the preceding base grapheme; at the start of the text
// or after a placeholder it is carried on a dotted circle instead. An
// unmapped code contributes the placeholder and increments Unknown —
// decoding never aborts on table gaps.
// Deterministic, no I/O; returns ErrNilTable only for a nil table.
// Complexity: O(len(seq)).
func Decode(seq traverse.Sequence, t *script.Table) (Result, error) {
	if t == nil {
		return Result{}, ErrNilTable
	}
	var b strings.Builder
	unknown := 0
	hasBase := false
	for _, code := range seq {
		glyph, ok := t.Glyph(code)
		if !ok {
			b.WriteString(t.Placeholder())
			unknown++
			hasBase = false

			continue
		}
		if t.Combining(code) && !hasBase {
			b.WriteString(standaloneMark)
			b.WriteString(glyph)

			continue
		}
		b.WriteString(glyph)
		hasBase = true
	}
	text := norm.NFC.String(b.String())

	return Result{
		Text:      text,
		Unknown:   unknown,
		Graphemes: uniseg.GraphemeClusterCount(text),
	}, nil
}

// Hidden decodes the same grid twice: once under the primary pattern and
// table, once under the hidden pair. The two pipelines share no mutable
// state and run concurrently; their relative order cannot affect either
// result. The first failing pipeline's error is returned.
func Hidden(
	grid *chakra.Grid,
	primary bandha.Pattern, primaryTable *script.Table,
	hidden bandha.Pattern, hiddenTable *script.Table,
) (Result, Result, error) {
	var pr, hr Result
	var g errgroup.Group
	g.Go(func() error {
		seq, err := traverse.Traverse(grid, primary)
		if err != nil {
			return err
		}
		pr, err = Decode(seq, primaryTable)

		return err
	})
	g.Go(func() error {
		seq, err := traverse.Traverse(grid, hidden)
		if err != nil {
			return err
		}
		hr, err = Decode(seq, hiddenTable)

		return err
	})
	if err := g.Wait(); err != nil {
		return Result{}, Result{}, err
	}

	return pr, hr, nil
}
