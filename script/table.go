package script

import (
	"fmt"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/bhoovalaya/chakra"
)

// DefaultPlaceholder substitutes for unmapped codes when a spec names none:
// U+FFFD REPLACEMENT CHARACTER.
const DefaultPlaceholder = "�"

// Spec is the plain description of one script table. It is what a YAML
// document deserializes into; Table is its validated runtime form.
type Spec struct {
	// Name keys the table in a Registry, e.g. "kannada".
	Name string `yaml:"name"`
	// Placeholder substitutes for unmapped codes; DefaultPlaceholder if empty.
	Placeholder string `yaml:"placeholder,omitempty"`
	// Glyphs maps a numeric code in [1,64] to its glyph (one grapheme,
	// possibly several runes for conjuncts such as क्ष).
	Glyphs map[int]string `yaml:"glyphs"`
	// Combining lists the codes read as modifiers of the preceding base
	// glyph (vowel signs, virama, anusvāra, visarga) rather than emitted
	// standalone.
	Combining []int `yaml:"combining,omitempty"`
}

// ParseSpec deserializes a YAML script-table document into a Spec.
// Validation happens in New, not here.
func ParseSpec(data []byte) (Spec, error) {
	var s Spec
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Spec{}, fmt.Errorf("%w: %v", ErrBadSpec, err)
	}

	return s, nil
}

// Table is the immutable runtime form of a Spec. Construct via New; share
// read-only across any number of concurrent decodes.
type Table struct {
	name        string
	placeholder string
	glyphs      map[int]string
	combining   map[int]bool
	reverse     map[string]int
	maxRunes    int
}

// New validates spec and freezes it into a Table.
// Returns ErrBadSpec (wrapped with the offending detail) if the name is
// empty, a code lies outside [chakra.MinCode, chakra.MaxCode], a glyph is
// empty, or a combining code has no glyph entry.
func New(spec Spec) (*Table, error) {
	if spec.Name == "" {
		return nil, fmt.Errorf("empty name: %w", ErrBadSpec)
	}
	t := &Table{
		name:        spec.Name,
		placeholder: spec.Placeholder,
		glyphs:      make(map[int]string, len(spec.Glyphs)),
		combining:   make(map[int]bool, len(spec.Combining)),
		reverse:     make(map[string]int, len(spec.Glyphs)),
	}
	if t.placeholder == "" {
		t.placeholder = DefaultPlaceholder
	}
	for code, glyph := range spec.Glyphs {
		if code < chakra.MinCode || code > chakra.MaxCode {
			return nil, fmt.Errorf("%s: code %d: %w", spec.Name, code, ErrBadSpec)
		}
		if glyph == "" {
			return nil, fmt.Errorf("%s: code %d has empty glyph: %w", spec.Name, code, ErrBadSpec)
		}
		t.glyphs[code] = glyph
		// Reverse index for synthetic encoding; on glyph collision the
		// smallest code wins so the index stays deterministic.
		if prev, ok := t.reverse[glyph]; !ok || code < prev {
			t.reverse[glyph] = code
		}
		if n := utf8.RuneCountInString(glyph); n > t.maxRunes {
			t.maxRunes = n
		}
	}
	for _, code := range spec.Combining {
		if _, ok := t.glyphs[code]; !ok {
			return nil, fmt.Errorf("%s: combining code %d has no glyph: %w", spec.Name, code, ErrBadSpec)
		}
		t.combining[code] = true
	}

	return t, nil
}

// Name returns the registry key of the table.
func (t *Table) Name() string { return t.name }

// Placeholder returns the glyph substituted for unmapped codes.
func (t *Table) Placeholder() string { return t.placeholder }

// Glyph returns the glyph for code and whether the table maps it.
func (t *Table) Glyph(code int) (string, bool) {
	g, ok := t.glyphs[code]

	return g, ok
}

// Combining reports whether code is read as a modifier of the preceding
// base glyph in this script. This is the decoder's tie-break rule, driven
// entirely by the table.
func (t *Table) Combining(code int) bool { return t.combining[code] }

// Code returns the numeric code whose glyph is exactly s, for synthetic
// encoding. On glyphs shared by several codes the smallest code is
// returned.
func (t *Table) Code(s string) (int, bool) {
	c, ok := t.reverse[s]

	return c, ok
}

// MaxGlyphRunes returns the rune length of the longest mapped glyph;
// encoders use it to bound longest-match lookahead.
func (t *Table) MaxGlyphRunes() int { return t.maxRunes }

// Missing returns the codes in [chakra.MinCode, chakra.MaxCode] the table
// does not map, ascending. Decoding with a table that has missing codes
// still works; each occurrence yields the placeholder.
func (t *Table) Missing() []int {
	var gaps []int
	for code := chakra.MinCode; code <= chakra.MaxCode; code++ {
		if _, ok := t.glyphs[code]; !ok {
			gaps = append(gaps, code)
		}
	}

	return gaps
}

// Complete reports whether every code in [chakra.MinCode, chakra.MaxCode]
// is mapped — the precondition for a gap-free decode.
func (t *Table) Complete() bool { return len(t.glyphs) == chakra.MaxCode-chakra.MinCode+1 }
