package bandha_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/bhoovalaya/bandha"
	"github.com/katalvlaran/bhoovalaya/chakra"
)

//----------------------------------------------------------------------------//
// Permutation Invariant
//----------------------------------------------------------------------------//

// TestBuiltins_Permutation verifies every registered builtin emits each of
// the 729 coordinates exactly once.
func TestBuiltins_Permutation(t *testing.T) {
	reg := bandha.NewRegistry()
	for _, name := range reg.Names() {
		t.Run(name, func(t *testing.T) {
			p, err := reg.Lookup(name)
			if err != nil {
				t.Fatalf("Lookup(%q) error: %v", name, err)
			}
			order, err := p.Generate()
			if err != nil {
				t.Fatalf("Generate error: %v", err)
			}
			if len(order) != chakra.Cells {
				t.Fatalf("len(order) = %d; want %d", len(order), chakra.Cells)
			}
			seen := make(map[chakra.Coord]bool, chakra.Cells)
			for i, c := range order {
				if c.Row < 0 || c.Row >= chakra.Size || c.Col < 0 || c.Col >= chakra.Size {
					t.Fatalf("step %d: coord %s out of range", i, c)
				}
				if seen[c] {
					t.Fatalf("step %d: coord %s repeated", i, c)
				}
				seen[c] = true
			}
		})
	}
}

//----------------------------------------------------------------------------//
// Geometry Tests
//----------------------------------------------------------------------------//

// TestChakraBandh_Default checks the canonical spiral: east along the top
// row from (0,0), turning south at the corner, ending on the center cell.
func TestChakraBandh_Default(t *testing.T) {
	order, err := bandha.NewChakraBandh(bandha.DefaultChakraOptions()).Generate()
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	wantHead := []chakra.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}
	for i, want := range wantHead {
		if order[i] != want {
			t.Errorf("order[%d] = %s; want %s", i, order[i], want)
		}
	}
	// Corner turn: step 26 is (0,26), step 27 heads south to (1,26).
	if order[26] != (chakra.Coord{Row: 0, Col: 26}) {
		t.Errorf("order[26] = %s; want (0,26)", order[26])
	}
	if order[27] != (chakra.Coord{Row: 1, Col: 26}) {
		t.Errorf("order[27] = %s; want (1,26)", order[27])
	}
	if center := (chakra.Coord{Row: 13, Col: 13}); order[chakra.Cells-1] != center {
		t.Errorf("last coord = %s; want %s", order[chakra.Cells-1], center)
	}
}

// TestChakraBandh_Variants checks the rotation and unwind parameters.
func TestChakraBandh_Variants(t *testing.T) {
	ccw, err := bandha.NewChakraBandh(bandha.ChakraOptions{Rotation: bandha.CounterClockwise}).Generate()
	if err != nil {
		t.Fatalf("Generate(ccw) error: %v", err)
	}
	if ccw[1] != (chakra.Coord{Row: 1, Col: 0}) {
		t.Errorf("ccw order[1] = %s; want (1,0)", ccw[1])
	}

	inner, err := bandha.NewChakraBandh(bandha.ChakraOptions{Unwind: bandha.InnerToOuter}).Generate()
	if err != nil {
		t.Fatalf("Generate(inner) error: %v", err)
	}
	if inner[0] != (chakra.Coord{Row: 13, Col: 13}) {
		t.Errorf("inner order[0] = %s; want (13,13)", inner[0])
	}
	if inner[chakra.Cells-1] != (chakra.Coord{Row: 1, Col: 0}) {
		// Outer ring walked clockwise from (0,0) ends one cell south of it.
		t.Errorf("inner last coord = %s; want (1,0)", inner[chakra.Cells-1])
	}
}

// TestNavamaankBandh_Blocks checks the 3×3 block walk: nine cells of block
// (0,0) row-major, then block (0,1).
func TestNavamaankBandh_Blocks(t *testing.T) {
	order, err := bandha.NewNavamaankBandh(bandha.DefaultNavamaankOptions()).Generate()
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	wantHead := []chakra.Coord{
		{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2},
		{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2},
		{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2},
		{Row: 0, Col: 3},
	}
	for i, want := range wantHead {
		if order[i] != want {
			t.Errorf("order[%d] = %s; want %s", i, order[i], want)
		}
	}
}

// TestNavamaankBandh_Bands checks the band walk degenerates to a full
// row-major sweep (bands stack row-major themselves).
func TestNavamaankBandh_Bands(t *testing.T) {
	order, err := bandha.NewNavamaankBandh(bandha.NavamaankOptions{Grouping: bandha.NineBands}).Generate()
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	for i, c := range order {
		want := chakra.Coord{Row: i / chakra.Size, Col: i % chakra.Size}
		if c != want {
			t.Fatalf("order[%d] = %s; want %s", i, c, want)
		}
	}
}

// TestSarvatobhadraBandh checks the rising anti-diagonal sweep.
func TestSarvatobhadraBandh(t *testing.T) {
	order, err := bandha.NewSarvatobhadraBandh().Generate()
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	wantHead := []chakra.Coord{
		{Row: 0, Col: 0},
		{Row: 0, Col: 1}, {Row: 1, Col: 0},
		{Row: 0, Col: 2}, {Row: 1, Col: 1}, {Row: 2, Col: 0},
	}
	for i, want := range wantHead {
		if order[i] != want {
			t.Errorf("order[%d] = %s; want %s", i, order[i], want)
		}
	}
}

//----------------------------------------------------------------------------//
// Verify Tests
//----------------------------------------------------------------------------//

// TestVerify_Failures verifies each way an order can break the permutation
// invariant maps to ErrPatternIntegrity.
func TestVerify_Failures(t *testing.T) {
	good, err := bandha.NewChakraBandh(bandha.DefaultChakraOptions()).Generate()
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	truncated := good[:chakra.Cells-1]

	duplicated := make([]chakra.Coord, chakra.Cells)
	copy(duplicated, good)
	duplicated[728] = duplicated[0]

	escaped := make([]chakra.Coord, chakra.Cells)
	copy(escaped, good)
	escaped[400] = chakra.Coord{Row: chakra.Size, Col: 0}

	cases := []struct {
		name  string
		order []chakra.Coord
	}{
		{"Truncated", truncated},
		{"Duplicate", duplicated},
		{"OutOfRange", escaped},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := bandha.Verify(tc.order); !errors.Is(err, bandha.ErrPatternIntegrity) {
				t.Errorf("Verify error = %v; want ErrPatternIntegrity", err)
			}
		})
	}

	if err := bandha.Verify(good); err != nil {
		t.Errorf("Verify(good) error = %v; want nil", err)
	}
}

//----------------------------------------------------------------------------//
// Memoize and Registry Tests
//----------------------------------------------------------------------------//

// TestMemoize verifies cached orders equal the inner pattern's and that
// callers receive independent copies.
func TestMemoize(t *testing.T) {
	inner := bandha.NewNavamaankBandh(bandha.DefaultNavamaankOptions())
	m := bandha.Memoize(inner)
	if m.Name() != inner.Name() {
		t.Errorf("Name = %q; want %q", m.Name(), inner.Name())
	}

	first, err := m.Generate()
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	first[0] = chakra.Coord{Row: 26, Col: 26} // must not leak into the cache

	second, err := m.Generate()
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if second[0] != (chakra.Coord{Row: 0, Col: 0}) {
		t.Errorf("cached order mutated through caller slice: order[0] = %s", second[0])
	}
}

// TestRegistry verifies registration, lookup and name listing.
func TestRegistry(t *testing.T) {
	reg := bandha.NewRegistry()

	want := []string{bandha.ChakraBandhName, bandha.NavamaankBandhName, bandha.SarvatobhadraBandhName}
	names := reg.Names()
	if len(names) != len(want) {
		t.Fatalf("Names() = %v; want %v", names, want)
	}
	for i, n := range want {
		if names[i] != n {
			t.Errorf("Names()[%d] = %q; want %q", i, names[i], n)
		}
	}

	if _, err := reg.Lookup("kumbh-bandh"); !errors.Is(err, bandha.ErrUnknownPattern) {
		t.Errorf("Lookup(unknown) error = %v; want ErrUnknownPattern", err)
	}
	if err := reg.Register(bandha.NewSarvatobhadraBandh()); !errors.Is(err, bandha.ErrDuplicatePattern) {
		t.Errorf("Register(dup) error = %v; want ErrDuplicatePattern", err)
	}
	if err := reg.Register(nil); !errors.Is(err, bandha.ErrNilPattern) {
		t.Errorf("Register(nil) error = %v; want ErrNilPattern", err)
	}
}
