// File: bandha/example_test.go
package bandha_test

import (
	"fmt"

	"github.com/katalvlaran/bhoovalaya/bandha"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Registry
////////////////////////////////////////////////////////////////////////////////

// ExampleNewRegistry lists the builtin Bandhas an external caller can
// select by name.
func ExampleNewRegistry() {
	reg := bandha.NewRegistry()
	for _, name := range reg.Names() {
		fmt.Println(name)
	}

	// Output:
	// chakra-bandh
	// navamaank-bandh
	// sarvatobhadra-bandh
}

////////////////////////////////////////////////////////////////////////////////
// Example: ChakraBandh
////////////////////////////////////////////////////////////////////////////////

// ExampleNewChakraBandh shows the first steps of the canonical spiral:
// along the top row from (0,0), and the center cell as the final step.
func ExampleNewChakraBandh() {
	p := bandha.NewChakraBandh(bandha.DefaultChakraOptions())
	order, _ := p.Generate()

	fmt.Println("steps:", len(order))
	fmt.Println("first:", order[0], order[1], order[2])
	fmt.Println("last: ", order[len(order)-1])

	// Output:
	// steps: 729
	// first: (0,0) (0,1) (0,2)
	// last:  (13,13)
}
