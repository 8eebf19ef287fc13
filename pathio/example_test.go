// File: pathio/example_test.go
package pathio_test

import (
	"errors"
	"fmt"

	"github.com/lampwright/lampcycle/cylgrid"
	"github.com/lampwright/lampcycle/hamcycle"
	"github.com/lampwright/lampcycle/pathio"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Encode / Decode round trip
////////////////////////////////////////////////////////////////////////////////

// Example demonstrates the full persistence round trip on the smallest
// cylinder: canonical 2×2 cycle out, record back in, traits intact.
func Example() {
	g, _ := cylgrid.New(2, 2)
	c, _ := hamcycle.Build(g)

	rec, _ := pathio.Encode(c, pathio.Traits{WallThickness: 1.2, WallHeight: 20})
	fmt.Println("vertices:", rec.Vertices)

	back, traits, err := pathio.Decode(rec)
	fmt.Println("err:", err)
	fmt.Println("order kept:", back.Vertices()[0] == c.Vertices()[0])
	fmt.Println("thickness:", traits.WallThickness)

	// Output:
	// vertices: [[0 0] [0 1] [1 1] [1 0]]
	// err: <nil>
	// order kept: true
	// thickness: 1.2
}

////////////////////////////////////////////////////////////////////////////////
// Example: Decode rejecting a malformed record
////////////////////////////////////////////////////////////////////////////////

// ExampleDecode_malformed shows the sentinel coming back for a record whose
// vertex list does not cover the grid.
func ExampleDecode_malformed() {
	rec := pathio.Record{Width: 2, Height: 2, Vertices: [][2]int{{0, 0}, {0, 1}}}

	_, _, err := pathio.Decode(rec)
	fmt.Println(errors.Is(err, pathio.ErrMalformedPath))

	// Output:
	// true
}
