package colidx_test

import (
	"fmt"

	"github.com/hupe1980/colidx"
	"github.com/hupe1980/colidx/array"
	"github.com/hupe1980/colidx/intutil"
)

func Example() {
	indices := array.MustFromJSON(array.Int32, "[0, 3, null, 1]")

	width, _ := intutil.DetectDataWidth(indices, 1)
	fmt.Println("width:", width)

	err := intutil.IndexBoundsCheck(indices, 3)
	if ie, ok := colidx.IsIndexError(err); ok {
		fmt.Println("position:", ie.Position)
	}
	fmt.Println(err)
	// Output:
	// width: 1
	// position: 1
	// index 3 out of bounds [0, 3) at position 1
}
