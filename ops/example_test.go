// File: ops/example_test.go
package ops_test

import (
	"fmt"

	"github.com/katalvlaran/lvraster/ops"
	"github.com/katalvlaran/lvraster/pixel"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Apply
////////////////////////////////////////////////////////////////////////////////

// ExampleApply halftones a 1×2 image: black becomes an empty 3×3 block,
// white a full one.
func ExampleApply() {
	in, _ := pixel.FromGray([][]float64{{0, 255}})
	out, err := ops.Apply(ops.Halftone, in)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(out)

	// Output:
	// [0, 0, 0, 255, 255, 255]
	// [0, 0, 0, 255, 255, 255]
	// [0, 0, 0, 255, 255, 255]
}

////////////////////////////////////////////////////////////////////////////////
// Example: Pipeline
////////////////////////////////////////////////////////////////////////////////

// ExamplePipeline downsamples and then rotates clockwise.
func ExamplePipeline() {
	in, _ := pixel.FromGray([][]float64{
		{1, 0, 2, 0},
		{0, 0, 0, 0},
		{3, 0, 4, 0},
	})
	out, _ := ops.Pipeline(in, []string{ops.Downscale, ops.Rot90})
	fmt.Print(out)

	// Output:
	// [3, 1]
	// [4, 2]
}
