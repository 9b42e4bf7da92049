package window

import (
	"fmt"

	"github.com/cwbudde/algo-fretboard/dsp/core"
)

func ExampleGenerate() {
	w := Generate(TypeHann, 4)
	fmt.Printf("%.2f %.2f %.2f %.2f\n", w[0], w[1], w[2], w[3])
	// Output:
	// 0.00 0.75 0.75 0.00
}

func ExampleApplyHanning() {
	series := []core.Point{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}}
	out := ApplyHanning(series)
	fmt.Printf("%.2f %.2f %.2f\n", out[0].Y, out[1].Y, out[2].Y)
	// Output:
	// 0.00 1.00 0.00
}
