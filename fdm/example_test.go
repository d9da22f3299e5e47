package fdm_test

import (
	"fmt"

	"github.com/katalvlaran/fokker/fdm"
)

// ExampleCentralDifference_Apply differentiates a parabola sampled on a
// uniform grid. Interior rows recover 2y; boundary rows report zero.
func ExampleCentralDifference_Apply() {
	const h = 0.5
	y := []float64{0, 0.5, 1, 1.5, 2}
	f := make([]float64, len(y))
	for i := range y {
		f[i] = y[i] * y[i]
	}

	d, err := fdm.NewCentralDifference(len(y), h)
	if err != nil {
		fmt.Println("operator:", err)
		return
	}
	df, err := d.Apply(f)
	if err != nil {
		fmt.Println("apply:", err)
		return
	}

	for i := range df {
		fmt.Printf("y=%.1f df=%.1f\n", y[i], df[i])
	}
	// Output:
	// y=0.0 df=0.0
	// y=0.5 df=1.0
	// y=1.0 df=2.0
	// y=1.5 df=3.0
	// y=2.0 df=0.0
}
