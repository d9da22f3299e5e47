package ensemble_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/fokker/ensemble"
	"github.com/katalvlaran/fokker/ou"
)

// ExampleRun drives two noiseless realizations of a toy solver and shows
// the shared axes of the assembled ensemble: the final three post-step
// times and the uniform grid resampled from the native one.
func ExampleRun() {
	opts := ensemble.DefaultOptions()
	opts.Steps = 10
	opts.Dt = 0.5
	opts.Paths = 2
	opts.CaptureLast = 3
	opts.Lower = ou.Params{Rate: 0, Volatility: 0}
	opts.Upper = ou.Params{Rate: 0, Volatility: 0}
	opts.Workers = 1

	factory := func(path int) (ensemble.Solver, error) {
		return newStubSolver(opts.Dt, []float64{0, 0.4, 1}, 0, 1), nil
	}

	res, err := ensemble.Run(context.Background(), factory, opts)
	if err != nil {
		fmt.Println("run failed:", err)
		return
	}

	fmt.Println("succeeded:", res.Succeeded())
	fmt.Println("times:", res.Times())
	fmt.Println("grid:", res.Grid())
	// Output:
	// succeeded: 2
	// times: [4 4.5 5]
	// grid: [0 0.4 0.8]
}
