package resample

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/interp"
)

var (
	// ErrTooFewPoints indicates a native grid with fewer than two points.
	ErrTooFewPoints = errors.New("resample: native grid needs at least two points")

	// ErrNotIncreasing indicates native coordinates that are not strictly increasing.
	ErrNotIncreasing = errors.New("resample: native grid must be strictly increasing")

	// ErrLengthMismatch indicates a values slice whose length differs from the native grid.
	ErrLengthMismatch = errors.New("resample: values length must match native grid length")

	// ErrBadSpacing indicates a non-positive spacing or an empty [Start, Stop) span.
	ErrBadSpacing = errors.New("resample: spacing must be positive and Start must precede Stop")
)

// Options configures the uniform target grid.
//
// Fields:
//   - Start, Stop — half-open span [Start, Stop) of the target grid.
//     Start == Stop means both default to the native span.
//   - Spacing     — arithmetic step between target points.
//     A value of 0 derives the smallest adjacent native spacing.
type Options struct {
	Start   float64
	Stop    float64
	Spacing float64
}

// DefaultOptions returns the zero configuration: span and spacing derived
// from the native grid itself.
func DefaultOptions() Options {
	return Options{}
}

// Grid builds the uniform target grid for a native grid under opts.
//
// Description:
//
//	Points are Start + i·Spacing for i = 0, 1, ... while the point stays
//	strictly below Stop, so Stop itself is never included. With default
//	options the grid spans the native domain at its finest local
//	resolution, which slightly undershoots the upper native endpoint.
//
// Errors:
//   - ErrTooFewPoints, ErrNotIncreasing — invalid native grid.
//   - ErrBadSpacing — resolved spacing ≤ 0, non-finite, or Start ≥ Stop.
//
// Complexity: O(len(native) + len(grid)).
func Grid(native []float64, opts Options) ([]float64, error) {
	if err := validateNative(native); err != nil {
		return nil, err
	}

	start, stop, spacing := opts.Start, opts.Stop, opts.Spacing
	if start == stop {
		start, stop = native[0], native[len(native)-1]
	}
	if spacing == 0 {
		spacing = minSpacing(native)
	}
	if !(spacing > 0) || math.IsInf(spacing, 0) || !(start < stop) {
		return nil, ErrBadSpacing
	}

	n := int(math.Ceil((stop - start) / spacing))
	grid := make([]float64, n)
	for i := range grid {
		grid[i] = start + float64(i)*spacing
	}

	return grid, nil
}

// Values interpolates one slice of native values onto a target grid.
//
// The interpolant is exact at coincident nodes and extrapolates with the
// nearest endpoint value outside the native span.
//
// Errors:
//   - ErrTooFewPoints, ErrNotIncreasing — invalid native grid.
//   - ErrLengthMismatch — len(values) != len(native).
//
// Complexity: O(len(grid)·log len(native)).
func Values(native, values, grid []float64) ([]float64, error) {
	if err := validateNative(native); err != nil {
		return nil, err
	}
	if len(values) != len(native) {
		return nil, ErrLengthMismatch
	}

	var pl interp.PiecewiseLinear
	if err := pl.Fit(native, values); err != nil {
		return nil, err
	}

	out := make([]float64, len(grid))
	for i, x := range grid {
		out[i] = pl.Predict(x)
	}

	return out, nil
}

// Rows interpolates every time slice of a captured trajectory onto one
// target grid. Slices are independent; the output shape is
// len(rows) × len(grid).
//
// Errors: as Values, checked per row.
//
// Complexity: O(len(rows)·len(grid)·log len(native)).
func Rows(native []float64, rows [][]float64, grid []float64) ([][]float64, error) {
	out := make([][]float64, len(rows))
	for t, row := range rows {
		v, err := Values(native, row, grid)
		if err != nil {
			return nil, err
		}
		out[t] = v
	}

	return out, nil
}

// Uniform is Grid followed by Values in one call, returning both the target
// grid and the interpolated slice.
func Uniform(native, values []float64, opts Options) (grid, out []float64, err error) {
	grid, err = Grid(native, opts)
	if err != nil {
		return nil, nil, err
	}
	out, err = Values(native, values, grid)
	if err != nil {
		return nil, nil, err
	}

	return grid, out, nil
}

// validateNative checks length and strict monotonicity. A NaN coordinate
// fails the comparison and reports ErrNotIncreasing.
func validateNative(native []float64) error {
	if len(native) < 2 {
		return ErrTooFewPoints
	}
	for i := 1; i < len(native); i++ {
		if !(native[i] > native[i-1]) {
			return ErrNotIncreasing
		}
	}

	return nil
}

// minSpacing returns the smallest adjacent gap of a validated native grid.
func minSpacing(native []float64) float64 {
	min := native[1] - native[0]
	for i := 2; i < len(native); i++ {
		if d := native[i] - native[i-1]; d < min {
			min = d
		}
	}

	return min
}
