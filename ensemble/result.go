package ensemble

import "github.com/katalvlaran/fokker/histogram"

// Result is the ensemble arena: per-realization trajectory slots indexed
// by realization id, sharing one captured time axis and one uniform grid.
// Slots are written once during the run and never resized; failed
// realizations keep their error and contribute no samples.
type Result struct {
	times     []float64
	grid      []float64
	field     [][][]float64  // [path][time][space], nil for failed paths
	gradSq    [][][]float64  // [path][time][space]
	bndVal    [2][][]float64 // [boundary][path][time]
	bndGrad   [2][][]float64 // [boundary][path][time]
	errs      []error        // [path], nil on success
	succeeded int
}

// Paths returns the configured realization count, successful or not.
func (r *Result) Paths() int { return len(r.errs) }

// Succeeded returns the number of realizations that completed.
func (r *Result) Succeeded() int { return r.succeeded }

// Failed lists the failed realizations in index order.
func (r *Result) Failed() []PathError {
	var out []PathError
	for p, err := range r.errs {
		if err != nil {
			out = append(out, PathError{Path: p, Err: err})
		}
	}

	return out
}

// Times returns a copy of the shared captured time axis.
func (r *Result) Times() []float64 {
	return append([]float64(nil), r.times...)
}

// Grid returns a copy of the shared uniform spatial grid.
func (r *Result) Grid() []float64 {
	return append([]float64(nil), r.grid...)
}

// FieldSamples flattens every successful realization's field trajectory
// into one ordered sample list: paths in index order, rows (captured
// times) in time order, row-major.
func (r *Result) FieldSamples() []float64 {
	return histogram.Flatten(r.field...)
}

// GradientSqSamples flattens the squared-gradient trajectories the same
// way FieldSamples flattens the field.
func (r *Result) GradientSqSamples() []float64 {
	return histogram.Flatten(r.gradSq...)
}

// FieldSamplesAt flattens the field across successful realizations at one
// captured time index, for per-snapshot densities.
//
// Errors:
//   - ErrTimeIndex — t outside [0, len(Times())).
func (r *Result) FieldSamplesAt(t int) ([]float64, error) {
	if t < 0 || t >= len(r.times) {
		return nil, ErrTimeIndex
	}

	rows := make([][]float64, 0, r.succeeded)
	for _, block := range r.field {
		if block != nil {
			rows = append(rows, block[t])
		}
	}

	return histogram.Flatten(rows), nil
}

// BoundarySamples flattens the value and raw-gradient series recorded at
// one boundary location across all successful realizations and captured
// times. The two slices are index-aligned pairs, ready for a boundary
// joint histogram. b must be Lower or Upper.
func (r *Result) BoundarySamples(b Boundary) (y, grad []float64) {
	return histogram.Flatten(r.bndVal[b]), histogram.Flatten(r.bndGrad[b])
}
