package ensemble

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/fokker/ou"
	"github.com/katalvlaran/fokker/resample"
	"github.com/katalvlaran/fokker/snapshot"
)

// pathResult is everything one realization contributes to the arena:
// captured axes, trajectory blocks on the uniform grid, boundary series,
// or the error that ended it.
type pathResult struct {
	times   []float64
	grid    []float64
	field   [][]float64
	gradSq  [][]float64
	bndVal  [2][]float64
	bndGrad [2][]float64
	err     error
}

// Run executes opts.Paths independent realizations of the boundary-driven
// simulation and assembles their captured trajectories into one Result.
//
// Description:
//
//	Each realization owns a fresh Solver from the factory and a noise
//	stream derived from (Seed, path index). Per step the run reads the
//	solver's current boundary field values, advances both
//	Ornstein–Uhlenbeck processes by one Euler–Maruyama step, hands the new
//	values back, and steps the solver. Capture is armed so that exactly
//	the final CaptureLast post-step states are recorded. Each captured
//	trajectory is then resampled onto a uniform grid, the gradient squared
//	pointwise, and the boundary series read off the first and last grid
//	columns.
//
//	Realizations run on a bounded worker pool; slot writes are disjoint by
//	realization index, so no locking is needed. A failed realization keeps
//	its error in its slot and contributes no samples. Run itself fails
//	only for an invalid call, context cancellation, captured axes that
//	disagree across realizations, or zero successful realizations.
//
// Errors:
//   - ErrNilFactory and every Options.Validate sentinel — invalid call.
//   - ctx.Err() — cancelled before the run drained.
//   - ErrShapeMismatch — realizations disagree on captured axes.
//   - ErrNoRealizations — every realization failed.
//
// Complexity: O(Paths·Steps) solver work plus O(Paths·window·grid) memory.
func Run(ctx context.Context, factory Factory, opts Options) (*Result, error) {
	if factory == nil {
		return nil, ErrNilFactory
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > opts.Paths {
		workers = opts.Paths
	}

	logger.Info("ensemble run starting",
		zap.Int("paths", opts.Paths),
		zap.Int("steps", opts.Steps),
		zap.Int("window", opts.window()),
		zap.Int("workers", workers),
	)
	started := time.Now()

	slots := make([]pathResult, opts.Paths)
	jobs := make(chan int)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for p := range jobs {
				slots[p] = runPath(ctx, factory, opts, p)
			}
		}()
	}

feed:
	for p := 0; p < opts.Paths; p++ {
		select {
		case jobs <- p:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res, err := assemble(slots)
	if err != nil {
		return nil, err
	}

	logger.Info("ensemble run finished",
		zap.Int("succeeded", res.Succeeded()),
		zap.Int("failed", res.Paths()-res.Succeeded()),
		zap.Duration("elapsed", time.Since(started)),
	)

	return res, nil
}

// runPath drives one realization end to end: noise, solver loop with OU
// boundary forcing, then trajectory extraction.
func runPath(ctx context.Context, factory Factory, opts Options, path int) pathResult {
	inc, err := opts.increments(path)
	if err != nil {
		return pathResult{err: err}
	}

	solver, err := factory(path)
	if err != nil {
		return pathResult{err: err}
	}

	captureAt := opts.Steps - opts.window()
	for n := 0; n < opts.Steps; n++ {
		select {
		case <-ctx.Done():
			return pathResult{err: ctx.Err()}
		default:
		}

		if n == captureAt {
			if err := solver.StartCapture(); err != nil {
				return pathResult{err: err}
			}
		}

		lo, err := ou.Step(solver.BoundaryValue(Lower), inc[n][0], opts.Dt, opts.Lower)
		if err != nil {
			return pathResult{err: err}
		}
		hi, err := ou.Step(solver.BoundaryValue(Upper), inc[n][1], opts.Dt, opts.Upper)
		if err != nil {
			return pathResult{err: err}
		}
		solver.SetBoundary(Lower, lo)
		solver.SetBoundary(Upper, hi)

		if err := solver.Step(); err != nil {
			return pathResult{err: err}
		}
	}

	return extract(solver, opts)
}

// extract pulls the captured trajectories off the solver, resamples both
// onto the uniform grid, squares the gradient, and reads the boundary
// series from the first and last grid columns.
func extract(solver Solver, opts Options) pathResult {
	store, err := solver.Snapshots()
	if err != nil {
		return pathResult{err: err}
	}

	fieldName, gradName := opts.fieldNames()
	field, err := store.Field(fieldName)
	if err != nil {
		return pathResult{err: err}
	}
	grad, err := store.Field(gradName)
	if err != nil {
		return pathResult{err: err}
	}
	if err := snapshot.Aligned(field, grad); err != nil {
		return pathResult{err: err}
	}
	if len(field.Times) == 0 {
		return pathResult{err: ErrNoSnapshots}
	}

	grid, err := resample.Grid(field.Grid, resample.Options{Spacing: opts.Spacing})
	if err != nil {
		return pathResult{err: err}
	}
	fieldRows, err := resample.Rows(field.Grid, field.Values, grid)
	if err != nil {
		return pathResult{err: err}
	}
	gradRows, err := resample.Rows(grad.Grid, grad.Values, grid)
	if err != nil {
		return pathResult{err: err}
	}

	out := pathResult{
		times:  field.Times,
		grid:   grid,
		field:  fieldRows,
		gradSq: make([][]float64, len(gradRows)),
	}
	for b := range out.bndVal {
		out.bndVal[b] = make([]float64, len(out.times))
		out.bndGrad[b] = make([]float64, len(out.times))
	}

	last := len(grid) - 1
	for t, row := range gradRows {
		sq := make([]float64, len(row))
		for i, g := range row {
			sq[i] = g * g
		}
		out.gradSq[t] = sq

		out.bndVal[Lower][t] = fieldRows[t][0]
		out.bndVal[Upper][t] = fieldRows[t][last]
		out.bndGrad[Lower][t] = row[0]
		out.bndGrad[Upper][t] = row[last]
	}

	return out
}

// assemble folds the per-realization slots into one Result, verifying that
// every successful realization produced identical captured axes.
func assemble(slots []pathResult) (*Result, error) {
	res := &Result{
		field:  make([][][]float64, len(slots)),
		gradSq: make([][][]float64, len(slots)),
		errs:   make([]error, len(slots)),
	}
	for b := range res.bndVal {
		res.bndVal[b] = make([][]float64, len(slots))
		res.bndGrad[b] = make([][]float64, len(slots))
	}

	for p, slot := range slots {
		if slot.err != nil {
			res.errs[p] = slot.err
			continue
		}

		if res.succeeded == 0 {
			res.times = slot.times
			res.grid = slot.grid
		} else if !sameAxis(res.times, slot.times) || !sameAxis(res.grid, slot.grid) {
			return nil, fmt.Errorf("ensemble: path %d: %w", p, ErrShapeMismatch)
		}

		res.field[p] = slot.field
		res.gradSq[p] = slot.gradSq
		for b := range slot.bndVal {
			res.bndVal[b][p] = slot.bndVal[b]
			res.bndGrad[b][p] = slot.bndGrad[b]
		}
		res.succeeded++
	}

	if res.succeeded == 0 {
		return nil, ErrNoRealizations
	}

	return res, nil
}

// sameAxis reports exact element-wise equality of two coordinate axes.
func sameAxis(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
