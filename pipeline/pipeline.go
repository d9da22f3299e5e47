package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/fokker/ensemble"
	"github.com/katalvlaran/fokker/histogram"
	"github.com/katalvlaran/fokker/kolmogorov"
)

// ErrNoBins indicates a non-positive partition resolution.
var ErrNoBins = errors.New("pipeline: bins must be at least one")

// balanceWindow is the capture-window length that enables the balance
// diagnostic, fixed by its five-point time stencil.
const balanceWindow = 5

// Config assembles one estimation run.
//
// Fields:
//   - Ensemble      — the full simulation configuration handed to
//     ensemble.Run, logger included.
//   - Bins          — partition resolution for every histogram.
//   - FieldRange    — explicit range for the field axis; nil derives it
//     from the pooled samples.
//   - GradientRange — explicit range for the squared-gradient axis; nil
//     derives it from the pooled samples.
type Config struct {
	Ensemble      ensemble.Options
	Bins          int
	FieldRange    *histogram.Range
	GradientRange *histogram.Range
}

// DefaultConfig returns the reference estimation setup: the default
// ensemble over 64 data-driven bins.
func DefaultConfig() Config {
	return Config{Ensemble: ensemble.DefaultOptions(), Bins: 64}
}

// Run executes the whole chain: ensemble, densities, coefficients,
// balance diagnostic, report.
//
// Description:
//
//	The ensemble's flattened field samples build the bulk density f(y);
//	paired with the squared gradient they build the joint surface behind
//	the diffusion coefficient. The boundary series build one joint of
//	(value, raw gradient) per wall, forced onto f's partition, from which
//	the drift coefficient follows. When the capture window is exactly
//	five snapshots, each captured time gets its own density on f's
//	partition and the balance diagnostic compares the stencil ∂f/∂t
//	against the transport terms.
//
// Errors:
//   - ErrNoBins — cfg.Bins < 1, checked before any simulation work.
//   - every ensemble.Run error, unwrapped.
//   - histogram and kolmogorov errors, wrapped with the pipeline stage.
//
// Complexity: simulation-dominated; estimation adds O(samples·log samples).
func Run(ctx context.Context, factory ensemble.Factory, cfg Config) (*Report, error) {
	if cfg.Bins < 1 {
		return nil, ErrNoBins
	}

	logger := cfg.Ensemble.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	runID := uuid.New()
	started := time.Now()
	logger.Info("estimation run starting",
		zap.String("runID", runID.String()),
		zap.Int("bins", cfg.Bins),
		zap.Int("paths", cfg.Ensemble.Paths),
	)

	res, err := ensemble.Run(ctx, factory, cfg.Ensemble)
	if err != nil {
		return nil, err
	}

	fieldSamples := res.FieldSamples()
	fieldRange, err := resolveRange(cfg.FieldRange, fieldSamples)
	if err != nil {
		return nil, fmt.Errorf("pipeline: field range: %w", err)
	}
	f, err := histogram.NewUnivariate(fieldSamples, fieldRange, cfg.Bins)
	if err != nil {
		return nil, fmt.Errorf("pipeline: bulk density: %w", err)
	}

	gradSq := res.GradientSqSamples()
	gradRange, err := resolveRange(cfg.GradientRange, gradSq)
	if err != nil {
		return nil, fmt.Errorf("pipeline: gradient range: %w", err)
	}
	bulk, err := histogram.NewJoint(fieldSamples, gradSq, fieldRange, gradRange, cfg.Bins, cfg.Bins)
	if err != nil {
		return nil, fmt.Errorf("pipeline: bulk joint: %w", err)
	}
	d2 := kolmogorov.Diffusion(bulk)

	lower, err := boundaryJoint(res, ensemble.Lower, fieldRange, cfg.Bins)
	if err != nil {
		return nil, err
	}
	upper, err := boundaryJoint(res, ensemble.Upper, fieldRange, cfg.Bins)
	if err != nil {
		return nil, err
	}
	d1, err := kolmogorov.Drift(f, lower, upper)
	if err != nil {
		return nil, fmt.Errorf("pipeline: drift: %w", err)
	}

	failed := res.Failed()
	msgs := make([]string, len(failed))
	for i, pe := range failed {
		msgs[i] = pe.Error()
	}

	rep := &Report{
		RunID:     runID,
		Paths:     res.Paths(),
		Succeeded: res.Succeeded(),
		Failed:    len(failed),
		Errors:    msgs,
		Samples:   f.Samples,
		Bins:      cfg.Bins,
		Centers:   f.P.Centers(),
		Density:   append(Series(nil), f.Density...),
		Drift:     d1.Values,
		Diffusion: d2.Values,
	}

	if times := res.Times(); len(times) == balanceWindow {
		bal, err := balance(res, fieldRange, cfg.Bins, d1, d2, times)
		if err != nil {
			return nil, fmt.Errorf("pipeline: balance: %w", err)
		}
		rep.DfDt = bal.DfDt
		rep.Transport = bal.Transport
	}

	rep.Elapsed = time.Since(started)
	logger.Info("estimation run finished",
		zap.String("runID", runID.String()),
		zap.Int("succeeded", rep.Succeeded),
		zap.Int("failed", rep.Failed),
		zap.Int("samples", rep.Samples),
		zap.Duration("elapsed", rep.Elapsed),
	)

	return rep, nil
}

// resolveRange picks the explicit range when given, the data-driven one
// otherwise.
func resolveRange(explicit *histogram.Range, samples []float64) (histogram.Range, error) {
	if explicit != nil {
		return *explicit, nil
	}

	return histogram.RangeOf(samples)
}

// boundaryJoint builds the joint density of (boundary value, raw boundary
// gradient) for one wall, on the bulk partition's field axis.
func boundaryJoint(res *ensemble.Result, b ensemble.Boundary, fieldRange histogram.Range, bins int) (*histogram.Joint, error) {
	y, grad := res.BoundarySamples(b)
	gradRange, err := histogram.RangeOf(grad)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %s boundary joint: %w", b, err)
	}

	j, err := histogram.NewJoint(y, grad, fieldRange, gradRange, bins, bins)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %s boundary joint: %w", b, err)
	}

	return j, nil
}

// balance estimates one density per captured time on the shared partition
// and evaluates the stencil diagnostic against the coefficient profiles.
func balance(res *ensemble.Result, r histogram.Range, bins int, d1, d2 kolmogorov.Profile, times []float64) (*kolmogorov.Balance, error) {
	snaps := make([]*histogram.Univariate, len(times))
	for t := range times {
		samples, err := res.FieldSamplesAt(t)
		if err != nil {
			return nil, err
		}
		u, err := histogram.NewUnivariate(samples, r, bins)
		if err != nil {
			return nil, err
		}
		snaps[t] = u
	}

	return kolmogorov.NewBalance(snaps, d1, d2, times[1]-times[0])
}
