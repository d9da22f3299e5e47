package ou_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/fokker/ou"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStep_DriftOnly verifies the deterministic mean-reversion term:
// with zero noise, one step moves the value by Rate·(Mean−y)·dt exactly.
func TestStep_DriftOnly(t *testing.T) {
	p := ou.Params{Rate: 10, Volatility: 0, Mean: 1}

	next, err := ou.Step(0, 0, 0.1, p)
	require.NoError(t, err, "valid inputs should not error")
	assert.InDelta(t, 1.0, next, 1e-15, "0 + 10·(1−0)·0.1 must equal 1")

	next, err = ou.Step(2, 0, 0.1, p)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, next, 1e-15, "reversion must pull from above the mean too")
}

// TestStep_NoiseScaling verifies the √dt Brownian scaling is applied to the
// increment inside Step, not expected from the caller.
func TestStep_NoiseScaling(t *testing.T) {
	p := ou.Params{Rate: 0, Volatility: 2, Mean: 0}

	next, err := ou.Step(0, 3, 0.25, p)
	require.NoError(t, err)
	assert.InDelta(t, 2*0.5*3, next, 1e-15, "volatility·√dt·increment with √0.25=0.5")
}

// TestStep_Stationary checks the degenerate-parameter property: Rate=0 and
// Volatility=0 return the current value unchanged for any dt, mean, increment.
func TestStep_Stationary(t *testing.T) {
	p := ou.Params{Rate: 0, Volatility: 0, Mean: 123.456}

	for _, tc := range []struct {
		current, increment, dt float64
	}{
		{0, 0, 0.01},
		{-7.5, 99, 1.0},
		{3.25, -3, 1e-9},
	} {
		next, err := ou.Step(tc.current, tc.increment, tc.dt, p)
		require.NoError(t, err)
		assert.Equal(t, tc.current, next, "degenerate process must be exactly stationary")
	}
}

// TestStep_RejectsBadStep ensures dt ≤ 0, NaN and ±Inf all fail with
// ErrNonPositiveStep before any arithmetic happens.
func TestStep_RejectsBadStep(t *testing.T) {
	p := ou.Params{Rate: 1, Volatility: 1, Mean: 0}

	for _, dt := range []float64{0, -0.5, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := ou.Step(1, 1, dt, p)
		assert.ErrorIs(t, err, ou.ErrNonPositiveStep, "dt=%v must be rejected", dt)
	}
}

// TestStep_RejectsBadParams ensures non-finite fields and negative
// volatility fail with ErrBadParams.
func TestStep_RejectsBadParams(t *testing.T) {
	bad := []ou.Params{
		{Rate: math.NaN(), Volatility: 1, Mean: 0},
		{Rate: 1, Volatility: -0.1, Mean: 0},
		{Rate: 1, Volatility: 1, Mean: math.Inf(1)},
		{Rate: 1, Volatility: math.NaN(), Mean: 0},
	}
	for _, p := range bad {
		_, err := ou.Step(0, 0, 0.1, p)
		assert.ErrorIs(t, err, ou.ErrBadParams, "params %+v must be rejected", p)
	}
}

// TestIncrements_Reproducible verifies that one seed always yields the same
// path and that distinct seeds yield distinct paths.
func TestIncrements_Reproducible(t *testing.T) {
	a, err := ou.Increments(64, 42)
	require.NoError(t, err)
	b, err := ou.Increments(64, 42)
	require.NoError(t, err)
	assert.Equal(t, a, b, "same seed must reproduce the identical path")

	c, err := ou.Increments(64, 43)
	require.NoError(t, err)
	assert.NotEqual(t, a, c, "different seeds must not collide")
}

// TestIncrements_ColumnsIndependent checks the two boundary columns are not
// copies of each other.
func TestIncrements_ColumnsIndependent(t *testing.T) {
	path, err := ou.Increments(32, 7)
	require.NoError(t, err)

	same := true
	for _, row := range path {
		if row[0] != row[1] {
			same = false
			break
		}
	}
	assert.False(t, same, "lower and upper boundary draws must differ")
}

// TestIncrements_NoSteps ensures a zero-length path request errors.
func TestIncrements_NoSteps(t *testing.T) {
	_, err := ou.Increments(0, 1)
	assert.ErrorIs(t, err, ou.ErrNoSteps)

	_, err = ou.Increments(-3, 1)
	assert.ErrorIs(t, err, ou.ErrNoSteps)
}

// TestIncrements_StandardMoments spot-checks that draws look standard normal:
// sample mean near 0 and sample variance near 1. Bounds are loose multiples
// of the standard errors, so the seeded test is far from flaky.
func TestIncrements_StandardMoments(t *testing.T) {
	const steps = 10000
	path, err := ou.Increments(steps, 42)
	require.NoError(t, err)

	var sum, sumSq float64
	for _, row := range path {
		sum += row[0] + row[1]
		sumSq += row[0]*row[0] + row[1]*row[1]
	}
	n := float64(2 * steps)
	mean := sum / n
	variance := sumSq/n - mean*mean

	assert.InDelta(t, 0.0, mean, 0.05, "sample mean of N(0,1) draws")
	assert.InDelta(t, 1.0, variance, 0.10, "sample variance of N(0,1) draws")
}

// TestDeriveSeed_StreamSeparation verifies neighbouring streams map to
// unrelated seeds and that the mix is stable for a fixed input pair.
func TestDeriveSeed_StreamSeparation(t *testing.T) {
	const base = 42

	seen := make(map[uint64]bool)
	for stream := uint64(0); stream < 100; stream++ {
		s := ou.DeriveSeed(base, stream)
		assert.False(t, seen[s], "stream %d collided", stream)
		seen[s] = true
	}

	assert.Equal(t, ou.DeriveSeed(base, 5), ou.DeriveSeed(base, 5), "derivation must be pure")
	assert.NotEqual(t, ou.DeriveSeed(base, 5), ou.DeriveSeed(base+1, 5), "base seed must matter")
}

// TestIncrements_StreamsDiffer ties DeriveSeed and Increments together: two
// realizations derived from one base seed get visibly different noise.
func TestIncrements_StreamsDiffer(t *testing.T) {
	a, err := ou.Increments(16, ou.DeriveSeed(42, 0))
	require.NoError(t, err)
	b, err := ou.Increments(16, ou.DeriveSeed(42, 1))
	require.NoError(t, err)

	assert.NotEqual(t, a, b, "per-realization streams must be independent")
}
