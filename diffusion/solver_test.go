package diffusion_test

import (
	"context"
	"math"
	"testing"

	"github.com/katalvlaran/fokker/diffusion"
	"github.com/katalvlaran/fokker/ensemble"
	"github.com/katalvlaran/fokker/ou"
	"github.com/katalvlaran/fokker/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// TestNew_Validation walks the constructor sentinels.
func TestNew_Validation(t *testing.T) {
	cfg := diffusion.DefaultConfig()
	cfg.Points = 2
	_, err := diffusion.New(cfg)
	assert.ErrorIs(t, err, diffusion.ErrTooFewPoints)

	cfg = diffusion.DefaultConfig()
	cfg.Dt = 0
	_, err = diffusion.New(cfg)
	assert.ErrorIs(t, err, diffusion.ErrNonPositiveStep)

	cfg = diffusion.DefaultConfig()
	cfg.Dt = math.NaN()
	_, err = diffusion.New(cfg)
	assert.ErrorIs(t, err, diffusion.ErrNonPositiveStep)

	cfg = diffusion.DefaultConfig()
	cfg.Cadence = -1
	_, err = diffusion.New(cfg)
	assert.ErrorIs(t, err, diffusion.ErrBadCadence)
}

// TestSolver_SteadyRamp verifies that the ramp Y = z with boundaries held
// at 0 and 1 is a fixed point of the Crank–Nicolson step.
func TestSolver_SteadyRamp(t *testing.T) {
	cfg := diffusion.DefaultConfig()
	cfg.Points = 16

	s, err := diffusion.New(cfg)
	require.NoError(t, err)
	require.NoError(t, s.StartCapture())

	s.SetBoundary(ensemble.Lower, 0)
	s.SetBoundary(ensemble.Upper, 1)
	for n := 0; n < 50; n++ {
		require.NoError(t, s.Step())
	}

	store, err := s.Snapshots()
	require.NoError(t, err)
	y, err := store.Field("Y")
	require.NoError(t, err)
	require.Len(t, y.Values, 50)

	last := y.Values[len(y.Values)-1]
	for i, z := range s.Grid() {
		assert.InDelta(t, z, last[i], 1e-6, "node %d", i)
	}
}

// TestSolver_SineDecay verifies the analytic heat-kernel rate: with both
// boundaries pinned at zero, sin(πz) decays by e^(−π²t).
func TestSolver_SineDecay(t *testing.T) {
	cfg := diffusion.Config{
		Points:  24,
		Dt:      1e-3,
		Initial: func(z float64) float64 { return math.Sin(math.Pi * z) },
	}

	s, err := diffusion.New(cfg)
	require.NoError(t, err)
	s.SetBoundary(ensemble.Lower, 0)
	s.SetBoundary(ensemble.Upper, 0)

	const steps = 50
	for n := 0; n < steps-1; n++ {
		require.NoError(t, s.Step())
	}
	require.NoError(t, s.StartCapture())
	require.NoError(t, s.Step())

	store, err := s.Snapshots()
	require.NoError(t, err)
	y, err := store.Field("Y")
	require.NoError(t, err)
	require.Len(t, y.Values, 1, "capture starts with the arming step")

	decay := math.Exp(-math.Pi * math.Pi * s.SimTime())
	for i, z := range s.Grid() {
		assert.InDelta(t, decay*math.Sin(math.Pi*z), y.Values[0][i], 1e-4, "node %d", i)
	}
}

// TestSolver_DirichletEnforcement verifies the boundary-row replacement:
// prescribed values appear exactly at the endpoints after one step and
// stay in force until changed.
func TestSolver_DirichletEnforcement(t *testing.T) {
	cfg := diffusion.DefaultConfig()
	cfg.Points = 12

	s, err := diffusion.New(cfg)
	require.NoError(t, err)

	s.SetBoundary(ensemble.Lower, 0.3)
	s.SetBoundary(ensemble.Upper, 0.7)
	require.NoError(t, s.Step())
	assert.InDelta(t, 0.3, s.BoundaryValue(ensemble.Lower), 1e-10)
	assert.InDelta(t, 0.7, s.BoundaryValue(ensemble.Upper), 1e-10)

	require.NoError(t, s.Step())
	assert.InDelta(t, 0.3, s.BoundaryValue(ensemble.Lower), 1e-10, "values persist")
	assert.InDelta(t, 0.7, s.BoundaryValue(ensemble.Upper), 1e-10)
}

// TestSolver_CaptureProtocol verifies the snapshot contract: nothing
// before arming, one aligned record per post-arm step, idempotent arming.
func TestSolver_CaptureProtocol(t *testing.T) {
	cfg := diffusion.DefaultConfig()
	cfg.Points = 8
	cfg.Dt = 0.25

	s, err := diffusion.New(cfg)
	require.NoError(t, err)

	_, err = s.Snapshots()
	assert.ErrorIs(t, err, diffusion.ErrNotCapturing)

	require.NoError(t, s.Step(), "pre-capture steps record nothing later")
	require.NoError(t, s.StartCapture())
	for n := 0; n < 3; n++ {
		require.NoError(t, s.Step())
	}
	require.NoError(t, s.StartCapture(), "re-arming is a no-op")

	store, err := s.Snapshots()
	require.NoError(t, err)
	assert.Equal(t, []string{"Y", "Yz"}, store.Names())

	y, err := store.Field("Y")
	require.NoError(t, err)
	yz, err := store.Field("Yz")
	require.NoError(t, err)
	assert.NoError(t, snapshot.Aligned(y, yz))

	assert.Equal(t, []float64{0.5, 0.75, 1}, y.Times, "post-step times of the armed steps")
	assert.Equal(t, s.Grid(), y.Grid)
	assert.Equal(t, 4, s.Iteration())
	assert.Equal(t, 1.0, s.SimTime())
}

// TestSolver_CadenceLogging verifies the flow-properties diagnostic fires
// on exactly the configured multiples.
func TestSolver_CadenceLogging(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	cfg := diffusion.DefaultConfig()
	cfg.Points = 8
	cfg.Cadence = 2
	cfg.Logger = zap.New(core)

	s, err := diffusion.New(cfg)
	require.NoError(t, err)
	for n := 0; n < 5; n++ {
		require.NoError(t, s.Step())
	}

	entries := logs.FilterMessage("flow properties").All()
	require.Len(t, entries, 2)
	assert.Equal(t, int64(2), entries[0].ContextMap()["iteration"])
	assert.Equal(t, int64(4), entries[1].ContextMap()["iteration"])

	first := entries[0].ContextMap()
	assert.Contains(t, first, "meanSquareField")
	assert.Contains(t, first, "meanSquareGradient")
}

// TestFactory_DrivesEnsemble runs the real solver under the orchestrator
// with frozen boundaries: every realization preserves the steady ramp, and
// the assembled axes have the expected shape.
func TestFactory_DrivesEnsemble(t *testing.T) {
	cfg := diffusion.DefaultConfig()
	cfg.Points = 8

	opts := ensemble.DefaultOptions()
	opts.Steps = 12
	opts.Dt = cfg.Dt
	opts.Paths = 3
	opts.CaptureLast = 4
	opts.Lower = ou.Params{Rate: 0, Volatility: 0}
	opts.Upper = ou.Params{Rate: 0, Volatility: 0}
	opts.Workers = 2

	res, err := ensemble.Run(context.Background(), diffusion.Factory(cfg), opts)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Succeeded())
	assert.Len(t, res.Times(), 4)

	grid := res.Grid()
	require.NotEmpty(t, grid)
	assert.Len(t, res.FieldSamples(), 3*4*len(grid))

	// Frozen boundaries at the ramp's endpoints keep Y = z, so the
	// resampled field reproduces the uniform grid itself.
	snap, err := res.FieldSamplesAt(0)
	require.NoError(t, err)
	for i, v := range snap {
		assert.InDelta(t, grid[i%len(grid)], v, 1e-6, "sample %d", i)
	}
}
