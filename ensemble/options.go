package ensemble

import (
	"fmt"
	"math"

	"github.com/katalvlaran/fokker/ou"
	"go.uber.org/zap"
)

// IncrementsFunc supplies the boundary increment path for one realization:
// at least steps rows of two standard-normal draws, column 0 for the lower
// boundary and column 1 for the upper. Implementations must be safe for
// concurrent calls with distinct path indexes.
type IncrementsFunc func(path, steps int) ([][2]float64, error)

// Options configures one ensemble run.
//
// Fields:
//   - Steps        — time steps N per realization.
//   - Dt           — time step length; must be positive and finite.
//   - Paths        — realization count P.
//   - CaptureLast  — snapshot window K: the final K steps are captured.
//     0 captures every step. Runs feeding the balance diagnostic want the
//     stencil width 5, the default.
//   - Lower, Upper — Ornstein–Uhlenbeck parameters driving each boundary.
//   - Seed         — base seed; realization p draws from the stream
//     DeriveSeed(Seed, p).
//   - Workers      — concurrent realizations; 0 or less means GOMAXPROCS,
//     always capped at Paths.
//   - FieldName, GradientName — capture names to fetch from the solver's
//     snapshot store; empty means "Y" and "Yz".
//   - Spacing      — uniform-grid spacing override for the resampler;
//     0 derives the smallest adjacent native spacing.
//   - Increments   — optional noise source replacing the seeded default.
//   - Logger       — optional structured logger; nil means silent.
type Options struct {
	Steps        int
	Dt           float64
	Paths        int
	CaptureLast  int
	Lower        ou.Params
	Upper        ou.Params
	Seed         uint64
	Workers      int
	FieldName    string
	GradientName string
	Spacing      float64
	Increments   IncrementsFunc
	Logger       *zap.Logger
}

// DefaultOptions returns the reference configuration: 100 steps of 0.01,
// 500 realizations, a five-snapshot capture window, and boundaries
// reverting to means 0 and 1 at rate 10 with volatility 0.25 under seed 42.
func DefaultOptions() Options {
	return Options{
		Steps:        100,
		Dt:           0.01,
		Paths:        500,
		CaptureLast:  5,
		Lower:        ou.Params{Rate: 10, Volatility: 0.25, Mean: 0},
		Upper:        ou.Params{Rate: 10, Volatility: 0.25, Mean: 1},
		Seed:         42,
		FieldName:    "Y",
		GradientName: "Yz",
	}
}

// Validate reports the first configuration error, if any. All violations
// are detected before any realization starts.
func (o Options) Validate() error {
	if o.Steps < 1 {
		return ErrNoSteps
	}
	if !(o.Dt > 0) || math.IsInf(o.Dt, 0) {
		return ErrNonPositiveStep
	}
	if o.Paths < 1 {
		return ErrNoPaths
	}
	if o.CaptureLast < 0 || o.CaptureLast > o.Steps {
		return ErrBadCapture
	}
	if err := o.Lower.Validate(); err != nil {
		return fmt.Errorf("ensemble: lower boundary: %w", err)
	}
	if err := o.Upper.Validate(); err != nil {
		return fmt.Errorf("ensemble: upper boundary: %w", err)
	}
	if o.Spacing < 0 || math.IsNaN(o.Spacing) || math.IsInf(o.Spacing, 0) {
		return ErrBadSpacing
	}

	return nil
}

// window returns the effective capture window: CaptureLast, or every step
// when it is zero.
func (o Options) window() int {
	if o.CaptureLast == 0 {
		return o.Steps
	}

	return o.CaptureLast
}

// fieldNames returns the capture names with defaults applied.
func (o Options) fieldNames() (field, gradient string) {
	field, gradient = o.FieldName, o.GradientName
	if field == "" {
		field = "Y"
	}
	if gradient == "" {
		gradient = "Yz"
	}

	return field, gradient
}

// increments resolves the noise source for one realization: the supplied
// IncrementsFunc when present, the seeded default stream otherwise.
func (o Options) increments(path int) ([][2]float64, error) {
	if o.Increments != nil {
		inc, err := o.Increments(path, o.Steps)
		if err != nil {
			return nil, err
		}
		if len(inc) < o.Steps {
			return nil, ErrIncrementLength
		}

		return inc, nil
	}

	return ou.Increments(o.Steps, ou.DeriveSeed(o.Seed, uint64(path)))
}
