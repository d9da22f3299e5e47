package diffusion

import (
	"math"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/fokker/ensemble"
	"github.com/katalvlaran/fokker/snapshot"
)

// Config describes one solver instance.
//
// Fields:
//   - Points  — collocation points over [0, 1]; at least three.
//   - Dt      — time step; must be positive and finite.
//   - Initial — initial profile Y(z, 0); nil means the steady ramp Y = z.
//   - Cadence — log grid-averaged ⟨Y²⟩ and ⟨(∂zY)²⟩ every Cadence steps;
//     0 disables the diagnostic.
//   - Logger  — optional structured logger; nil means silent.
type Config struct {
	Points  int
	Dt      float64
	Initial func(z float64) float64
	Cadence int
	Logger  *zap.Logger
}

// DefaultConfig returns the reference discretization: 24 collocation
// points stepped at dt = 0.01.
func DefaultConfig() Config {
	return Config{Points: 24, Dt: 0.01}
}

// Solver advances ∂Y/∂t = ∂²Y/∂z² on a Chebyshev–Gauss–Lobatto grid with
// externally prescribed Dirichlet boundary values, one Crank–Nicolson step
// at a time. It satisfies ensemble.Solver; one instance serves exactly one
// realization and is not safe for concurrent use.
type Solver struct {
	n       int
	dt      float64
	cadence int
	logger  *zap.Logger

	grid  []float64
	deriv *mat.Dense // spectral first derivative
	rhs   *mat.Dense // I + (dt/2)·D²
	lu    mat.LU     // factorization of I − (dt/2)·D² with identity boundary rows

	y   *mat.VecDense
	b   *mat.VecDense
	g   *mat.VecDense
	bnd [2]float64

	iter int
	rec  *snapshot.Recorder
}

var _ ensemble.Solver = (*Solver)(nil)

// New builds a solver from cfg: collocation grid, differentiation matrix,
// the two Crank–Nicolson operators, and a single LU factorization of the
// implicit one. The boundary rows of the implicit operator are replaced by
// identity rows, so each step enforces the prescribed Dirichlet values
// exactly.
//
// Errors:
//   - ErrTooFewPoints    — cfg.Points < 3.
//   - ErrNonPositiveStep — cfg.Dt ≤ 0, NaN, or ±Inf.
//   - ErrBadCadence      — cfg.Cadence < 0.
//
// Complexity: O(Points³) once; steps are O(Points²).
func New(cfg Config) (*Solver, error) {
	if !(cfg.Dt > 0) || math.IsInf(cfg.Dt, 0) {
		return nil, ErrNonPositiveStep
	}
	if cfg.Cadence < 0 {
		return nil, ErrBadCadence
	}

	grid, err := Nodes(cfg.Points)
	if err != nil {
		return nil, err
	}
	deriv, err := DiffMatrix(cfg.Points)
	if err != nil {
		return nil, err
	}

	n := cfg.Points
	var d2 mat.Dense
	d2.Mul(deriv, deriv)

	implicit := mat.NewDense(n, n, nil)
	explicit := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var id float64
			if i == j {
				id = 1
			}
			half := 0.5 * cfg.Dt * d2.At(i, j)
			implicit.Set(i, j, id-half)
			explicit.Set(i, j, id+half)
		}
	}
	for j := 0; j < n; j++ {
		implicit.Set(0, j, 0)
		implicit.Set(n-1, j, 0)
	}
	implicit.Set(0, 0, 1)
	implicit.Set(n-1, n-1, 1)

	s := &Solver{
		n:       n,
		dt:      cfg.Dt,
		cadence: cfg.Cadence,
		logger:  cfg.Logger,
		grid:    grid,
		deriv:   deriv,
		rhs:     explicit,
		y:       mat.NewVecDense(n, nil),
		b:       mat.NewVecDense(n, nil),
		g:       mat.NewVecDense(n, nil),
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	s.lu.Factorize(implicit)

	initial := cfg.Initial
	if initial == nil {
		initial = func(z float64) float64 { return z }
	}
	for i, z := range grid {
		s.y.SetVec(i, initial(z))
	}
	s.bnd[ensemble.Lower] = s.y.AtVec(0)
	s.bnd[ensemble.Upper] = s.y.AtVec(n - 1)

	return s, nil
}

// Grid returns a copy of the native collocation grid, ascending over [0, 1].
func (s *Solver) Grid() []float64 {
	return append([]float64(nil), s.grid...)
}

// BoundaryValue evaluates the current field at a boundary location. The
// boundaries coincide with the first and last collocation nodes, so no
// interpolation is involved.
func (s *Solver) BoundaryValue(b ensemble.Boundary) float64 {
	if b == ensemble.Upper {
		return s.y.AtVec(s.n - 1)
	}

	return s.y.AtVec(0)
}

// SetBoundary prescribes the Dirichlet value enforced on the next Step.
// The value stays in force until changed.
func (s *Solver) SetBoundary(b ensemble.Boundary, v float64) {
	s.bnd[b] = v
}

// Iteration returns the number of completed steps.
func (s *Solver) Iteration() int { return s.iter }

// SimTime returns the simulated time reached so far.
func (s *Solver) SimTime() float64 { return float64(s.iter) * s.dt }

// Step advances the field by one Crank–Nicolson step.
//
// Description:
//
//	The right-hand side (I + dt/2·D²)·Y is assembled, its boundary entries
//	overwritten with the prescribed Dirichlet values, and the factorized
//	implicit operator solved in place. When capture is armed the post-step
//	field and its spectral derivative are recorded on the native grid;
//	when a cadence is configured, every Cadence-th step logs the
//	grid-averaged ⟨Y²⟩ and ⟨(∂zY)²⟩.
//
// Errors: the LU solve's error for a numerically singular operator.
//
// Complexity: O(Points²).
func (s *Solver) Step() error {
	s.b.MulVec(s.rhs, s.y)
	s.b.SetVec(0, s.bnd[ensemble.Lower])
	s.b.SetVec(s.n-1, s.bnd[ensemble.Upper])

	if err := s.lu.SolveVecTo(s.y, false, s.b); err != nil {
		return err
	}
	s.iter++

	logNow := s.cadence > 0 && s.iter%s.cadence == 0
	if s.rec == nil && !logNow {
		return nil
	}
	s.g.MulVec(s.deriv, s.y)

	if logNow {
		nodes := float64(s.n)
		s.logger.Info("flow properties",
			zap.Int("iteration", s.iter),
			zap.Float64("time", s.SimTime()),
			zap.Float64("meanSquareField", mat.Dot(s.y, s.y)/nodes),
			zap.Float64("meanSquareGradient", mat.Dot(s.g, s.g)/nodes),
		)
	}
	if s.rec == nil {
		return nil
	}

	return s.rec.Record(s.SimTime(), s.y.RawVector().Data, s.g.RawVector().Data)
}

// StartCapture arms snapshot capture: every subsequent Step records the
// post-step field "Y" and its spatial derivative "Yz" on the native grid.
// Arming an already capturing solver is a no-op.
func (s *Solver) StartCapture() error {
	if s.rec != nil {
		return nil
	}

	rec, err := snapshot.NewRecorder(s.grid, "Y", "Yz")
	if err != nil {
		return err
	}
	s.rec = rec

	return nil
}

// Snapshots returns the captured trajectories.
//
// Errors:
//   - ErrNotCapturing — StartCapture was never called.
func (s *Solver) Snapshots() (snapshot.Store, error) {
	if s.rec == nil {
		return nil, ErrNotCapturing
	}

	return s.rec, nil
}

// Factory adapts a Config into an ensemble.Factory: every realization gets
// its own fresh solver built from the same configuration.
func Factory(cfg Config) ensemble.Factory {
	return func(path int) (ensemble.Solver, error) {
		return New(cfg)
	}
}
