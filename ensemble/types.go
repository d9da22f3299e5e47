package ensemble

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/fokker/snapshot"
)

var (
	// ErrNilFactory indicates a Run without a solver factory.
	ErrNilFactory = errors.New("ensemble: factory must not be nil")

	// ErrNoSteps indicates a step count below one.
	ErrNoSteps = errors.New("ensemble: steps must be at least one")

	// ErrNonPositiveStep indicates a zero, negative, or non-finite time step.
	ErrNonPositiveStep = errors.New("ensemble: dt must be positive and finite")

	// ErrNoPaths indicates a realization count below one.
	ErrNoPaths = errors.New("ensemble: paths must be at least one")

	// ErrBadCapture indicates a capture window outside [0, steps].
	ErrBadCapture = errors.New("ensemble: capture window must lie in [0, steps]")

	// ErrBadSpacing indicates a negative or non-finite grid spacing override.
	ErrBadSpacing = errors.New("ensemble: spacing must be non-negative and finite")

	// ErrIncrementLength indicates a supplied increment path shorter than steps.
	ErrIncrementLength = errors.New("ensemble: increment path shorter than steps")

	// ErrNoSnapshots indicates a solver whose capture produced nothing.
	ErrNoSnapshots = errors.New("ensemble: solver captured no snapshots")

	// ErrShapeMismatch indicates realizations that disagree on the captured
	// time axis or the uniform grid — a fatal configuration error.
	ErrShapeMismatch = errors.New("ensemble: realizations disagree on captured axes")

	// ErrNoRealizations indicates a run in which every realization failed.
	ErrNoRealizations = errors.New("ensemble: no realization succeeded")

	// ErrTimeIndex indicates a captured-time index outside the window.
	ErrTimeIndex = errors.New("ensemble: captured time index out of range")
)

// Boundary identifies one of the two driven boundary locations of the
// spatial domain.
type Boundary int

const (
	// Lower is the boundary at the start of the spatial domain.
	Lower Boundary = iota

	// Upper is the boundary at the end of the spatial domain.
	Upper
)

// String returns "lower" or "upper".
func (b Boundary) String() string {
	if b == Upper {
		return "upper"
	}

	return "lower"
}

// Solver is the contract an external time stepper must satisfy to be
// driven by an ensemble run. One Solver instance serves exactly one
// realization and is never shared.
//
// Capture protocol: StartCapture arms periodic capture; after every
// subsequent Step the solver records one snapshot of the field and its
// spatial derivative (the post-step state) on its native grid. Snapshots
// returns the store of everything captured so far.
type Solver interface {
	// BoundaryValue evaluates the current field at a boundary location.
	BoundaryValue(b Boundary) float64

	// SetBoundary hands the solver the boundary value to enforce on the
	// next Step.
	SetBoundary(b Boundary, v float64)

	// Step advances the solver by one time step.
	Step() error

	// Iteration returns the number of completed steps.
	Iteration() int

	// SimTime returns the simulated time reached so far.
	SimTime() float64

	// StartCapture arms snapshot capture for all subsequent steps.
	StartCapture() error

	// Snapshots returns the captured trajectories, keyed by field name.
	Snapshots() (snapshot.Store, error)
}

// Factory builds one independent Solver per realization index. Factories
// may be called concurrently and must not share mutable state between the
// solvers they return.
type Factory func(path int) (Solver, error)

// PathError records the failure of a single realization. Failed
// realizations are excluded from all flattened samples; the error is kept
// for reporting.
type PathError struct {
	Path int
	Err  error
}

// Error implements the error interface.
func (e PathError) Error() string {
	return fmt.Sprintf("ensemble: path %d: %v", e.Path, e.Err)
}

// Unwrap exposes the underlying cause to errors.Is and errors.As.
func (e PathError) Unwrap() error { return e.Err }
