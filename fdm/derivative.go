package fdm

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrTooFewPoints indicates an operator dimension below three.
	ErrTooFewPoints = errors.New("fdm: central difference needs at least three grid points")

	// ErrNonPositiveStep indicates a zero, negative, or non-finite spacing or time step.
	ErrNonPositiveStep = errors.New("fdm: spacing must be positive and finite")

	// ErrLengthMismatch indicates input whose length differs from the operator dimension.
	ErrLengthMismatch = errors.New("fdm: input length must match operator dimension")

	// ErrStencilSize indicates a time stencil fed anything but five snapshots.
	ErrStencilSize = errors.New("fdm: time stencil needs exactly five snapshots")
)

// CentralDifference is the dense first-derivative operator on a uniform
// grid of n points with spacing h:
//
//	(Df)[i] = (f[i+1] − f[i−1]) / (2h)   for interior i,
//	(Df)[0] = (Df)[n−1] = 0              boundary rows are zero.
//
// Dropping the one-sided boundary estimates keeps every row summing to
// zero, so constants are annihilated exactly.
type CentralDifference struct {
	n int
	h float64
	m *mat.Dense
}

// NewCentralDifference builds the operator for n grid points with
// spacing h.
//
// Errors:
//   - ErrTooFewPoints    — n < 3.
//   - ErrNonPositiveStep — h ≤ 0, NaN, or ±Inf.
//
// Complexity: O(n²) memory for the dense matrix, O(n) fill.
func NewCentralDifference(n int, h float64) (*CentralDifference, error) {
	if n < 3 {
		return nil, ErrTooFewPoints
	}
	if !(h > 0) || math.IsInf(h, 0) {
		return nil, ErrNonPositiveStep
	}

	m := mat.NewDense(n, n, nil)
	scale := 0.5 / h
	for i := 1; i < n-1; i++ {
		m.Set(i, i-1, -scale)
		m.Set(i, i+1, scale)
	}

	return &CentralDifference{n: n, h: h, m: m}, nil
}

// Dim returns the operator dimension n.
func (d *CentralDifference) Dim() int {
	return d.n
}

// Spacing returns the grid spacing h the operator was built for.
func (d *CentralDifference) Spacing() float64 {
	return d.h
}

// Apply computes the derivative estimate Df for one profile of length Dim.
//
// Errors:
//   - ErrLengthMismatch — len(f) != Dim.
//
// Complexity: O(n²).
func (d *CentralDifference) Apply(f []float64) ([]float64, error) {
	if len(f) != d.n {
		return nil, ErrLengthMismatch
	}

	res := make([]float64, d.n)
	out := mat.NewVecDense(d.n, res)
	out.MulVec(d.m, mat.NewVecDense(d.n, append([]float64(nil), f...)))

	return res, nil
}

// Matrix returns a copy of the underlying dense operator, for callers that
// want to compose it with other matrices.
func (d *CentralDifference) Matrix() *mat.Dense {
	return mat.DenseCopyOf(d.m)
}
