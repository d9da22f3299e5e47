package diffusion

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrTooFewPoints indicates a collocation grid below three points.
	ErrTooFewPoints = errors.New("diffusion: at least three collocation points are required")

	// ErrNonPositiveStep indicates a zero, negative, or non-finite time step.
	ErrNonPositiveStep = errors.New("diffusion: dt must be positive and finite")

	// ErrBadCadence indicates a negative logging cadence.
	ErrBadCadence = errors.New("diffusion: cadence must be non-negative")

	// ErrNotCapturing indicates a snapshot request before capture was armed.
	ErrNotCapturing = errors.New("diffusion: capture was never started")
)

// Nodes returns the n Chebyshev–Gauss–Lobatto collocation points mapped to
// [0, 1], ascending:
//
//	z_j = (1 − cos(jπ/(n−1))) / 2,   j = 0 … n−1.
//
// The endpoints are exactly 0 and 1; interior points cluster toward both
// boundaries, which is what makes the spectral derivative stable there.
//
// Errors:
//   - ErrTooFewPoints — n < 3.
//
// Complexity: O(n).
func Nodes(n int) ([]float64, error) {
	if n < 3 {
		return nil, ErrTooFewPoints
	}

	order := float64(n - 1)
	z := make([]float64, n)
	for j := range z {
		z[j] = (1 - math.Cos(float64(j)*math.Pi/order)) / 2
	}

	return z, nil
}

// DiffMatrix returns the n×n spectral differentiation matrix on Nodes(n):
// row i of D·f approximates f′(z_i) and is exact whenever f is a
// polynomial of degree at most n−1.
//
// Description:
//
//	The matrix is Trefethen's Chebyshev differentiation matrix built on
//	x_j = cos(jπ/(n−1)) with the diagonal recovered from the negative-sum
//	trick (each row sums to zero, so constants differentiate to exactly
//	zero), scaled by the chain rule of the affine map z = (1−x)/2.
//
// Errors:
//   - ErrTooFewPoints — n < 3.
//
// Complexity: O(n²) time and space.
func DiffMatrix(n int) (*mat.Dense, error) {
	if n < 3 {
		return nil, ErrTooFewPoints
	}

	order := float64(n - 1)
	x := make([]float64, n)
	c := make([]float64, n)
	for j := range x {
		x[j] = math.Cos(float64(j) * math.Pi / order)
		c[j] = 1
		if j == 0 || j == n-1 {
			c[j] = 2
		}
		if j%2 == 1 {
			c[j] = -c[j]
		}
	}

	d := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		var sum float64
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			v := -2 * (c[i] / c[j]) / (x[i] - x[j])
			d.Set(i, j, v)
			sum += v
		}
		d.Set(i, i, -sum)
	}

	return d, nil
}
