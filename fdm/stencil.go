package fdm

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// stencilWidth is the snapshot count the time stencil is defined for.
const stencilWidth = 5

// TimeDerivative evaluates the fourth-order five-point first-derivative
// stencil at the middle snapshot.
//
// Description:
//
//	Snapshots are ordered oldest to newest, {n−2, n−1, n, n+1, n+2}, all on
//	one grid and separated by the uniform step dt. The derivative at n is
//
//	    [ −1/12·f(n+2) + 2/3·f(n+1) − 2/3·f(n−1) + 1/12·f(n−2) ] / dt
//
//	evaluated pointwise. The middle snapshot does not enter; it locates
//	where the estimate holds. Exact for polynomials in t up to degree 4.
//	Terms are grouped as the paired differences f(n+1)−f(n−1) and
//	f(n−2)−f(n+2), so constant-in-time input vanishes exactly.
//
// Errors:
//   - ErrStencilSize     — len(snapshots) != 5.
//   - ErrNonPositiveStep — dt ≤ 0, NaN, or ±Inf.
//   - ErrLengthMismatch  — snapshots of unequal length.
//
// Complexity: O(len(snapshot)).
func TimeDerivative(snapshots [][]float64, dt float64) ([]float64, error) {
	if len(snapshots) != stencilWidth {
		return nil, ErrStencilSize
	}
	if !(dt > 0) || math.IsInf(dt, 0) {
		return nil, ErrNonPositiveStep
	}
	n := len(snapshots[0])
	for _, s := range snapshots[1:] {
		if len(s) != n {
			return nil, ErrLengthMismatch
		}
	}

	out := make([]float64, n)
	floats.SubTo(out, snapshots[3], snapshots[1])
	floats.Scale(2.0/3.0, out)

	wide := make([]float64, n)
	floats.SubTo(wide, snapshots[0], snapshots[4])
	floats.AddScaled(out, 1.0/12.0, wide)
	floats.Scale(1/dt, out)

	return out, nil
}
