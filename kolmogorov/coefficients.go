package kolmogorov

import "github.com/katalvlaran/fokker/histogram"

// Diffusion estimates the second-order Kolmogorov coefficient from the
// joint density of the state variable and its squared gradient magnitude:
//
//	D2(y) = −E[Φ|Y=y],   Φ = |∇Y|²
//
// The sign follows the forward Kolmogorov convention: the diffusive term
// enters the density equation opposite to the raw second-moment flux.
// Empty Y bins carry NaN, as in Expectation.
//
// Complexity: O(yBins·phiBins).
func Diffusion(j *histogram.Joint) Profile {
	p := Expectation(j)
	for i := range p.Values {
		p.Values[i] = -p.Values[i]
	}

	return p
}

// Drift estimates the first-order Kolmogorov coefficient from the two
// boundary joint densities of (boundary value, boundary gradient):
//
//	D1(y) = ( M_upper(y) − M_lower(y) ) / f(y)
//
// where M is the unnormalized boundary moment (see Moment) and f the bulk
// density of the state variable. The boundary moments are divided once by
// the bulk density, not normalized per boundary.
//
// Both joints must be built on exactly the partition of f — same range,
// same bin count — so all three factors live on identical bin centers.
// Division by an empty bulk bin propagates a non-finite value.
//
// Errors:
//   - ErrPartitionMismatch — either joint's Y partition differs from f's.
//
// Complexity: O(yBins·phiBins) per joint.
func Drift(f *histogram.Univariate, lower, upper *histogram.Joint) (Profile, error) {
	if !f.P.Equal(lower.Y) || !f.P.Equal(upper.Y) {
		return Profile{}, ErrPartitionMismatch
	}

	lo := Moment(lower)
	hi := Moment(upper)
	values := make([]float64, len(hi.Values))
	for i := range values {
		values[i] = (hi.Values[i] - lo.Values[i]) / f.Density[i]
	}

	return Profile{Centers: f.P.Centers(), Values: values}, nil
}
