package kolmogorov

import "github.com/katalvlaran/fokker/histogram"

// Moment computes the density-weighted conditional moment of a joint
// histogram:
//
//	M(y) = Σφ φ·f(y,φ)·Δφ = E[Φ|Y=y]·f_Y(y)
//
// evaluated at every Y bin center. This is the unnormalized building block
// shared by Expectation and Drift; it is finite everywhere, zero over
// empty Y bins.
//
// Complexity: O(yBins·phiBins).
func Moment(j *histogram.Joint) Profile {
	phi := j.Phi.Centers()
	dphi := j.Phi.Width()

	values := make([]float64, j.Y.Bins())
	for iy := range values {
		sum := 0.0
		for ip, c := range phi {
			sum += c * j.At(iy, ip)
		}
		values[iy] = sum * dphi
	}

	return Profile{Centers: j.Y.Centers(), Values: values}
}

// Expectation computes the conditional expectation profile
//
//	E[Φ|Y=y] = M(y) / f_Y(y)
//
// with the Y-marginal f_Y recovered from the same joint surface as the
// moment, never estimated independently, so numerator and denominator
// always describe the same samples.
//
// Over empty Y bins both terms are zero and the profile carries NaN; the
// value is propagated, not masked, per the pipeline's zero-density policy.
//
// Complexity: O(yBins·phiBins).
func Expectation(j *histogram.Joint) Profile {
	p := Moment(j)
	marginal := j.MarginalY()
	for i := range p.Values {
		p.Values[i] /= marginal.Density[i]
	}

	return p
}
