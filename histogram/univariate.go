package histogram

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Univariate is a normalized one-dimensional density estimate: Density[i]
// is the probability density over bin i of P, and Samples counts the
// retained (in-range) samples behind it. The normalization divides bin
// counts by Samples·Width, so Σ Density·Width = 1 exactly over the range.
type Univariate struct {
	P       *Partition
	Density []float64
	Samples int
}

// NewUnivariate estimates the density of samples over bins equal-width
// bins spanning r.
//
// Description:
//
//	Samples outside [r.Min, r.Max] — non-finite ones included — are
//	excluded, not clipped: they reduce the retained count and do not
//	contribute mass. Retained samples are sorted and counted with gonum's
//	stat.Histogram; a sample equal to r.Max lands in the last bin.
//
// Errors:
//   - ErrInvalidRange, ErrInvalidBins — bad geometry.
//   - ErrNoSamples — nothing survived filtering; normalizing by a zero
//     count is refused rather than producing a NaN surface.
//
// Complexity: O(n·log n) time, O(n) space.
func NewUnivariate(samples []float64, r Range, bins int) (*Univariate, error) {
	p, err := NewPartition(r, bins)
	if err != nil {
		return nil, err
	}

	retained := make([]float64, 0, len(samples))
	for _, v := range samples {
		if r.Contains(v) {
			retained = append(retained, v)
		}
	}
	if len(retained) == 0 {
		return nil, ErrNoSamples
	}
	sort.Float64s(retained)

	// stat.Histogram requires x strictly below the top divider; nudging it
	// one ulp up keeps r.Max itself countable in the last bin.
	dividers := p.Edges()
	dividers[bins] = math.Nextafter(dividers[bins], math.Inf(1))
	density := stat.Histogram(nil, dividers, retained, nil)

	norm := 1 / (float64(len(retained)) * p.width)
	for i := range density {
		density[i] *= norm
	}

	return &Univariate{P: p, Density: density, Samples: len(retained)}, nil
}
