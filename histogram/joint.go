package histogram

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Joint is a normalized two-dimensional density estimate over paired
// samples (y, φ). The surface has Y.Bins() × Phi.Bins() cells and
// integrates to one: ΣΣ density·Y.Width()·Phi.Width() = 1 over retained
// pairs.
type Joint struct {
	Y       *Partition
	Phi     *Partition
	density *mat.Dense
	Samples int
}

// NewJoint estimates the joint density of the pairs (y[k], phi[k]).
//
// Description:
//
//	A pair is retained only when both coordinates fall inside their
//	ranges; a pair with either coordinate out of range (or non-finite)
//	contributes neither mass nor normalization. Upper range bounds count
//	into the last bin on both axes, mirroring the univariate estimator.
//
// Errors:
//   - ErrLengthMismatch — len(y) != len(phi).
//   - ErrInvalidRange, ErrInvalidBins — bad geometry on either axis.
//   - ErrNoSamples — no pair survived filtering.
//
// Complexity: O(n) time, O(yBins·phiBins) space.
func NewJoint(y, phi []float64, yr, phir Range, yBins, phiBins int) (*Joint, error) {
	if len(y) != len(phi) {
		return nil, ErrLengthMismatch
	}
	yp, err := NewPartition(yr, yBins)
	if err != nil {
		return nil, err
	}
	pp, err := NewPartition(phir, phiBins)
	if err != nil {
		return nil, err
	}

	counts := mat.NewDense(yBins, phiBins, nil)
	retained := 0
	for k := range y {
		iy, ok := yp.Index(y[k])
		if !ok {
			continue
		}
		ip, ok := pp.Index(phi[k])
		if !ok {
			continue
		}
		counts.Set(iy, ip, counts.At(iy, ip)+1)
		retained++
	}
	if retained == 0 {
		return nil, ErrNoSamples
	}
	counts.Scale(1/(float64(retained)*yp.width*pp.width), counts)

	return &Joint{Y: yp, Phi: pp, density: counts, Samples: retained}, nil
}

// At returns the density over cell (iy, iphi). Indexes follow the
// partitions; out-of-range indexes panic as mat.Dense does.
func (j *Joint) At(iy, iphi int) float64 {
	return j.density.At(iy, iphi)
}

// Dense returns a copy of the density surface.
func (j *Joint) Dense() *mat.Dense {
	return mat.DenseCopyOf(j.density)
}

// MarginalY integrates φ out: f(y) = Σφ f(y,φ)·Δφ. The result is a valid
// univariate density on the Y partition, consistent with the joint by
// construction.
func (j *Joint) MarginalY() *Univariate {
	density := make([]float64, j.Y.bins)
	for iy := range density {
		density[iy] = floats.Sum(j.density.RawRowView(iy)) * j.Phi.width
	}

	return &Univariate{P: j.Y, Density: density, Samples: j.Samples}
}

// MarginalPhi integrates y out: f(φ) = Σy f(y,φ)·Δy.
func (j *Joint) MarginalPhi() *Univariate {
	density := make([]float64, j.Phi.bins)
	col := make([]float64, j.Y.bins)
	for ip := range density {
		mat.Col(col, ip, j.density)
		density[ip] = floats.Sum(col) * j.Y.width
	}

	return &Univariate{P: j.Phi, Density: density, Samples: j.Samples}
}
