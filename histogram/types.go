package histogram

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
)

var (
	// ErrInvalidRange indicates a range whose bounds are non-finite or not increasing.
	ErrInvalidRange = errors.New("histogram: range bounds must be finite with Min < Max")

	// ErrInvalidBins indicates a non-positive bin count.
	ErrInvalidBins = errors.New("histogram: bin count must be at least one")

	// ErrNoSamples indicates that no sample survived range filtering.
	ErrNoSamples = errors.New("histogram: no samples inside the range")

	// ErrLengthMismatch indicates paired sample slices of different lengths.
	ErrLengthMismatch = errors.New("histogram: paired samples must have equal length")
)

// Range is a closed interval [Min, Max] of admissible sample values.
type Range struct {
	Min float64
	Max float64
}

// Validate reports ErrInvalidRange unless both bounds are finite and
// Min < Max.
func (r Range) Validate() error {
	if math.IsNaN(r.Min) || math.IsInf(r.Min, 0) ||
		math.IsNaN(r.Max) || math.IsInf(r.Max, 0) ||
		!(r.Min < r.Max) {
		return ErrInvalidRange
	}

	return nil
}

// Contains reports whether v lies in [Min, Max]. NaN is never contained.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// RangeOf derives a data-driven range from sample extremes. NaN samples
// are skipped by the underlying scans; whether the result is usable
// (Min < Max, finite) is decided by NewPartition, the single validation
// point for geometry.
//
// Errors:
//   - ErrNoSamples — empty input.
func RangeOf(samples []float64) (Range, error) {
	if len(samples) == 0 {
		return Range{}, ErrNoSamples
	}

	return Range{Min: floats.Min(samples), Max: floats.Max(samples)}, nil
}

// Partition is a fixed bin geometry over a range: bins equal-width bins,
// bins+1 strictly increasing edges, and midpoint centers. Centers, not
// edges, are the coordinates all downstream estimators report against.
type Partition struct {
	rng     Range
	bins    int
	width   float64
	edges   []float64
	centers []float64
}

// NewPartition builds the geometry for bins equal-width bins over r.
//
// Errors:
//   - ErrInvalidRange — r fails validation.
//   - ErrInvalidBins  — bins < 1.
//
// Complexity: O(bins).
func NewPartition(r Range, bins int) (*Partition, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if bins < 1 {
		return nil, ErrInvalidBins
	}

	edges := floats.Span(make([]float64, bins+1), r.Min, r.Max)
	centers := make([]float64, bins)
	for i := range centers {
		centers[i] = 0.5 * (edges[i] + edges[i+1])
	}

	return &Partition{
		rng:     r,
		bins:    bins,
		width:   (r.Max - r.Min) / float64(bins),
		edges:   edges,
		centers: centers,
	}, nil
}

// Bins returns the bin count.
func (p *Partition) Bins() int { return p.bins }

// Width returns the uniform bin width.
func (p *Partition) Width() float64 { return p.width }

// Range returns the partitioned interval.
func (p *Partition) Range() Range { return p.rng }

// Edges returns a copy of the bins+1 bin edges.
func (p *Partition) Edges() []float64 {
	return append([]float64(nil), p.edges...)
}

// Centers returns a copy of the bin midpoints.
func (p *Partition) Centers() []float64 {
	return append([]float64(nil), p.centers...)
}

// Equal reports whether two partitions describe the same geometry: same
// bounds and the same bin count.
func (p *Partition) Equal(q *Partition) bool {
	if p == nil || q == nil {
		return p == q
	}

	return p.rng == q.rng && p.bins == q.bins
}

// Index returns the bin holding v, with the upper range bound counted in
// the last bin. The second result is false when v falls outside the range
// (non-finite values included).
func (p *Partition) Index(v float64) (int, bool) {
	if !p.rng.Contains(v) {
		return 0, false
	}

	i := int((v - p.rng.Min) / p.width)
	if i >= p.bins {
		i = p.bins - 1
	}

	return i, true
}
