package kolmogorov

import "errors"

// ErrPartitionMismatch indicates inputs that must share one bin geometry
// but do not: boundary joints off the bulk density's partition, balance
// snapshots on different partitions, or profiles of the wrong length.
var ErrPartitionMismatch = errors.New("kolmogorov: inputs must share one partition")

// Profile is an estimated coefficient as a function of the state variable:
// Values[i] holds the coefficient at bin center Centers[i]. Profiles carry
// whatever the estimators produced — including non-finite values where a
// zero density was divided — and never mask them.
type Profile struct {
	Centers []float64
	Values  []float64
}

// Len returns the number of (center, value) pairs.
func (p Profile) Len() int { return len(p.Values) }

// aligned reports whether a profile fits a partition's centers: the value
// count matches, and the profile's own centers (when it carries any) are
// exactly the partition's.
func aligned(p Profile, centers []float64) bool {
	if len(p.Values) != len(centers) {
		return false
	}
	if len(p.Centers) == 0 {
		return true
	}
	if len(p.Centers) != len(centers) {
		return false
	}
	for i := range centers {
		if p.Centers[i] != centers[i] {
			return false
		}
	}

	return true
}
