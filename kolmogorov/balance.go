package kolmogorov

import (
	"github.com/katalvlaran/fokker/fdm"
	"github.com/katalvlaran/fokker/histogram"
)

// balanceWindow is the number of density snapshots the diagnostic needs,
// fixed by the five-point time stencil.
const balanceWindow = 5

// Balance is the self-consistency diagnostic of an estimated coefficient
// pair: if the ensemble truly obeys the forward Kolmogorov equation, the
// time derivative of its density should match the transport terms built
// from the estimated coefficients,
//
//	∂f/∂t  ≈  D1(y)·f − ∂/∂y ( D2(y)·f )
//
// evaluated at the middle snapshot of a five-snapshot capture window.
// It is a diagnostic, not an enforced invariant: the two sides are
// reported separately and the residual is whatever it is.
type Balance struct {
	// Centers are the bin centers both sides are sampled on.
	Centers []float64

	// DfDt is the stencil estimate of ∂f/∂t at the middle snapshot.
	DfDt []float64

	// Transport is D1·f − d/dy(D2·f) at the middle snapshot. Non-finite
	// coefficient values (empty-bin divisions) poison their bin and are
	// propagated untouched.
	Transport []float64
}

// NewBalance evaluates the diagnostic.
//
// Description:
//
//	snapshots are five densities of the same field at five consecutive
//	captured times, oldest first, all on one shared partition; dt is the
//	uniform capture interval. drift and diffusion are the estimated
//	coefficient profiles on that same partition. The middle snapshot is
//	the reference density f for the transport side.
//
// Errors:
//   - fdm.ErrStencilSize     — snapshot count differs from five.
//   - ErrPartitionMismatch   — a nil snapshot, snapshots on different
//     partitions, or a profile off the shared partition.
//   - fdm.ErrTooFewPoints    — fewer than three bins, too few for the
//     spatial derivative.
//   - fdm.ErrNonPositiveStep — dt ≤ 0, NaN, or ±Inf.
//
// Complexity: O(bins²) for the spatial operator.
func NewBalance(snapshots []*histogram.Univariate, drift, diffusion Profile, dt float64) (*Balance, error) {
	if len(snapshots) != balanceWindow {
		return nil, fdm.ErrStencilSize
	}
	for _, s := range snapshots {
		if s == nil || !s.P.Equal(snapshots[0].P) {
			return nil, ErrPartitionMismatch
		}
	}
	p := snapshots[0].P
	centers := p.Centers()
	if !aligned(drift, centers) || !aligned(diffusion, centers) {
		return nil, ErrPartitionMismatch
	}

	rows := make([][]float64, balanceWindow)
	for i, s := range snapshots {
		rows[i] = s.Density
	}
	dfdt, err := fdm.TimeDerivative(rows, dt)
	if err != nil {
		return nil, err
	}

	d, err := fdm.NewCentralDifference(p.Bins(), p.Width())
	if err != nil {
		return nil, err
	}
	f := snapshots[balanceWindow/2].Density
	flux := make([]float64, len(f))
	for i := range flux {
		flux[i] = diffusion.Values[i] * f[i]
	}
	dflux, err := d.Apply(flux)
	if err != nil {
		return nil, err
	}

	transport := make([]float64, len(f))
	for i := range transport {
		transport[i] = drift.Values[i]*f[i] - dflux[i]
	}

	return &Balance{Centers: centers, DfDt: dfdt, Transport: transport}, nil
}

// Residual returns DfDt − Transport per bin center. Bins poisoned by
// zero-density divisions stay non-finite.
func (b *Balance) Residual() []float64 {
	out := make([]float64, len(b.DfDt))
	for i := range out {
		out[i] = b.DfDt[i] - b.Transport[i]
	}

	return out
}
