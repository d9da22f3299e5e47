// Package kolmogorov turns empirical densities into the coefficients of a
// one-dimensional forward Kolmogorov (Fokker–Planck) equation.
//
// 🚀 What is kolmogorov?
//
//	The closure stage of the estimation pipeline. Given the histograms
//	built from an ensemble of stochastic realizations, it extracts the
//	terms of
//
//	    ∂f/∂t = D1(y)·f − ∂/∂y ( D2(y)·f )
//
//	through four operations:
//	  • Moment:      M(y)  = Σφ φ·f(y,φ)·Δφ — the density-weighted moment
//	  • Expectation: E[Φ|Y=y] = M(y)/f_Y(y), f_Y recovered from the joint
//	  • Diffusion:   D2(y) = −E[Φ|Y=y] with Φ the squared gradient
//	  • Drift:       D1(y) = (M_upper(y) − M_lower(y)) / f(y)
//
//	plus Balance, the self-consistency diagnostic comparing the stencil
//	time derivative of f against the transport terms.
//
// ✨ Semantics:
//   - the Y-marginal in Expectation is always derived from the same joint
//     histogram as the numerator, so the ratio is consistent by construction
//   - division by an empty bin's zero density propagates IEEE non-finite
//     values; nothing is clamped or masked here — consumers decide
//   - Drift refuses misaligned inputs: both boundary joints must carry
//     exactly the partition of the bulk density (ErrPartitionMismatch)
//
// ⚙️ Usage:
//
//	j, _ := histogram.NewJoint(y, gradSq, yr, pr, 64, 64)
//	d2 := kolmogorov.Diffusion(j)
//	d1, err := kolmogorov.Drift(f, lowerJoint, upperJoint)
//
// Profiles are plain (centers, values) pairs on the producing partition's
// bin centers, ready for the fdm operators.
package kolmogorov
