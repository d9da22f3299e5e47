// Package histogram estimates probability densities from flattened
// ensemble samples using fixed-width bins.
//
// 🚀 What is histogram?
//
//	The density stage of the estimation pipeline. Every downstream
//	quantity — conditional expectations, drift and diffusion profiles,
//	the transport balance — is a function of densities built here:
//	  • Partition: shared bin geometry (edges, midpoint centers, width)
//	  • Univariate: f(y) with Σ f·Δy = 1 over retained samples
//	  • Joint: f(y,φ) with ΣΣ f·Δy·Δφ = 1, marginals included
//	  • Flatten: the one sanctioned way containers become sample lists
//
// ✨ Semantics:
//   - samples outside the range (including non-finite ones) are excluded,
//     never clipped; normalization divides by the retained count only
//   - a value equal to the upper range bound counts in the last bin
//   - bin midpoints, not edges, are the coordinates handed downstream
//   - empty bins carry density exactly 0; dividing by them later is the
//     caller's concern and stays non-finite by policy
//
// ⚙️ Usage:
//
//	f, err := histogram.NewUnivariate(samples, histogram.Range{Min: 0, Max: 1}, 64)
//	if err != nil { ... }
//	j, err := histogram.NewJoint(y, phi, yRange, phiRange, 64, 64)
//
// Counting uses gonum's stat.Histogram over floats.Span edges; the joint
// surface lives in a gonum mat.Dense.
//
// Complexity: O(n·log n) per univariate (sorting), O(n) per joint.
package histogram
