// Package pipeline runs the full estimation chain: ensemble of stochastic
// realizations in, forward Kolmogorov coefficients out.
//
// 🚀 What is pipeline?
//
//	The composition layer over ensemble, histogram, and kolmogorov. One
//	Run call drives the simulation ensemble, pools every captured sample,
//	and estimates
//
//	  f(y)    — bulk density of the field
//	  D2(y)   — diffusion, from the joint density of (Y, |∇Y|²)
//	  D1(y)   — drift, from the boundary joints of (Y, ∂zY) at both walls
//	  balance — the ∂f/∂t vs transport diagnostic over a five-snapshot
//	            capture window
//
//	and wraps the profiles in a JSON-serializable Report tagged with a
//	fresh run id.
//
// ✨ Semantics:
//   - histogram ranges are data-driven by default, exactly as wide as the
//     pooled samples; explicit ranges pin the partition instead
//   - boundary joints are forced onto the bulk density's partition, the
//     alignment Drift requires
//   - non-finite profile values (empty-bin divisions) stay non-finite in
//     memory and export as JSON nulls, nothing is clamped
//   - the balance diagnostic is evaluated only when the capture window is
//     exactly the five-snapshot stencil width
//
// ⚙️ Usage:
//
//	cfg := pipeline.DefaultConfig()
//	rep, err := pipeline.Run(ctx, diffusion.Factory(diffusion.DefaultConfig()), cfg)
//	data, _ := json.Marshal(rep)
package pipeline
