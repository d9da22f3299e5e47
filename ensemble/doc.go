// Package ensemble orchestrates many independent realizations of a
// boundary-driven stochastic simulation and aggregates their trajectories
// into the containers the density estimators consume.
//
// 🚀 What is ensemble?
//
//	The data-generation stage of the estimation pipeline. One Run:
//	  • derives an independent, reproducible noise stream per realization
//	  • drives each realization's solver step by step, feeding both
//	    boundaries with Ornstein–Uhlenbeck updates of their own values
//	  • captures the final K snapshots of the field and its gradient
//	  • resamples every captured trajectory onto one uniform grid
//	  • lands everything in a fixed arena of per-realization slots
//
// ✨ Guarantees:
//   - determinism: realization p of a run seeded s always sees the noise
//     of stream DeriveSeed(s, p), regardless of worker count or timing
//   - isolation: realizations share nothing while running — private
//     solver, private noise, private slot; the slot write is the only
//     serialization point and every index is written at most once
//   - ensemble shape: all successful realizations must agree exactly on
//     the captured time axis and the uniform grid; disagreement is a
//     fatal configuration error, not a per-path failure
//   - failure policy: a failed realization records its error in its slot
//     and is excluded from every sample flatten; the run itself fails
//     only on invalid options, context cancellation, a shape mismatch,
//     or zero successful realizations
//
// ⚙️ Usage:
//
//	opts := ensemble.DefaultOptions()
//	opts.Paths = 200
//	res, err := ensemble.Run(ctx, factory, opts)
//	if err != nil { ... }
//	y := res.FieldSamples()          // flattened state samples
//	phi := res.GradientSqSamples()   // flattened squared-gradient samples
//
// Any time stepper satisfying the Solver contract plugs in through a
// Factory; the reference implementation lives in the diffusion package.
package ensemble
