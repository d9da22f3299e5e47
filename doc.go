// Package fokker estimates the drift and diffusion coefficients of a
// one-dimensional forward Kolmogorov (Fokker–Planck) equation directly
// from ensembles of stochastic simulations — no closed-form model needed.
//
// 🚀 What is fokker?
//
//	A numerical toolkit that turns raw simulation trajectories into the
//	coefficients of the density evolution equation
//
//	    ∂f/∂t = D1(y)·f − ∂/∂y ( D2(y)·f )
//
//	by combining:
//		• Boundary forcing: Ornstein–Uhlenbeck processes via Euler–Maruyama
//		• Ensembles: hundreds of independent realizations on a worker pool
//		• Resampling: non-uniform solver grids → uniform analysis grids
//		• Densities: univariate & joint histograms with exact normalization
//		• Conditioning: E[Φ | Y = y] from joint histograms
//		• Coefficients: D2 from the squared gradient, D1 from boundary data
//		• Diagnostics: 4th-order ∂f/∂t stencil vs the transport balance
//
// ✨ Why choose fokker?
//
//   - Deterministic – seeded, platform-stable realization streams
//   - Honest numerics – no clamping: zero-density division stays non-finite
//   - Composable – every stage is its own small package with a tight contract
//   - Solver-agnostic – bring any time stepper that satisfies ensemble.Solver
//
// The pipeline is organized package-per-stage:
//
//	ou/         — Ornstein–Uhlenbeck boundary steps & increment streams
//	ensemble/   — realization orchestration, capture windows, slot arena
//	resample/   — piecewise-linear regridding onto uniform grids
//	histogram/  — partitions, univariate & joint densities, flattening
//	kolmogorov/ — conditional expectations, D1/D2 profiles, balance check
//	fdm/        — central-difference operator & 5-point time stencil
//	snapshot/   — captured-field storage contract + in-memory recorder
//	diffusion/  — reference Chebyshev-collocation diffusion solver
//	pipeline/   — the whole run, end to end, as one call
//
// Quick sketch of a run:
//
//	OU noise ──► boundaries ──► solver steps ──► snapshots
//	                                 │
//	                   resample ◄────┘
//	                      │
//	        histograms ───┴──► E[Φ|Y] ──► D1, D2 ──► balance
//
// Dive into examples/ for end-to-end runs and cmd/fokker for the CLI.
//
//	go get github.com/katalvlaran/fokker
package fokker
