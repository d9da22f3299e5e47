// Package diffusion solves the one-dimensional heat equation with driven
// Dirichlet boundaries on a Chebyshev collocation grid.
//
// 🚀 What is diffusion?
//
//	The reference time stepper of the estimation pipeline: it advances
//
//	    ∂Y/∂t = ∂²Y/∂z²,   z ∈ [0, 1]
//
//	with the boundary values Y(0) and Y(1) prescribed from outside at
//	every step (an Ornstein–Uhlenbeck forcing in the intended use). Space
//	is discretized on Chebyshev–Gauss–Lobatto nodes with the spectral
//	differentiation matrix; time by Crank–Nicolson with boundary-row
//	replacement. The implicit matrix is LU-factorized once per solver,
//	so each step costs one matrix–vector product and one triangular solve.
//
// ✨ Properties:
//   - spectral accuracy in space: the differentiation matrix is exact on
//     polynomials up to the grid's degree
//   - the steady profile Y = z with fixed boundaries 0 and 1 is preserved
//   - capture records the field and its spatial derivative on the native
//     (non-uniform) grid; downstream resampling is the consumer's job
//
// ⚙️ Usage:
//
//	s, _ := diffusion.New(diffusion.DefaultConfig())
//	s.SetBoundary(ensemble.Lower, 0)
//	s.SetBoundary(ensemble.Upper, 1)
//	_ = s.Step()
//
// Solver satisfies ensemble.Solver; diffusion.Factory adapts a Config into
// the per-realization factory an ensemble run consumes.
package diffusion
