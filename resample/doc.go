// Package resample moves trajectory snapshots from a solver's native,
// possibly non-uniform spatial grid onto a uniform analysis grid.
//
// 🚀 Why resample?
//
//	Spectral solvers cluster points near boundaries (Chebyshev grids),
//	while density estimation wants samples that weight space evenly.
//	Resampling each captured time slice onto an arithmetic grid removes
//	the clustering bias before any histogram sees the data.
//
// ✨ Semantics:
//   - uniform grid is half-open [Start, Stop): the stop value is excluded
//   - defaults derive from the native grid: Start/Stop span it, Spacing is
//     the smallest adjacent native spacing (edge spacing on Chebyshev grids)
//   - piecewise-linear interpolation, exact at coincident nodes
//   - constant extrapolation outside the native span (first/last value)
//   - every time slice is interpolated independently
//
// ⚙️ Usage:
//
//	grid, err := resample.Grid(native, resample.DefaultOptions())
//	if err != nil { ... }
//	rows, err := resample.Rows(native, snapshots, grid)
//
// Interpolation is gonum's interp.PiecewiseLinear.
//
// Complexity: O(len(grid)·log len(native)) per slice.
package resample
