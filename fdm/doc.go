// Package fdm provides the two finite-difference operators the estimation
// pipeline needs: a second-order central first-derivative matrix in state
// space and a fourth-order five-point first-derivative stencil in time.
//
// Both are deliberately strict. The matrix zeroes its boundary rows rather
// than inventing one-sided values, so derivative rows always sum to zero
// and constants map to the zero vector. The time stencil accepts exactly
// five equally spaced snapshots, the window an ensemble run captures.
package fdm
