// Package ou advances Ornstein–Uhlenbeck processes with the
// Euler–Maruyama scheme and generates the deterministic standard-normal
// increment streams that drive them.
//
// 🚀 What is ou?
//
//	The stochastic forcing stage of an ensemble run. Each realization owns
//	one increment path (two independent columns, one per boundary) drawn
//	from a seed derived for that realization alone, and pushes a boundary
//	value forward one step at a time:
//
//	    y' = y + Rate·(Mean − y)·dt + Volatility·√dt·w
//
//	where w is a pre-drawn standard-normal increment. The √dt scaling
//	happens inside Step, so increment paths stay plain N(0,1) draws.
//
// ✨ Key properties:
//   - stateless – Step is purely a function of its inputs
//   - deterministic – same (seed, stream) ⇒ identical path on any platform
//   - degenerate-safe – Rate=0 and Volatility=0 return the value unchanged
//
// ⚙️ Usage:
//
//	p := ou.Params{Rate: 10, Volatility: 0.25, Mean: 1}
//	path, err := ou.Increments(1000, ou.DeriveSeed(42, 7))
//	if err != nil { ... }
//	y := 0.0
//	for n := range path {
//	    y, err = ou.Step(y, path[n][1], 0.01, p)
//	    ...
//	}
//
// Complexity: O(1) per Step, O(steps) per Increments path.
package ou
