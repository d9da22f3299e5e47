package ou

import (
	"errors"
	"math"
)

var (
	// ErrNonPositiveStep indicates a zero, negative, or non-finite time step.
	ErrNonPositiveStep = errors.New("ou: time step must be positive and finite")

	// ErrBadParams indicates non-finite params or a negative volatility.
	ErrBadParams = errors.New("ou: params must be finite with non-negative volatility")
)

// Params describes one Ornstein–Uhlenbeck process.
//
// Fields:
//   - Rate       — reversion rate toward Mean (a in dy = a(μ−y)dt + σ dW).
//   - Volatility — noise amplitude σ; must be non-negative.
//   - Mean       — long-run mean μ the process reverts to.
type Params struct {
	Rate       float64
	Volatility float64
	Mean       float64
}

// Validate reports ErrBadParams when any field is non-finite or
// Volatility is negative.
func (p Params) Validate() error {
	if math.IsNaN(p.Rate) || math.IsInf(p.Rate, 0) ||
		math.IsNaN(p.Mean) || math.IsInf(p.Mean, 0) ||
		math.IsNaN(p.Volatility) || math.IsInf(p.Volatility, 0) ||
		p.Volatility < 0 {
		return ErrBadParams
	}

	return nil
}

// Step advances one Ornstein–Uhlenbeck value by a single Euler–Maruyama step.
//
// Description:
//
//	Given the current value y, a pre-drawn standard-normal increment w,
//	a time step dt and process params p, Step returns
//
//	    y + p.Rate·(p.Mean − y)·dt + p.Volatility·√dt·w
//
//	The increment is expected to be an unscaled N(0,1) draw; the √dt
//	Brownian scaling is applied here and nowhere else.
//
// Errors:
//   - ErrNonPositiveStep — dt ≤ 0, NaN, or ±Inf.
//   - ErrBadParams       — invalid p (see Params.Validate).
//
// Complexity: O(1).
func Step(current, increment, dt float64, p Params) (float64, error) {
	if !(dt > 0) || math.IsInf(dt, 0) {
		return 0, ErrNonPositiveStep
	}
	if err := p.Validate(); err != nil {
		return 0, err
	}

	return current + p.Rate*(p.Mean-current)*dt + p.Volatility*math.Sqrt(dt)*increment, nil
}
