package series

import (
	"math"

	"github.com/cockroachdb/errors"
)

// Coefficient returns the n-th partial numerator or denominator at x.
type Coefficient func(n int, x float64) float64

// ContinuedFraction is b(0) + a(1)/(b(1) + a(2)/(b(2) + ...)).
// A is consulted for n >= 1, B for n >= 0.
type ContinuedFraction struct {
	A Coefficient
	B Coefficient
}

// Evaluate computes the fraction at x with the modified Lentz algorithm.
// Zeros in the recurrence are replaced by a tiny constant; iteration stops when the
// multiplicative update differs from 1 by less than the tolerance.
func (cf ContinuedFraction) Evaluate(x float64, opts ...Option) (float64, error) {
	o := gatherOptions(opts)

	h := cf.B(0, x)
	if math.Abs(h) < tiny {
		h = tiny
	}
	c, d := h, 0.0

	for n := 1; n <= o.MaxIterations; n++ {
		a, b := cf.A(n, x), cf.B(n, x)

		d = b + a*d
		if math.Abs(d) < tiny {
			d = tiny
		}
		c = b + a/c
		if math.Abs(c) < tiny {
			c = tiny
		}
		d = 1 / d

		delta := c * d
		h *= delta
		if math.IsNaN(h) || math.IsInf(h, 0) {
			return h, errors.Wrapf(ErrDiverged, "ContinuedFraction.Evaluate(x=%g): step %d", x, n)
		}
		if math.Abs(delta-1) < o.Tolerance {
			return h, nil
		}
	}

	return h, errors.Wrapf(ErrNoConvergence, "ContinuedFraction.Evaluate(x=%g): %d steps", x, o.MaxIterations)
}
