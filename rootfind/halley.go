package rootfind

import (
	"math"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvgamma/numerr"
)

// ErrNoRootFound is returned when Halley's method does not converge.
var ErrNoRootFound = numerr.Tag(errors.New("rootfind: no root found"), numerr.ErrNoConvergence)

// Function returns f(x), f'(x) and f''(x).
type Function func(x float64) (f, df, d2f float64)

// Result is a converged root.
type Result struct {
	Root       float64
	Iterations int
}

// Halley polishes x0 into a root of fn.
func Halley(fn Function, x0 float64, opts ...Option) (Result, error) {
	o := gatherOptions(opts)
	if math.IsNaN(x0) || x0 < o.LowerBound || x0 > o.UpperBound {
		return Result{}, errors.Wrapf(ErrNoRootFound, "Halley(x0=%g): start outside [%g, %g]", x0, o.LowerBound, o.UpperBound)
	}

	x, prev := x0, math.Inf(1)
	for i := 1; i <= o.MaxIterations; i++ {
		f, df, d2f := fn(x)
		if math.IsNaN(f) {
			return Result{}, errors.Wrapf(ErrNoRootFound, "Halley(x0=%g): f(%g) is NaN", x0, x)
		}
		if f == 0 {
			return Result{Root: x, Iterations: i}, nil
		}

		next := x - step(f, df, d2f)
		switch {
		case math.IsNaN(next):
			return Result{}, errors.Wrapf(ErrNoRootFound, "Halley(x0=%g): step from %g is NaN", x0, x)
		case next <= o.LowerBound:
			next = toward(x, o.LowerBound)
		case next >= o.UpperBound:
			next = toward(x, o.UpperBound)
		}
		if math.IsInf(next, 0) {
			return Result{}, errors.Wrapf(ErrNoRootFound, "Halley(x0=%g): step from %g left every finite bound", x0, x)
		}

		delta := math.Abs(next - x)
		if delta <= o.Tolerance*math.Abs(next) {
			return Result{Root: next, Iterations: i}, nil
		}
		if delta >= prev/2 && delta <= o.StallFloor*math.Abs(next) {
			return Result{Root: next, Iterations: i}, nil
		}
		prev, x = delta, next
	}

	return Result{}, errors.Wrapf(ErrNoRootFound, "Halley(x0=%g): %d iterations, last x=%g", x0, o.MaxIterations, x)
}

// step returns the Halley displacement, or the Newton one when the correction is unusable.
func step(f, df, d2f float64) float64 {
	if math.IsInf(df, 0) {
		return 0
	}
	r := f / df
	corr := r * (d2f / df) / 2
	if math.IsNaN(corr) || math.IsInf(corr, 0) || corr >= 1 {
		return r
	}

	return r / (1 - corr)
}

// toward moves halfway from x to the bound, or onto it when x already sits there.
func toward(x, bound float64) float64 {
	if math.IsInf(bound, 0) || x == bound {
		return bound
	}

	return x + (bound-x)/2
}
