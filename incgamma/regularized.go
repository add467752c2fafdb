// SPDX-License-Identifier: MIT

package incgamma

import (
	"math"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvgamma/gamma"
	"github.com/katalvlaran/lvgamma/numerr"
	"github.com/katalvlaran/lvgamma/series"
)

// Evaluator computes incomplete Gamma functions with one gamma.Evaluator.
type Evaluator struct {
	gamma *gamma.Evaluator
	opts  Options
}

// New binds g to an Evaluator configured by opts.
func New(g *gamma.Evaluator, opts ...Option) (*Evaluator, error) {
	if g == nil {
		return nil, ErrNilGamma
	}
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return &Evaluator{gamma: g, opts: o}, nil
}

// Options returns the resolved options.
func (e *Evaluator) Options() Options { return e.opts }

// Gamma returns the underlying gamma.Evaluator.
func (e *Evaluator) Gamma() *gamma.Evaluator { return e.gamma }

// RegularizedQ returns Q(s, x) for s >= 0, x >= 0.
//   - s = 0: 0 (this takes precedence over x = 0)
//   - x = 0: 1
//   - x > UnderflowCutoff and s < x/2: 0
//
// Errors: numerr.ErrUndefined for NaN, numerr.ErrDomain for negative or infinite s
// and negative x, numerr.ErrNoConvergence when the series or fraction runs out of budget.
func (e *Evaluator) RegularizedQ(s, x float64) (float64, error) {
	_, q, err := e.regularized("RegularizedQ", s, x)

	return q, err
}

// RegularizedP returns P(s, x) = 1 − Q(s, x) under the same rules as RegularizedQ.
func (e *Evaluator) RegularizedP(s, x float64) (float64, error) {
	p, _, err := e.regularized("RegularizedP", s, x)

	return p, err
}

// regularized returns (P, Q), computing one side directly and the other as its complement.
func (e *Evaluator) regularized(op string, s, x float64) (p, q float64, err error) {
	if err = checkShapeAndArgument(op, s, x); err != nil {
		return 0, 0, err
	}
	switch {
	case s == 0:
		return 1, 0, nil
	case x == 0:
		return 0, 1, nil
	case x > e.opts.UnderflowCutoff && s < x/2:
		return 1, 0, nil
	}

	lg, err := e.gamma.LogGamma(s)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "%s(s=%g, x=%g)", op, s, x)
	}
	prefix := math.Exp(s*math.Log(x) - x - lg)

	if x < s+1 {
		sum, err := e.lowerSeries(s, x)
		if err != nil {
			return 0, 0, errors.Wrapf(err, "%s(s=%g, x=%g)", op, s, x)
		}
		p = prefix * sum

		return p, 1 - p, nil
	}

	frac, err := e.upperFraction(s, x)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "%s(s=%g, x=%g)", op, s, x)
	}
	q = prefix * frac

	return 1 - q, q, nil
}

// lowerSeries sums 1/s + x/(s(s+1)) + x²/(s(s+1)(s+2)) + ...
func (e *Evaluator) lowerSeries(s, x float64) (float64, error) {
	next := func(k int, prev float64) float64 {
		return prev * x / (s + float64(k))
	}

	return series.Sum(1/s, next, e.seriesOptions()...)
}

// upperFraction evaluates 1/(x+1−s− 1·(1−s)/(x+3−s− 2·(2−s)/(x+5−s− ...))).
func (e *Evaluator) upperFraction(s, x float64) (float64, error) {
	cf := series.ContinuedFraction{
		A: func(n int, _ float64) float64 {
			if n == 1 {
				return 1
			}
			m := float64(n - 1)

			return m * (s - m)
		},
		B: func(n int, x float64) float64 {
			if n == 0 {
				return 0
			}

			return float64(2*n-1) - s + x
		},
	}

	return cf.Evaluate(x, e.seriesOptions()...)
}

func (e *Evaluator) seriesOptions() []series.Option {
	return []series.Option{
		series.WithTolerance(e.opts.SeriesTolerance),
		series.WithMaxIterations(e.opts.MaxIterations),
	}
}

func checkShapeAndArgument(op string, s, x float64) error {
	switch {
	case math.IsNaN(s) || math.IsNaN(x):
		return numerr.Undefinedf("%s(s=%g, x=%g)", op, s, x)
	case s < 0 || math.IsInf(s, 1):
		return numerr.Domainf("%s(s=%g, x=%g): requires finite s >= 0", op, s, x)
	case x < 0:
		return numerr.Domainf("%s(s=%g, x=%g): requires x >= 0", op, s, x)
	}

	return nil
}
