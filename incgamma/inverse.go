// SPDX-License-Identifier: MIT

package incgamma

import (
	"math"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/mathext"

	"github.com/katalvlaran/lvgamma/numerr"
	"github.com/katalvlaran/lvgamma/rootfind"
)

// Coefficients of Temme's expansion η = η0 + ε1(η0)/s + ε2(η0)/s² + ε3(η0)/s³
// and of λ(η), the series solution of λ − 1 − ln λ = η²/2. Lowest order first.
var (
	epsilon1 = []float64{
		-1.0 / 3, 1.0 / 36, 1.0 / 1620, -7.0 / 6480, 5.0 / 18144, -11.0 / 382725, -101.0 / 16329600,
	}
	epsilon2 = []float64{
		-7.0 / 405, -7.0 / 2592, 533.0 / 204120, -1579.0 / 2099520, 109.0 / 1749600, 10217.0 / 251942400,
	}
	epsilon3 = []float64{
		449.0 / 102060, -63149.0 / 20995200, 29233.0 / 36741600, 346793.0 / 5290790400, -18442139.0 / 130947062400,
	}
	lambdaSeries = []float64{
		1, 1, 1.0 / 3, 1.0 / 36, -1.0 / 270, 1.0 / 4320, 1.0 / 17010, -139.0 / 5443200, 1.0 / 204120,
	}
)

// smallXSeedLimit: the small-x seed competes with Temme's only when it lies below this fraction of s.
const smallXSeedLimit = 0.2

// RegularizedPInverse returns x >= 0 with P(s, x) = u, for s > 0 and 0 <= u <= 1.
//   - u = 0: 0
//   - u = 1: +Inf
//   - a root below the smallest subnormal: 0
//
// Errors: numerr.ErrUndefined for NaN, numerr.ErrDomain for s <= 0, infinite s or
// u outside [0, 1], numerr.ErrNoConvergence when Halley's method does not settle.
func (e *Evaluator) RegularizedPInverse(s, u float64) (float64, error) {
	switch {
	case math.IsNaN(s) || math.IsNaN(u):
		return 0, numerr.Undefinedf("RegularizedPInverse(s=%g, u=%g)", s, u)
	case !(s > 0) || math.IsInf(s, 1):
		return 0, numerr.Domainf("RegularizedPInverse(s=%g, u=%g): requires finite s > 0", s, u)
	case u < 0 || u > 1:
		return 0, numerr.Domainf("RegularizedPInverse(s=%g, u=%g): requires 0 <= u <= 1", s, u)
	case u == 0:
		return 0, nil
	case u == 1:
		return math.Inf(1), nil
	}

	var x0 float64
	var err error
	if s <= 1 {
		x0, err = e.smallShapeGuess(s, u)
	} else {
		x0, err = e.largeShapeGuess(s, u)
	}
	if err != nil {
		return 0, errors.Wrapf(err, "RegularizedPInverse(s=%g, u=%g)", s, u)
	}
	if x0 == 0 {
		return 0, nil
	}

	x, err := e.polish(s, u, x0)
	if err != nil {
		return 0, errors.Wrapf(err, "RegularizedPInverse(s=%g, u=%g)", s, u)
	}

	return x, nil
}

// smallShapeGuess inverts P(s, x) ≈ x^s/Γ(s+1) and refines the result with a
// fourth-order reversion of the Taylor series of P around x0.
func (e *Evaluator) smallShapeGuess(s, u float64) (float64, error) {
	g1, err := e.gamma.Gamma(s + 1)
	if err != nil {
		return 0, err
	}
	x0 := math.Pow(u*g1, 1/s)
	if x0 == 0 {
		return 0, nil
	}

	p, err := e.RegularizedP(s, x0)
	if err != nil {
		return 0, err
	}
	g, err := e.gamma.Gamma(s)
	if err != nil {
		return 0, err
	}

	// f1..f4 are the first four derivatives of P at x0.
	a := s - 1
	l := a/x0 - 1
	q := a / (x0 * x0)
	f1 := math.Exp(a*math.Log(x0)-x0) / g
	f2 := f1 * l
	f3 := f1 * (l*l - q)
	f4 := f1 * (l*l*l - 3*l*q + 2*a/(x0*x0*x0))

	c1 := 1 / f1
	c2 := -f2 / (2 * f1 * f1 * f1)
	c3 := (3*f2*f2 - f1*f3) / (6 * math.Pow(f1, 5))
	c4 := (-15*f2*f2*f2 + 10*f1*f2*f3 - f1*f1*f4) / (24 * math.Pow(f1, 7))

	d := u - p
	x := x0 + d*(c1+d*(c2+d*(c3+d*c4)))
	if !(x > 0) || math.IsInf(x, 1) {
		return x0, nil
	}

	return x, nil
}

// largeShapeGuess uses Temme's asymptotic inversion, falling back to the
// small-x seed deep in the lower tail where that one is closer.
func (e *Evaluator) largeShapeGuess(s, u float64) (float64, error) {
	eta0 := mathext.NormalQuantile(u) / math.Sqrt(s)
	eta := eta0 + polynomial(epsilon1, eta0)/s + polynomial(epsilon2, eta0)/(s*s) + polynomial(epsilon3, eta0)/(s*s*s)

	lambda := polynomial(lambdaSeries, eta)
	if lambda <= 0 || (lambda-1)*eta < 0 {
		var err error
		if lambda, err = solveLambda(eta); err != nil {
			return 0, err
		}
	}
	x := s * lambda

	lg, err := e.gamma.LogGamma(s + 1)
	if err != nil {
		return 0, err
	}
	r0 := math.Exp((math.Log(u) + lg) / s)
	if r0 < smallXSeedLimit*s && r0 != x {
		mr, err := e.logMiss(s, u, r0)
		if err != nil {
			return 0, err
		}
		mx, err := e.logMiss(s, u, x)
		if err != nil {
			return 0, err
		}
		if mr < mx {
			x = r0
		}
	}

	return x, nil
}

// logMiss returns |ln P(s, x) − ln u|, +Inf when P underflows.
func (e *Evaluator) logMiss(s, u, x float64) (float64, error) {
	p, err := e.RegularizedP(s, x)
	if err != nil || !(p > 0) {
		return math.Inf(1), err
	}

	return math.Abs(math.Log(p) - math.Log(u)), nil
}

// solveLambda solves λ − 1 − ln λ = η²/2 on the branch λ < 1 for η < 0 and λ >= 1 otherwise.
func solveLambda(eta float64) (float64, error) {
	t := eta * eta / 2
	seed := 1 + t + math.Log1p(t)
	if eta < 0 {
		seed = math.Exp(-1 - t)
	}

	fn := func(l float64) (float64, float64, float64) {
		return l - 1 - math.Log(l) - t, 1 - 1/l, 1 / (l * l)
	}
	res, err := rootfind.Halley(fn, seed, rootfind.WithBounds(0, math.Inf(1)))
	if err != nil {
		return 0, errors.Wrapf(err, "solveLambda(eta=%g)", eta)
	}

	return res.Root, nil
}

// polish runs Halley's method on P(s, x) − u with analytic derivatives.
func (e *Evaluator) polish(s, u, x0 float64) (float64, error) {
	lg, err := e.gamma.LogGamma(s)
	if err != nil {
		return 0, err
	}

	var evalErr error
	fn := func(x float64) (float64, float64, float64) {
		p, err := e.RegularizedP(s, x)
		if err != nil {
			if evalErr == nil {
				evalErr = err
			}

			return math.NaN(), 0, 0
		}
		lx := math.Log(x)
		d1 := math.Exp((s-1)*lx - x - lg)
		d2 := math.Exp((s-2)*lx-x-lg) * (s - 1 - x)

		return p - u, d1, d2
	}

	res, err := rootfind.Halley(fn, x0,
		rootfind.WithTolerance(e.opts.InverseTolerance),
		rootfind.WithMaxIterations(e.opts.InverseMaxIterations),
		rootfind.WithBounds(0, math.Inf(1)),
	)
	if evalErr != nil {
		return 0, evalErr
	}
	if err != nil {
		return 0, err
	}

	return res.Root, nil
}

// polynomial evaluates c[0] + c[1]·x + ... by Horner's rule.
func polynomial(c []float64, x float64) float64 {
	var r float64
	for i := len(c) - 1; i >= 0; i-- {
		r = r*x + c[i]
	}

	return r
}
