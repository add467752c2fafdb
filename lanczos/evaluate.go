// SPDX-License-Identifier: MIT

package lanczos

import (
	"math"

	"github.com/cockroachdb/apd/v3"
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvgamma/matrix"
	"github.com/katalvlaran/lvgamma/numeric"
	"github.com/katalvlaran/lvgamma/numerr"
)

// LogGamma returns ln Γ(x) for x > 0, evaluated in decimal arithmetic at the
// tables' working precision and narrowed to float64 once.
// Errors: numerr.ErrDomain for x <= 0 or NaN; ErrDerivation wrapped decimal failures.
func (t *Tables) LogGamma(x float64) (float64, error) {
	if err := checkArgument("LogGamma", x); err != nil {
		return 0, err
	}
	if math.IsInf(x, 1) {
		return math.Inf(1), nil
	}

	dec := numeric.NewDecimal(t.ctx)
	v := dec.Float64(logGamma[*apd.Decimal](dec, t.p, t.g, x))
	if err := dec.Err(); err != nil {
		return 0, errors.Wrapf(numerr.Tag(err, ErrDerivation), "LogGamma(x=%g)", x)
	}

	return v, nil
}

// LogGammaQuick returns ln Γ(x) for x > 0 using float64 arithmetic and the narrowed coefficients.
func (t *Tables) LogGammaQuick(x float64) (float64, error) {
	if err := checkArgument("LogGammaQuick", x); err != nil {
		return 0, err
	}
	if math.IsInf(x, 1) {
		return math.Inf(1), nil
	}

	return logGamma[float64](numeric.Float{}, t.pFast, t.params.G, x), nil
}

func checkArgument(op string, x float64) error {
	if math.IsNaN(x) || x <= 0 {
		return numerr.Domainf("%s(x=%g): requires x > 0", op, x)
	}

	return nil
}

// logGamma evaluates ln(Z·P) + (z+1/2)·ln(z+g+1/2) - (z+g+1/2) with z = x-1.
// The denominators k+z are formed as (k-1)+x so that 1+z stays exact for tiny x.
func logGamma[T any](fl numeric.Field[T], p []T, g T, x float64) T {
	xv := fl.FromFloat64(x)

	sum := p[0]
	for k := 1; k < len(p); k++ {
		sum = fl.Add(sum, fl.Quo(p[k], fl.Add(fl.FromInt64(int64(k-1)), xv)))
	}

	shifted := fl.Sub(xv, fl.FromRatio(1, 2)) // z + 1/2
	base := fl.Add(shifted, g)                // z + g + 1/2

	return fl.Sub(fl.Add(fl.Ln(sum), fl.Mul(shifted, fl.Ln(base))), base)
}

// Parameters returns the parameters the tables were derived for.
func (t *Tables) Parameters() Parameters { return t.params }

// Precision returns the decimal working precision in significant digits.
func (t *Tables) Precision() uint32 { return t.ctx.Precision }

// Coefficients returns a copy of the float64 coefficient vector used by LogGammaQuick.
func (t *Tables) Coefficients() []float64 {
	out := make([]float64, len(t.pFast))
	copy(out, t.pFast)

	return out
}

// PreciseCoefficients returns the decimal coefficient vector as strings.
func (t *Tables) PreciseCoefficients() []string {
	out := make([]string, len(t.p))
	for i, v := range t.p {
		out[i] = v.String()
	}

	return out
}

// B returns a copy of the binomial matrix.
func (t *Tables) B() *matrix.Dense[*apd.Decimal] { return t.b.Clone() }

// C returns a copy of the Chebyshev-like matrix.
func (t *Tables) C() *matrix.Dense[*apd.Decimal] { return t.c.Clone() }

// D returns a copy of the diagonal scaling matrix.
func (t *Tables) D() *matrix.Dense[*apd.Decimal] { return t.d.Clone() }

// F returns a copy of the n×1 exponential vector.
func (t *Tables) F() *matrix.Dense[*apd.Decimal] { return t.f.Clone() }
