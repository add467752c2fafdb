// SPDX-License-Identifier: MIT

package gamma

import (
	"math"

	"github.com/katalvlaran/lvgamma/lanczos"
	"github.com/katalvlaran/lvgamma/numerr"
)

// Evaluator computes ln Γ and Γ with one Lanczos table and precision mode.
type Evaluator struct {
	tables *lanczos.Tables
	mode   PrecisionMode
}

// New binds tables to an Evaluator configured by opts.
func New(tables *lanczos.Tables, opts ...Option) (*Evaluator, error) {
	if tables == nil {
		return nil, ErrNilTables
	}
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return &Evaluator{tables: tables, mode: o.Precision}, nil
}

// Mode reports the configured precision mode.
func (e *Evaluator) Mode() PrecisionMode { return e.mode }

// Tables returns the Lanczos tables the Evaluator reads.
func (e *Evaluator) Tables() *lanczos.Tables { return e.tables }

// LogGamma returns ln Γ(x) for x > 0.
// Errors: numerr.ErrUndefined for NaN, numerr.ErrDomain for x <= 0.
func (e *Evaluator) LogGamma(x float64) (float64, error) {
	if math.IsNaN(x) {
		return 0, numerr.Undefinedf("LogGamma(x=NaN)")
	}
	if e.mode == Precise {
		return e.tables.LogGamma(x)
	}

	return e.tables.LogGammaQuick(x)
}

// Gamma returns Γ(x).
//   - x > 0: exp(ln Γ(x)), overflowing to +Inf past x ≈ 171.6
//   - x = 0: +Inf
//   - x < 0, non-integer: reflection through Γ(−x)
//
// Errors: numerr.ErrUndefined for NaN, numerr.ErrDomain at negative integers and -Inf.
func (e *Evaluator) Gamma(x float64) (float64, error) {
	if math.IsNaN(x) {
		return 0, numerr.Undefinedf("Gamma(x=NaN)")
	}
	if x == 0 {
		return math.Inf(1), nil
	}
	if x > 0 {
		lg, err := e.LogGamma(x)
		if err != nil {
			return 0, err
		}

		return math.Exp(lg), nil
	}
	if err := checkPole("Gamma", x); err != nil {
		return 0, err
	}

	xp := -x
	lg, err := e.LogGamma(xp)
	if err != nil {
		return 0, err
	}

	return reflect(xp, math.Exp(lg)), nil
}

// checkPole rejects negative integers (including -Inf).
func checkPole(op string, x float64) error {
	if math.IsInf(x, -1) || x == math.Trunc(x) {
		return numerr.Domainf("%s(x=%g): pole at a non-positive integer", op, x)
	}

	return nil
}

// reflect returns Γ(−xp) from xp > 0 and g = Γ(xp).
func reflect(xp, g float64) float64 {
	return math.Pi / (xp * g * math.Sin(-math.Pi*xp))
}
