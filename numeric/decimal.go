package numeric

import (
	"strconv"

	"github.com/cockroachdb/apd/v3"
	"github.com/cockroachdb/errors"
)

// ErrConversion is raised when a float64 cannot be represented as a decimal.
var ErrConversion = errors.New("numeric: float64 conversion failed")

// NewContext returns a decimal context with the given working precision (significant digits).
// The returned context must not be mutated afterwards; it is then safe for concurrent use.
func NewContext(precision uint32) *apd.Context {
	return apd.BaseContext.WithPrecision(precision)
}

// Decimal is the arbitrary-precision field over apd.Decimal.
// The first failing operation poisons the value: later operations are skipped and
// Err reports the original failure.
type Decimal struct {
	ed  apd.ErrDecimal
	err error
}

var _ Field[*apd.Decimal] = (*Decimal)(nil)

// NewDecimal returns a fresh Decimal field bound to ctx.
func NewDecimal(ctx *apd.Context) *Decimal {
	return &Decimal{ed: apd.MakeErrDecimal(ctx)}
}

// Context returns the bound decimal context.
func (d *Decimal) Context() *apd.Context { return d.ed.Ctx }

func (d *Decimal) Zero() *apd.Decimal { return apd.New(0, 0) }
func (d *Decimal) One() *apd.Decimal { return apd.New(1, 0) }

func (d *Decimal) FromInt64(v int64) *apd.Decimal { return apd.New(v, 0) }

func (d *Decimal) FromFloat64(v float64) *apd.Decimal {
	out, err := new(apd.Decimal).SetFloat64(v)
	if err != nil {
		d.fail(errors.Wrapf(ErrConversion, "FromFloat64(%g): %v", v, err))
	}

	return out
}

func (d *Decimal) FromRatio(num, den int64) *apd.Decimal {
	return d.Quo(apd.New(num, 0), apd.New(den, 0))
}

func (d *Decimal) Binomial(n, k int64) *apd.Decimal {
	return apd.NewWithBigInt(binomial(n, k), 0)
}

func (d *Decimal) Add(a, b *apd.Decimal) *apd.Decimal { return d.ed.Add(new(apd.Decimal), a, b) }
func (d *Decimal) Sub(a, b *apd.Decimal) *apd.Decimal { return d.ed.Sub(new(apd.Decimal), a, b) }
func (d *Decimal) Mul(a, b *apd.Decimal) *apd.Decimal { return d.ed.Mul(new(apd.Decimal), a, b) }
func (d *Decimal) Quo(a, b *apd.Decimal) *apd.Decimal { return d.ed.Quo(new(apd.Decimal), a, b) }
func (d *Decimal) Neg(a *apd.Decimal) *apd.Decimal { return d.ed.Neg(new(apd.Decimal), a) }
func (d *Decimal) Exp(a *apd.Decimal) *apd.Decimal { return d.ed.Exp(new(apd.Decimal), a) }
func (d *Decimal) Ln(a *apd.Decimal) *apd.Decimal { return d.ed.Ln(new(apd.Decimal), a) }
func (d *Decimal) Pow(a, b *apd.Decimal) *apd.Decimal { return d.ed.Pow(new(apd.Decimal), a, b) }

func (d *Decimal) Sign(a *apd.Decimal) int { return a.Sign() }

func (d *Decimal) String(a *apd.Decimal) string { return a.String() }

// Float64 narrows a; values beyond the float64 range saturate to ±Inf or ±0.
func (d *Decimal) Float64(a *apd.Decimal) float64 {
	f, err := a.Float64()
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		d.fail(errors.Wrapf(ErrConversion, "Float64(%s): %v", a.String(), err))
	}

	return f
}

// Err returns the first conversion or arithmetic error.
func (d *Decimal) Err() error {
	if d.err != nil {
		return d.err
	}

	return d.ed.Err()
}

func (d *Decimal) fail(err error) {
	if d.err == nil {
		d.err = err
	}
}
