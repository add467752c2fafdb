package numeric

import (
	"math"
	"strconv"

	"github.com/cockroachdb/apd/v3"
)

// Float is the float64 field. The zero value is ready to use.
type Float struct{}

var _ Field[float64] = Float{}

func (Float) Zero() float64 { return 0 }
func (Float) One() float64 { return 1 }
func (Float) FromInt64(v int64) float64 { return float64(v) }
func (Float) FromFloat64(v float64) float64 { return v }
func (Float) FromRatio(num, den int64) float64 { return float64(num) / float64(den) }
func (Float) Add(a, b float64) float64 { return a + b }
func (Float) Sub(a, b float64) float64 { return a - b }
func (Float) Mul(a, b float64) float64 { return a * b }
func (Float) Quo(a, b float64) float64 { return a / b }
func (Float) Neg(a float64) float64 { return -a }
func (Float) Exp(a float64) float64 { return math.Exp(a) }
func (Float) Ln(a float64) float64 { return math.Log(a) }
func (Float) Pow(a, b float64) float64 { return math.Pow(a, b) }
func (Float) Float64(a float64) float64 { return a }
func (Float) String(a float64) string { return strconv.FormatFloat(a, 'g', -1, 64) }
func (Float) Err() error { return nil }

// Binomial computes C(n, k) exactly over big integers and rounds once.
func (Float) Binomial(n, k int64) float64 {
	d := apd.NewWithBigInt(binomial(n, k), 0)
	f, _ := d.Float64()

	return f
}

// Sign returns -1, 0 or +1; NaN reports 0.
func (Float) Sign(a float64) int {
	switch {
	case a > 0:
		return 1
	case a < 0:
		return -1
	default:
		return 0
	}
}
