package polygamma

import (
	"math"

	"github.com/katalvlaran/lvgamma/numerr"
)

const (
	// trigammaShift is where the asymptotic expansion takes over.
	trigammaShift = 30

	// trigammaSmall bounds the Laurent branch 1/x² + π²/6 − 2ζ(3)·x.
	trigammaSmall = 1e-4

	twoZeta3 = 2.404113806319188
)

// Trigamma returns ψ1(x).
//   - 0 < x < 1e-4: 1/x² + π²/6 − 2ζ(3)·x
//   - x < 30: recurrence ψ1(x) = ψ1(x+1) + 1/x²
//   - x >= 30: asymptotic series in z = 1/x²
//   - x < 0: (π/sin(π·x))² − ψ1(1−x)
//
// Errors: numerr.ErrUndefined for NaN, numerr.ErrDomain for negative integers and -Inf.
func Trigamma(x float64) (float64, error) {
	switch {
	case math.IsNaN(x):
		return 0, numerr.Undefinedf("Trigamma(x=NaN)")
	case x == 0:
		return math.Inf(1), nil
	case math.IsInf(x, 1):
		return 0, nil
	case x < 0:
		if err := checkPole("Trigamma", x); err != nil {
			return 0, err
		}
		s := math.Pi / math.Sin(math.Pi*x)

		return s*s - trigamma(1-x), nil
	}

	return trigamma(x), nil
}

// trigamma handles x > 0. The recurrence is unrolled into a loop that adds the
// 1/x² terms innermost first, matching the recursive evaluation exactly.
func trigamma(x float64) float64 {
	if x < trigammaSmall {
		return 1/(x*x) + math.Pi*math.Pi/6 - twoZeta3*x
	}

	var args [trigammaShift]float64
	n := 0
	for ; x < trigammaShift; n++ {
		args[n] = x
		x++
	}

	z := 1 / (x * x)
	sum := 0.5*z + (1+z*(1.0/6+z*(-1.0/30+z*(1.0/42+z*(-1.0/30+z*5.0/66)))))/x
	for i := n - 1; i >= 0; i-- {
		sum += 1 / (args[i] * args[i])
	}

	return sum
}
