// SPDX-License-Identifier: MIT

package polygamma

import (
	"math"

	"github.com/katalvlaran/lvgamma/numerr"
)

// digammaShift is where the asymptotic expansion takes over.
const digammaShift = 10

// digammaCoeffs: c0 = -1/2 multiplies 1/x, c_k = -B_{2k}/(2k) multiplies x^(-2k).
var digammaCoeffs = [...]float64{
	-1.0 / 2,
	-1.0 / 12,
	1.0 / 120,
	-1.0 / 252,
	1.0 / 240,
	-1.0 / 132,
	691.0 / 32760,
	-1.0 / 12,
	3617.0 / 8160,
	-43867.0 / 14364,
	174611.0 / 6600,
	-77683.0 / 276,
	236364091.0 / 65520,
	-657931.0 / 12,
	3392780147.0 / 3480,
	-1723168255201.0 / 85932,
	7709321041217.0 / 16320,
	-151628697551.0 / 12,
	26315271553053477373.0 / 69090840,
	-154210205991661.0 / 12,
	261082718496449122051.0 / 541200,
}

// Digamma returns ψ(x).
//   - x > 0: ψ(x+n) − Σ_{k<n} 1/(x+k) with n = ceil(10 − x), then the asymptotic series
//   - x < 0: ψ(−x) − 1/x + π·cot(−π·x)
//
// Errors: numerr.ErrUndefined for NaN, numerr.ErrDomain for negative integers and -Inf.
func Digamma(x float64) (float64, error) {
	switch {
	case math.IsNaN(x):
		return 0, numerr.Undefinedf("Digamma(x=NaN)")
	case x == 0:
		return math.Inf(-1), nil
	case math.IsInf(x, 1):
		return x, nil
	case x < 0:
		if err := checkPole("Digamma", x); err != nil {
			return 0, err
		}

		return digamma(-x) - 1/x + math.Pi/math.Tan(-math.Pi*x), nil
	}

	return digamma(x), nil
}

// digamma handles x > 0.
func digamma(x float64) float64 {
	var shift float64
	if x < digammaShift {
		n := math.Ceil(digammaShift - x)
		for k := 0.0; k < n; k++ {
			shift += 1 / (x + k)
		}
		x += n
	}

	inv2 := 1 / (x * x)
	sum := math.Log(x) + digammaCoeffs[0]/x
	p := inv2
	for _, c := range digammaCoeffs[1:] {
		sum += c * p
		p *= inv2
	}

	return sum - shift
}

func checkPole(op string, x float64) error {
	if math.IsInf(x, -1) || x == math.Trunc(x) {
		return numerr.Domainf("%s(x=%g): pole at a negative integer", op, x)
	}

	return nil
}
