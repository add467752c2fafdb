package gamma

import (
	"math"

	"github.com/katalvlaran/lvgamma/numerr"
)

// GergoNemes returns Γ(x) from the closed-form approximation
//
//	Γ(z) ≈ sqrt(2π/z) · ((z + 1/(12z − 1/(10z))) / e)^z
//
// with the same reflection, pole and zero rules as Evaluator.Gamma.
// Relative error is about 5e-3 at z = 0.5, 2e-7 at z = 5 and 2e-10 at z = 20.
func GergoNemes(x float64) (float64, error) {
	if math.IsNaN(x) {
		return 0, numerr.Undefinedf("GergoNemes(x=NaN)")
	}
	if x == 0 {
		return math.Inf(1), nil
	}
	if x > 0 {
		return nemes(x), nil
	}
	if err := checkPole("GergoNemes", x); err != nil {
		return 0, err
	}

	return reflect(-x, nemes(-x)), nil
}

func nemes(z float64) float64 {
	if math.IsInf(z, 1) {
		return z
	}

	return math.Sqrt(2*math.Pi/z) * math.Pow((z+1/(12*z-1/(10*z)))/math.E, z)
}
