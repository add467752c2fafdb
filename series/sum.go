package series

import (
	"math"

	"github.com/cockroachdb/errors"
)

// Term produces the k-th term (k >= 1) from the previous one.
type Term func(k int, prev float64) float64

// Sum returns first + t1 + t2 + ..., where t_k = next(k, t_{k-1}), stopping once
// |t_k| <= Tolerance·|sum|. The number of terms added after first is bounded by MaxIterations.
func Sum(first float64, next Term, opts ...Option) (float64, error) {
	o := gatherOptions(opts)

	sum, term := first, first
	for k := 1; k <= o.MaxIterations; k++ {
		term = next(k, term)
		sum += term
		if math.IsNaN(sum) || math.IsInf(sum, 0) {
			return sum, errors.Wrapf(ErrDiverged, "Sum: term %d", k)
		}
		if math.Abs(term) <= o.Tolerance*math.Abs(sum) {
			return sum, nil
		}
	}

	return sum, errors.Wrapf(ErrNoConvergence, "Sum: %d terms", o.MaxIterations)
}
