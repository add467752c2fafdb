package incgamma

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvgamma/numerr"
)

// LowerIncomplete returns γ(s, x) = P(s, x)·Γ(s) for s > 0, x >= 0.
func (e *Evaluator) LowerIncomplete(s, x float64) (float64, error) {
	p, _, err := e.unregularized("LowerIncomplete", s, x)

	return p, err
}

// UpperIncomplete returns Γ(s, x) = Q(s, x)·Γ(s) for s > 0, x >= 0.
func (e *Evaluator) UpperIncomplete(s, x float64) (float64, error) {
	_, q, err := e.unregularized("UpperIncomplete", s, x)

	return q, err
}

func (e *Evaluator) unregularized(op string, s, x float64) (lower, upper float64, err error) {
	if err = checkShapeAndArgument(op, s, x); err != nil {
		return 0, 0, err
	}
	if s == 0 {
		return 0, 0, numerr.Domainf("%s(s=0, x=%g): requires s > 0", op, x)
	}

	p, q, err := e.regularized(op, s, x)
	if err != nil {
		return 0, 0, err
	}
	g, err := e.gamma.Gamma(s)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "%s(s=%g, x=%g)", op, s, x)
	}

	return p * g, q * g, nil
}
