package incgamma

import "github.com/cockroachdb/errors"

// ErrNilGamma is returned by New when no gamma.Evaluator is supplied.
var ErrNilGamma = errors.New("incgamma: nil gamma evaluator")
