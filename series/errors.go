package series

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvgamma/numerr"
)

var (
	// ErrNoConvergence is returned when the iteration budget runs out.
	ErrNoConvergence = numerr.Tag(errors.New("series: iteration budget exhausted"), numerr.ErrNoConvergence)

	// ErrDiverged is returned when an intermediate becomes NaN or infinite.
	ErrDiverged = numerr.Tag(errors.New("series: non-finite intermediate"), numerr.ErrNoConvergence)
)
