package batch

import "github.com/cockroachdb/errors"

var (
	// ErrUnknownFunction is returned for a request whose fn is not registered.
	ErrUnknownFunction = errors.New("batch: unknown function")

	// ErrArity is returned when a request carries the wrong number of arguments.
	ErrArity = errors.New("batch: wrong number of arguments")

	// ErrNilEvaluators is returned by NewRunner without evaluators.
	ErrNilEvaluators = errors.New("batch: nil evaluators")
)
