package series

import "math"

const (
	// DefaultTolerance is the relative stopping tolerance.
	DefaultTolerance = 1e-15

	// DefaultMaxIterations bounds the number of terms or Lentz steps.
	DefaultMaxIterations = 100000

	// tiny replaces exact zeros in the Lentz recurrence.
	tiny = 1e-50
)

// Options configures Sum and ContinuedFraction.Evaluate.
type Options struct {
	Tolerance     float64
	MaxIterations int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the package defaults.
func DefaultOptions() Options {
	return Options{Tolerance: DefaultTolerance, MaxIterations: DefaultMaxIterations}
}

// WithTolerance sets the relative stopping tolerance. Panics if eps is not a positive finite number.
func WithTolerance(eps float64) Option {
	if !(eps > 0) || math.IsInf(eps, 0) {
		panic("series: WithTolerance requires a positive finite tolerance")
	}

	return func(o *Options) { o.Tolerance = eps }
}

// WithMaxIterations sets the iteration budget. Panics if n < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic("series: WithMaxIterations requires n >= 1")
	}

	return func(o *Options) { o.MaxIterations = n }
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
