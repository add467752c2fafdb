package rootfind

import "math"

const (
	// DefaultTolerance is the relative step size at which the root is accepted.
	DefaultTolerance = 1e-16

	// DefaultMaxIterations bounds the number of Halley steps.
	DefaultMaxIterations = 50

	// DefaultStallFloor is the relative step below which a non-shrinking step ends the iteration.
	DefaultStallFloor = 1e-9
)

// Options configures Halley.
type Options struct {
	Tolerance     float64
	MaxIterations int
	StallFloor    float64
	LowerBound    float64
	UpperBound    float64
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the defaults: unbounded search, 1e-16 tolerance, 50 steps.
func DefaultOptions() Options {
	return Options{
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
		StallFloor:    DefaultStallFloor,
		LowerBound:    math.Inf(-1),
		UpperBound:    math.Inf(1),
	}
}

// WithTolerance sets the relative step tolerance. Panics unless tol > 0.
func WithTolerance(tol float64) Option {
	if !(tol > 0) {
		panic("rootfind: WithTolerance requires tol > 0")
	}

	return func(o *Options) { o.Tolerance = tol }
}

// WithMaxIterations sets the step budget. Panics if n < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic("rootfind: WithMaxIterations requires n >= 1")
	}

	return func(o *Options) { o.MaxIterations = n }
}

// WithStallFloor sets the relative noise floor; 0 disables stall detection. Panics if negative.
func WithStallFloor(floor float64) Option {
	if floor < 0 || math.IsNaN(floor) {
		panic("rootfind: WithStallFloor requires floor >= 0")
	}

	return func(o *Options) { o.StallFloor = floor }
}

// WithBounds restricts the search to [lo, hi]. Panics unless lo < hi.
func WithBounds(lo, hi float64) Option {
	if !(lo < hi) {
		panic("rootfind: WithBounds requires lo < hi")
	}

	return func(o *Options) { o.LowerBound, o.UpperBound = lo, hi }
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
