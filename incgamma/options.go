package incgamma

import (
	"math"

	"github.com/katalvlaran/lvgamma/series"
)

const (
	// DefaultSeriesTolerance is the relative stopping tolerance of the series and the fraction.
	DefaultSeriesTolerance = series.DefaultTolerance

	// DefaultMaxIterations bounds the terms of the series and the steps of the fraction.
	DefaultMaxIterations = series.DefaultMaxIterations

	// DefaultUnderflowCutoff is the x above which Q is 0 without evaluation (for s < x/2).
	DefaultUnderflowCutoff = 1e8

	// DefaultInverseTolerance is the relative Halley step at which the inverse is accepted.
	DefaultInverseTolerance = 1e-16

	// DefaultInverseMaxIterations bounds the Halley steps of the inverse.
	DefaultInverseMaxIterations = 50
)

// Options configures an Evaluator.
type Options struct {
	SeriesTolerance      float64
	MaxIterations        int
	UnderflowCutoff      float64
	InverseTolerance     float64
	InverseMaxIterations int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the package defaults.
func DefaultOptions() Options {
	return Options{
		SeriesTolerance:      DefaultSeriesTolerance,
		MaxIterations:        DefaultMaxIterations,
		UnderflowCutoff:      DefaultUnderflowCutoff,
		InverseTolerance:     DefaultInverseTolerance,
		InverseMaxIterations: DefaultInverseMaxIterations,
	}
}

// WithSeriesTolerance sets the series/fraction tolerance. Panics unless 0 < eps < 1.
func WithSeriesTolerance(eps float64) Option {
	if !(eps > 0 && eps < 1) {
		panic("incgamma: WithSeriesTolerance requires 0 < eps < 1")
	}

	return func(o *Options) { o.SeriesTolerance = eps }
}

// WithMaxIterations sets the series/fraction budget. Panics if n < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic("incgamma: WithMaxIterations requires n >= 1")
	}

	return func(o *Options) { o.MaxIterations = n }
}

// WithUnderflowCutoff sets the x above which Q underflows to 0. Panics unless cutoff > 0.
func WithUnderflowCutoff(cutoff float64) Option {
	if !(cutoff > 0) {
		panic("incgamma: WithUnderflowCutoff requires cutoff > 0")
	}

	return func(o *Options) { o.UnderflowCutoff = cutoff }
}

// WithInverseTolerance sets the Halley tolerance of the inverse. Panics unless tol > 0 and finite.
func WithInverseTolerance(tol float64) Option {
	if !(tol > 0) || math.IsInf(tol, 1) {
		panic("incgamma: WithInverseTolerance requires a positive finite tolerance")
	}

	return func(o *Options) { o.InverseTolerance = tol }
}

// WithInverseMaxIterations sets the Halley budget of the inverse. Panics if n < 1.
func WithInverseMaxIterations(n int) Option {
	if n < 1 {
		panic("incgamma: WithInverseMaxIterations requires n >= 1")
	}

	return func(o *Options) { o.InverseMaxIterations = n }
}
