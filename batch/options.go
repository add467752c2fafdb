package batch

import (
	"runtime"

	"go.uber.org/zap"
)

// Options configures a Runner.
type Options struct {
	Workers int
	Logger  *zap.Logger
	Metrics *Metrics
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions uses GOMAXPROCS workers, a no-op logger and no metrics.
func DefaultOptions() Options {
	return Options{
		Workers: runtime.GOMAXPROCS(0),
		Logger:  zap.NewNop(),
	}
}

// WithWorkers bounds the number of concurrent evaluations. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("batch: WithWorkers requires n >= 1")
	}

	return func(o *Options) { o.Workers = n }
}

// WithLogger sets the logger; nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics records every evaluation in m.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}
