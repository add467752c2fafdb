package gamma

// DefaultPrecision is the evaluation path used when no option is given.
const DefaultPrecision = Quick

// Options configures an Evaluator.
type Options struct {
	Precision PrecisionMode
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Options{Precision: DefaultPrecision}.
func DefaultOptions() Options {
	return Options{Precision: DefaultPrecision}
}

// WithPrecision selects the evaluation path. Panics on an unknown mode.
func WithPrecision(m PrecisionMode) Option {
	if m != Quick && m != Precise {
		panic("gamma: WithPrecision requires Quick or Precise")
	}

	return func(o *Options) { o.Precision = m }
}
