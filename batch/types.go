package batch

import (
	"time"

	"github.com/katalvlaran/lvgamma/gamma"
	"github.com/katalvlaran/lvgamma/incgamma"
	"github.com/katalvlaran/lvgamma/lanczos"
)

// Request is one evaluation.
type Request struct {
	ID   string    `yaml:"id"`
	Fn   string    `yaml:"fn"`
	Args []float64 `yaml:"args"`
}

// Result is the outcome of one Request; Err is nil on success.
type Result struct {
	Request
	Value    float64
	Err      error
	Duration time.Duration
}

// Evaluators bundles the shared, read-only evaluators used by every worker.
type Evaluators struct {
	Tables   *lanczos.Tables
	Gamma    *gamma.Evaluator
	IncGamma *incgamma.Evaluator
}

// NewEvaluators wires gamma and incgamma evaluators on top of tables.
func NewEvaluators(tables *lanczos.Tables, mode gamma.PrecisionMode, opts ...incgamma.Option) (*Evaluators, error) {
	g, err := gamma.New(tables, gamma.WithPrecision(mode))
	if err != nil {
		return nil, err
	}
	inc, err := incgamma.New(g, opts...)
	if err != nil {
		return nil, err
	}

	return &Evaluators{Tables: tables, Gamma: g, IncGamma: inc}, nil
}

// file is the on-disk layout of a request file.
type file struct {
	Requests []Request `yaml:"requests"`
}
