package batch

import (
	"sort"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvgamma/gamma"
	"github.com/katalvlaran/lvgamma/polygamma"
)

type function struct {
	arity int
	eval  func(ev *Evaluators, args []float64) (float64, error)
}

func unary(fn func(float64) (float64, error)) function {
	return function{arity: 1, eval: func(_ *Evaluators, a []float64) (float64, error) { return fn(a[0]) }}
}

var functions = map[string]function{
	"gamma": {arity: 1, eval: func(ev *Evaluators, a []float64) (float64, error) {
		return ev.Gamma.Gamma(a[0])
	}},
	"lgamma": {arity: 1, eval: func(ev *Evaluators, a []float64) (float64, error) {
		return ev.Gamma.LogGamma(a[0])
	}},
	"nemes":    unary(gamma.GergoNemes),
	"digamma":  unary(polygamma.Digamma),
	"trigamma": unary(polygamma.Trigamma),
	"p": {arity: 2, eval: func(ev *Evaluators, a []float64) (float64, error) {
		return ev.IncGamma.RegularizedP(a[0], a[1])
	}},
	"q": {arity: 2, eval: func(ev *Evaluators, a []float64) (float64, error) {
		return ev.IncGamma.RegularizedQ(a[0], a[1])
	}},
	"lower": {arity: 2, eval: func(ev *Evaluators, a []float64) (float64, error) {
		return ev.IncGamma.LowerIncomplete(a[0], a[1])
	}},
	"upper": {arity: 2, eval: func(ev *Evaluators, a []float64) (float64, error) {
		return ev.IncGamma.UpperIncomplete(a[0], a[1])
	}},
	"pinv": {arity: 2, eval: func(ev *Evaluators, a []float64) (float64, error) {
		return ev.IncGamma.RegularizedPInverse(a[0], a[1])
	}},
}

// Functions lists the registered function names in sorted order.
func Functions() []string {
	names := make([]string, 0, len(functions))
	for name := range functions {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Arity returns the number of arguments fn takes.
func Arity(fn string) (int, error) {
	f, ok := functions[fn]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownFunction, "%q", fn)
	}

	return f.arity, nil
}

// Evaluate runs one named function. It is the single dispatch point shared by
// the runner and the CLI.
func Evaluate(ev *Evaluators, fn string, args []float64) (float64, error) {
	f, ok := functions[fn]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownFunction, "%q", fn)
	}
	if len(args) != f.arity {
		return 0, errors.Wrapf(ErrArity, "%s takes %d, got %d", fn, f.arity, len(args))
	}

	return f.eval(ev, args)
}
