package accuracy

import (
	"gonum.org/v1/gonum/mathext"

	"github.com/katalvlaran/lvgamma/gamma"
	"github.com/katalvlaran/lvgamma/incgamma"
	"github.com/katalvlaran/lvgamma/lanczos"
)

// DefaultGridSize is the number of points in each built-in report.
const DefaultGridSize = 200

// Report runs every built-in comparison on tables.
func Report(tables *lanczos.Tables, n int) ([]Summary, error) {
	precise, err := gamma.New(tables, gamma.WithPrecision(gamma.Precise))
	if err != nil {
		return nil, err
	}
	inc, err := incgamma.New(precise)
	if err != nil {
		return nil, err
	}

	type job struct {
		name      string
		xs        []float64
		candidate Func
		reference Func
	}
	jobs := []job{
		{"lgamma quick vs precise", Grid(1e-3, 1e3, n), tables.LogGammaQuick, tables.LogGamma},
		{"nemes vs lanczos gamma", Grid(1, 170, n), gamma.GergoNemes, precise.Gamma},
		{"P(s, s) vs gonum", Grid(0.1, 1e3, n), func(s float64) (float64, error) {
			return inc.RegularizedP(s, s)
		}, func(s float64) (float64, error) {
			return mathext.GammaIncReg(s, s), nil
		}},
		{"Pinv(s, 0.25) vs gonum", Grid(0.5, 500, n), func(s float64) (float64, error) {
			return inc.RegularizedPInverse(s, 0.25)
		}, func(s float64) (float64, error) {
			return mathext.GammaIncRegInv(s, 0.25), nil
		}},
	}

	out := make([]Summary, 0, len(jobs))
	for _, j := range jobs {
		s, err := Compare(j.name, j.xs, j.candidate, j.reference)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	return out, nil
}
