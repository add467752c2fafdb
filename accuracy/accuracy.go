// SPDX-License-Identifier: MIT

package accuracy

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/montanaflynn/stats"
)

// ErrEmptyGrid is returned by Compare without arguments.
var ErrEmptyGrid = errors.New("accuracy: empty grid")

// Func is a fallible scalar function.
type Func func(x float64) (float64, error)

// Summary describes the relative error of a candidate against a reference.
// P99Rel is the nearest-rank 99th percentile. Failures counts points where
// either side returned an error or a non-finite value; they are excluded from
// the statistics.
type Summary struct {
	Name     string
	Count    int
	MaxRel   float64
	MeanRel  float64
	P99Rel   float64
	Failures int
}

// Compare evaluates candidate and reference at every x and summarises
// |c − r| / |r|, falling back to the absolute error where r is zero.
func Compare(name string, xs []float64, candidate, reference Func) (Summary, error) {
	if len(xs) == 0 {
		return Summary{}, errors.Wrapf(ErrEmptyGrid, "Compare(%s)", name)
	}

	s := Summary{Name: name}
	rel := make(stats.Float64Data, 0, len(xs))
	for _, x := range xs {
		c, errC := candidate(x)
		r, errR := reference(x)
		if errC != nil || errR != nil || !finite(c) || !finite(r) {
			s.Failures++
			continue
		}
		d := math.Abs(c - r)
		if r != 0 {
			d /= math.Abs(r)
		}
		rel = append(rel, d)
	}
	s.Count = len(rel)
	if s.Count == 0 {
		return s, nil
	}

	var err error
	if s.MaxRel, err = stats.Max(rel); err != nil {
		return s, errors.Wrap(err, "accuracy: max")
	}
	if s.MeanRel, err = stats.Mean(rel); err != nil {
		return s, errors.Wrap(err, "accuracy: mean")
	}
	if s.P99Rel, err = stats.PercentileNearestRank(rel, 99); err != nil {
		return s, errors.Wrap(err, "accuracy: percentile")
	}

	return s, nil
}

// Grid returns n points spaced geometrically on [lo, hi]; lo must be positive.
func Grid(lo, hi float64, n int) []float64 {
	if n < 2 {
		return []float64{lo}
	}
	xs := make([]float64, n)
	step := math.Log(hi/lo) / float64(n-1)
	for i := range xs {
		xs[i] = lo * math.Exp(step*float64(i))
	}
	xs[n-1] = hi

	return xs
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
