package series_test

import (
	"testing"

	"github.com/katalvlaran/lvgamma/series"
)

var sinkF float64

func BenchmarkSum_Exponential(b *testing.B) {
	next := func(k int, prev float64) float64 { return prev / float64(k) }
	for i := 0; i < b.N; i++ {
		v, err := series.Sum(1, next)
		if err != nil {
			b.Fatal(err)
		}
		sinkF = v
	}
}

func BenchmarkContinuedFraction_GoldenRatio(b *testing.B) {
	one := func(int, float64) float64 { return 1 }
	cf := series.ContinuedFraction{A: one, B: one}
	for i := 0; i < b.N; i++ {
		v, err := cf.Evaluate(0)
		if err != nil {
			b.Fatal(err)
		}
		sinkF = v
	}
}
