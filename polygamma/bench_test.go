package polygamma_test

import (
	"testing"

	"github.com/katalvlaran/lvgamma/polygamma"
)

var sink float64

func BenchmarkDigamma(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sink, _ = polygamma.Digamma(0.37)
	}
}

func BenchmarkTrigamma(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sink, _ = polygamma.Trigamma(0.37)
	}
}
