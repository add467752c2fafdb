package lanczos_test

import (
	"testing"

	"github.com/katalvlaran/lvgamma/lanczos"
)

var sink float64

func BenchmarkNew(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := lanczos.New(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLogGammaQuick(b *testing.B) {
	tab := defaultTables(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink, _ = tab.LogGammaQuick(7.25)
	}
}

func BenchmarkLogGamma(b *testing.B) {
	tab := defaultTables(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink, _ = tab.LogGamma(7.25)
	}
}
