package batch_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/lvgamma/batch"
)

func BenchmarkRunner_Run(b *testing.B) {
	ev := evaluators(b)
	r, err := batch.NewRunner(ev, batch.WithWorkers(4))
	if err != nil {
		b.Fatal(err)
	}
	reqs := make([]batch.Request, 256)
	for i := range reqs {
		reqs[i] = batch.Request{Fn: "pinv", Args: []float64{float64(i%17) + 0.5, 0.3}}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := r.Run(context.Background(), reqs); err != nil {
			b.Fatal(err)
		}
	}
}
