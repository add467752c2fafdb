package batch_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvgamma/batch"
	"github.com/katalvlaran/lvgamma/gamma"
	"github.com/katalvlaran/lvgamma/lanczos"
)

func ExampleRunner_Run() {
	tab, _ := lanczos.New()
	ev, _ := batch.NewEvaluators(tab, gamma.Precise)
	r, _ := batch.NewRunner(ev, batch.WithWorkers(2))

	res, _ := r.Run(context.Background(), []batch.Request{
		{ID: "a", Fn: "gamma", Args: []float64{6}},
		{ID: "b", Fn: "q", Args: []float64{1, 1}},
		{ID: "c", Fn: "digamma", Args: []float64{-1}},
	})
	for _, x := range res {
		if x.Err != nil {
			fmt.Printf("%s: error\n", x.ID)
			continue
		}
		fmt.Printf("%s: %.10f\n", x.ID, x.Value)
	}
	// Output:
	// a: 120.0000000000
	// b: 0.3678794412
	// c: error
}
