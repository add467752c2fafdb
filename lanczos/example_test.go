package lanczos_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvgamma/lanczos"
)

// ExampleNew derives the default 15-term table and evaluates ln Γ(5) = ln 24.
func ExampleNew() {
	tab, err := lanczos.New()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	quick, _ := tab.LogGammaQuick(5)
	precise, _ := tab.LogGamma(5)
	fmt.Printf("n=%d precision=%d\n", len(tab.Coefficients()), tab.Precision())
	fmt.Printf("quick=%.12f precise=%.12f\n", quick, precise)
	fmt.Printf("Γ(5)=%.6f\n", math.Exp(precise))
	// Output:
	// n=15 precision=50
	// quick=3.178053830348 precise=3.178053830348
	// Γ(5)=24.000000
}
