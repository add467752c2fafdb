package numeric

import "github.com/cockroachdb/apd/v3"

// binomial returns C(n, k) as an exact big integer; k outside [0, n] yields 0.
func binomial(n, k int64) *apd.BigInt {
	if k < 0 || n < 0 || k > n {
		return apd.NewBigInt(0)
	}

	return new(apd.BigInt).Binomial(n, k)
}
