package numeric

// Field is the scalar arithmetic required by the Lanczos machinery.
// Results are always freshly allocated; operands are never mutated.
type Field[T any] interface {
	// Zero returns the additive identity.
	Zero() T
	// One returns the multiplicative identity.
	One() T
	// FromInt64 converts an exact integer.
	FromInt64(v int64) T
	// FromFloat64 converts a float64 exactly (decimal) or as-is (float).
	FromFloat64(v float64) T
	// FromRatio returns num/den rounded to the field's precision.
	FromRatio(num, den int64) T
	// Binomial returns the binomial coefficient C(n, k) as an exact integer, 0 when k > n.
	Binomial(n, k int64) T

	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T
	Quo(a, b T) T
	Neg(a T) T
	Exp(a T) T
	Ln(a T) T
	Pow(a, b T) T

	// Sign returns -1, 0 or +1.
	Sign(a T) int
	// Float64 narrows a to the nearest float64.
	Float64(a T) float64
	// String formats a in its full precision.
	String(a T) string
	// Err reports the first error raised by any previous operation, or nil.
	Err() error
}
