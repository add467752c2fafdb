// Package numeric abstracts the scalar arithmetic that the Lanczos derivation and
// evaluation run on.
//
// A Field[T] bundles the operations a formula needs (ring operations, division,
// exp, ln, pow, binomial coefficients) for a concrete scalar type T. Two fields ship:
//
//   - Float: native float64 arithmetic, stateless and safe for concurrent use.
//   - Decimal: github.com/cockroachdb/apd/v3 decimals at a fixed working precision.
//     A Decimal value accumulates the first error of a chain of operations (sticky,
//     apd.ErrDecimal style), so one Decimal must be used by a single goroutine for a
//     single computation. The *apd.Context it wraps is shared freely.
//
// Writing a formula once against Field[T] guarantees that the quick and precise
// evaluation paths cannot drift apart.
package numeric
