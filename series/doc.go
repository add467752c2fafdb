// Package series evaluates infinite series and continued fractions to a relative tolerance.
//
// Sum accumulates terms produced by a recurrence until the latest term is negligible
// against the running sum. ContinuedFraction.Evaluate runs the modified Lentz
// algorithm on
//
//	b0 + a1/(b1 + a2/(b2 + a3/(b3 + ...)))
//
// with partial numerators a(n, x) and denominators b(n, x) supplied as callbacks.
//
// Both stop with ErrNoConvergence (category numerr.ErrNoConvergence) when the
// iteration budget is exhausted; a non-finite intermediate is reported as
// ErrDiverged under the same category. No result is ever returned silently
// unconverged.
package series
