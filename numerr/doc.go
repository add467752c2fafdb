// SPDX-License-Identifier: MIT

// Package numerr defines the error categories shared by every evaluator in lvgamma.
//
// Three categories exist:
//
//   - ErrDomain: an argument lies outside the mathematical domain of the function
//     (negative s in P/Q, negative x, s <= 0 for the incomplete Gamma variants,
//     poles at the non-positive integers).
//   - ErrUndefined: the input carries no value at all (NaN).
//   - ErrNoConvergence: an iterative method ran out of its iteration budget.
//
// Packages create their own precise sentinels and tag them with a category via
// Tag, so callers can match either one with errors.Is from the standard library
// or from cockroachdb/errors:
//
//	x, err := inc.RegularizedPInverse(s, u)
//	switch {
//	case errors.Is(err, numerr.ErrNoConvergence):
//		// retry with a looser tolerance
//	case errors.Is(err, numerr.ErrDomain):
//		// reject the request
//	}
package numerr
