// SPDX-License-Identifier: MIT

// Package incgamma evaluates the regularized incomplete Gamma functions
//
//	P(s, x) = γ(s, x) / Γ(s)    Q(s, x) = Γ(s, x) / Γ(s) = 1 − P(s, x)
//
// their unregularized forms γ and Γ(s, x), and the inverse of P in x.
//
// Evaluation:
//
//	x < s+1   power series Σ x^k / (s·(s+1)···(s+k)), giving P directly
//	x >= s+1  Legendre continued fraction (modified Lentz), giving Q directly
//
// both scaled by exp(s·ln x − x − ln Γ(s)). The complement is taken only
// from the directly computed side, so tiny values of either survive.
//
// Inversion (RegularizedPInverse):
//
//	s <= 1  small-x expansion x0 = (u·Γ(s+1))^(1/s) plus a fourth-order
//	        series reversion around x0
//	s > 1   Temme's uniform asymptotic expansion in η = Φ⁻¹(u)/√s with three
//	        correction polynomials; the λ equation λ − 1 − ln λ = η²/2 is
//	        solved numerically when the series for λ lands on the wrong branch
//
// and the guess is polished by Halley's method on f(x) = P(s, x) − u.
//
// An Evaluator is immutable and safe for concurrent use.
package incgamma
