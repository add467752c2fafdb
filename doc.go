// Package lvgamma is a toolkit for the Gamma family of special functions:
// Gamma and log-Gamma from a derived Lanczos approximation, digamma and
// trigamma, the regularized and unregularized incomplete Gamma functions and
// the inverse of the regularized lower incomplete Gamma.
//
// 🚀 What is inside?
//
//	• Lanczos engine: coefficients derived from (g, n) at arbitrary decimal precision
//	• Two evaluation paths: quick float64 and precise apd decimal
//	• Polygamma: ψ and ψ1 with reflection for negative arguments
//	• Incomplete Gamma: series and continued fraction, P + Q = 1
//	• Inverse: Temme/DiDonato-Morris starting values polished by Halley's method
//	• gammafn: a CLI with batch evaluation, table dumps and accuracy reports
//
// ✨ Why lvgamma?
//
//   - Every evaluator is immutable after construction and safe for concurrent use
//   - Errors carry a category (domain, undefined, no convergence) testable with errors.Is
//   - The coefficient derivation is inspectable: B, C, D and F are exposed
//
// Packages:
//
//	numerr/     error categories shared by every evaluator
//	numeric/    scalar fields: float64 and apd decimal, binomial provider
//	matrix/     generic dense matrix used by the coefficient derivation
//	series/     series summation and modified Lentz continued fractions
//	rootfind/   Halley iteration
//	lanczos/    coefficient tables and log-Gamma
//	gamma/      Gamma, log-Gamma, Gergő Nemes approximation
//	polygamma/  digamma, trigamma
//	incgamma/   P, Q, γ, Γ(s, x) and the inverse of P
//	config/     YAML/TOML configuration
//	batch/      concurrent request evaluation with metrics
//	accuracy/   cross-strategy error statistics
//
// Quick example:
//
//	tables, _ := lanczos.New()
//	g, _ := gamma.New(tables)
//	inc, _ := incgamma.New(g)
//	median, _ := inc.RegularizedPInverse(2, 0.5) // 1.678346990016661
//
//	go install github.com/katalvlaran/lvgamma/cmd/gammafn@latest
package lvgamma
