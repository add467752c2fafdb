// Package gamma evaluates the Gamma function and its logarithm on top of a
// lanczos.Tables value, plus the closed-form Gergő Nemes approximation.
//
// Gamma covers the whole real line except the poles: positive arguments go
// through exp(ln Γ(x)), negative non-integers through the reflection formula
//
//	Γ(x) = π / (−x · Γ(−x) · sin(π·x))
//
// Γ(0) is +Inf; negative integers are poles and return numerr.ErrDomain.
// An Evaluator is immutable and safe for concurrent use.
package gamma
