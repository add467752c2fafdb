// Package polygamma evaluates the digamma ψ(x) = d/dx ln Γ(x) and trigamma
// ψ1(x) = d²/dx² ln Γ(x) functions in float64.
//
// Both push small arguments up by the recurrence into the range of an
// asymptotic expansion (x >= 10 for ψ, x >= 30 for ψ1) and handle negative
// non-integers by reflection. Arguments at the poles (zero and negative
// integers) follow these rules:
//
//	ψ(0) = -Inf, ψ1(0) = +Inf, negative integers -> numerr.ErrDomain
//	NaN -> numerr.ErrUndefined
package polygamma
