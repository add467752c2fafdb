// Package rootfind implements Halley's method for polishing a root whose first and
// second derivatives are known analytically.
//
// Each step moves by
//
//	Δ = r / (1 − r·f''/(2f')),  r = f/f'
//
// falling back to the Newton step r when the Halley correction is not finite or
// would flip the direction. Steps that leave [LowerBound, UpperBound] bisect toward
// the violated bound instead.
//
// Convergence is declared when |Δ| <= Tolerance·|x|, or when the iteration has
// reached the noise floor of f: the step stopped shrinking (|Δ| >= |Δprev|/2)
// while already below StallFloor·|x|. Exhausting MaxIterations yields
// ErrNoRootFound, which carries the numerr.ErrNoConvergence category.
package rootfind
