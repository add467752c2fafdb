// SPDX-License-Identifier: MIT

// Package lanczos derives Lanczos approximation coefficients for ln Γ and evaluates
// them at two precisions.
//
// What:
//
//	For parameters (g, n) the coefficient vector P = D·B·C·F is assembled from
//	  B  n×n binomial triangle: B[0][j] = 1, B[i][j] = (-1)^(j-i)·C(i+j-1, j-i) for j >= i >= 1
//	  C  n×n Chebyshev-like triangle: C[0][0] = 1/2,
//	     C[i][j] = (-1)^(i-j)·Σ_k C(2i, 2k)·C(k, k+j-i) for j <= i
//	  D  n×n diagonal: D[0][0] = 1, D[1][1] = -1, D[i][i] = D[i-1][i-1]·2(2i-1)/(i-1)
//	  F  n×1: F[i] = 2·(i+1)(i+2)···(2i)/4^i · e^(i+g+1/2) / (i+g+1/2)^(i+1/2)
//
//	and ln Γ(x), with z = x-1 and Z(z) = [1, 1/(1+z), ..., 1/(n-1+z)], is
//
//	  ln(Z·P) + (z+1/2)·ln(z+g+1/2) - (z+g+1/2)
//
// How:
//
//	The chain is derived once, in apd decimal arithmetic at Scale+GuardDigits
//	significant digits. The float64 vector used by LogGammaQuick is the decimal
//	vector narrowed entry by entry: evaluating the chain itself in float64 loses up
//	to eight digits to cancellation between the large entries of D·B·C. Both
//	evaluation paths share one generic formula over numeric.Field, so they cannot
//	diverge.
//
// Concurrency:
//
//	A *Tables is immutable after New returns and may be shared by any number of
//	goroutines. There is no package-level default instance.
//
// Defaults: g = 607/128, n = 15, scale = 30 (see DefaultG, DefaultN, DefaultScale).
package lanczos
