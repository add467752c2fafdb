// SPDX-License-Identifier: MIT

// Package matrix provides a small generic dense matrix used to assemble the Lanczos
// coefficient chain P = D·B·C·F at any scalar precision.
//
// Dense[T] stores elements row-major in a flat slice (offset = i*cols + j). Public
// accessors validate indices and return sentinel errors instead of panicking.
// Arithmetic is delegated to a Ring[T], so the same code multiplies float64 and
// arbitrary-precision decimal matrices; numeric.Field values satisfy Ring.
//
// Determinism: loops run in fixed i-k-j order; the accumulation order of every
// product entry is the same for every scalar type.
//
// Complexity quicksheet:
//   - NewDense: O(r*c); At/Set: O(1); Clone/Transpose: O(r*c); Mul: O(r*k*c).
package matrix
