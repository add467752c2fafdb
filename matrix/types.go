// SPDX-License-Identifier: MIT

package matrix

// Ring is the scalar arithmetic Dense operations need.
// Implementations must return fresh values and never mutate operands.
type Ring[T any] interface {
	Zero() T
	Add(a, b T) T
	Mul(a, b T) T
}

// operation tags used in error wrappers
const (
	opMul       = "Mul"
	opTranspose = "Transpose"
	opFromRows  = "FromRows"
	opDiagonal  = "Diagonal"
	ctxAt       = "At"
	ctxSet      = "Set"
)
