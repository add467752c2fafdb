// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Mul computes a·b over the ring r.
// Implementation:
//   - Stage 1: validate non-nil operands and a.Cols == b.Rows.
//   - Stage 2: accumulate in i-k-j order directly on the flat buffers.
//
// Every entry res[i][j] is the left-to-right sum over k of a[i][k]*b[k][j],
// so the rounding sequence is identical for every scalar type.
// Complexity: O(a.Rows * a.Cols * b.Cols).
func Mul[T any](r Ring[T], a, b *Dense[T]) (*Dense[T], error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opMul, ErrNilMatrix)
	}
	if a.c != b.r {
		return nil, matrixErrorf(opMul, fmt.Errorf("%dx%d · %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch))
	}
	res, err := NewDense(a.r, b.c, r.Zero())
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var rowA, rowB, rowR int
	for i := 0; i < a.r; i++ {
		rowA = i * a.c
		rowR = i * b.c
		for k := 0; k < a.c; k++ {
			av := a.data[rowA+k]
			rowB = k * b.c
			for j := 0; j < b.c; j++ {
				res.data[rowR+j] = r.Add(res.data[rowR+j], r.Mul(av, b.data[rowB+j]))
			}
		}
	}

	return res, nil
}

// Transpose returns the c×r transpose of m.
func Transpose[T any](m *Dense[T]) (*Dense[T], error) {
	if m == nil {
		return nil, matrixErrorf(opTranspose, ErrNilMatrix)
	}
	data := make([]T, len(m.data))
	for i := 0; i < m.r; i++ {
		base := i * m.c
		for j := 0; j < m.c; j++ {
			data[j*m.r+i] = m.data[base+j]
		}
	}

	return &Dense[T]{r: m.c, c: m.r, data: data}, nil
}

// Map returns a new matrix with fn applied to every element (row-major order).
func Map[T, U any](m *Dense[T], fn func(T) U) *Dense[U] {
	data := make([]U, len(m.data))
	for i, v := range m.data {
		data[i] = fn(v)
	}

	return &Dense[U]{r: m.r, c: m.c, data: data}
}
