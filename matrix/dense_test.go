// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgamma/matrix"
	"github.com/katalvlaran/lvgamma/numeric"
)

// TestNewDense_InvalidDimensions ensures non-positive shapes are rejected.
func TestNewDense_InvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 3, 0.0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(3, -1, 0.0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestDense_AtSetBounds verifies the checked accessors.
func TestDense_AtSetBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 3, 0.0)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())

	require.NoError(t, m.Set(1, 2, 7.5))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 7.5, v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 3, 1), matrix.ErrOutOfRange)
	_, err = m.Col(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestFromRows_Ragged ensures unequal rows are rejected.
func TestFromRows_Ragged(t *testing.T) {
	_, err := matrix.FromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrRaggedRows)

	_, err = matrix.FromRows([][]float64{})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestDense_CloneIsIndependent checks that mutations of a clone do not leak.
func TestDense_CloneIsIndependent(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 100))

	v, _ := m.At(0, 0)
	assert.Equal(t, 1.0, v)
}

// TestDense_String pins the row-per-line rendering.
func TestDense_String(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{1, 2.5}, {-3, 0}})
	require.NoError(t, err)
	assert.Equal(t, "[1, 2.5]\n[-3, 0]\n", m.String())
}

// TestDiagonal builds a diagonal matrix and reads a column.
func TestDiagonal(t *testing.T) {
	d, err := matrix.Diagonal([]float64{1, -1, -6}, 0)
	require.NoError(t, err)

	col, err := d.Col(2)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, -6}, col)

	_, err = matrix.Diagonal([]float64{}, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestMul_Float multiplies small float64 matrices.
func TestMul_Float(t *testing.T) {
	a, _ := matrix.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	b, _ := matrix.FromRows([][]float64{{7}, {8}, {9}})

	p, err := matrix.Mul[float64](numeric.Float{}, a, b)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Rows())
	assert.Equal(t, 1, p.Cols())

	col, _ := p.Col(0)
	assert.Equal(t, []float64{50, 122}, col)
}

// TestMul_Errors covers nil operands and shape mismatch.
func TestMul_Errors(t *testing.T) {
	a, _ := matrix.FromRows([][]float64{{1, 2}})

	_, err := matrix.Mul[float64](numeric.Float{}, a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Mul[float64](numeric.Float{}, nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMul_DecimalMatchesFloat checks that the decimal ring reproduces exact integer products.
func TestMul_DecimalMatchesFloat(t *testing.T) {
	dec := numeric.NewDecimal(numeric.NewContext(40))
	rows := [][]int64{{1, -2}, {3, 4}}

	a, err := matrix.NewDense(2, 2, dec.Zero())
	require.NoError(t, err)
	for i, row := range rows {
		for j, v := range row {
			require.NoError(t, a.Set(i, j, dec.FromInt64(v)))
		}
	}

	sq, err := matrix.Mul[*apd.Decimal](dec, a, a)
	require.NoError(t, err)
	require.NoError(t, dec.Err())

	asFloat := matrix.Map(sq, dec.Float64)
	col0, _ := asFloat.Col(0)
	col1, _ := asFloat.Col(1)
	assert.Equal(t, []float64{-5, 15}, col0)
	assert.Equal(t, []float64{-10, 10}, col1)
}

// TestTranspose flips a 2x3 matrix.
func TestTranspose(t *testing.T) {
	a, _ := matrix.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})

	tr, err := matrix.Transpose(a)
	require.NoError(t, err)
	assert.Equal(t, 3, tr.Rows())
	assert.Equal(t, "[1, 4]\n[2, 5]\n[3, 6]\n", tr.String())

	_, err = matrix.Transpose[float64](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
