// SPDX-License-Identifier: MIT

package lanczos

import (
	"github.com/cockroachdb/apd/v3"
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvgamma/matrix"
	"github.com/katalvlaran/lvgamma/numeric"
	"github.com/katalvlaran/lvgamma/numerr"
)

// New derives the tables for the given options (defaults: DefaultParameters).
func New(opts ...Option) (*Tables, error) {
	p := DefaultParameters()
	for _, fn := range opts {
		if fn != nil {
			fn(&p)
		}
	}

	return NewFromParameters(p)
}

// NewFromParameters validates p and derives its tables.
// Complexity: O(n^3) decimal operations plus n exp/pow evaluations.
func NewFromParameters(p Parameters) (*Tables, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	ctx := numeric.NewContext(p.Precision())
	dec := numeric.NewDecimal(ctx)
	g := dec.FromFloat64(p.G)

	ch, err := deriveChain[*apd.Decimal](dec, g, p.N)
	if err != nil {
		return nil, errors.Wrapf(err, "lanczos.New(g=%g, n=%d, scale=%d)", p.G, p.N, p.Scale)
	}
	fast, err := matrix.Map(ch.pm, dec.Float64).Col(0)
	if err != nil {
		return nil, errors.Wrapf(err, "lanczos.New(g=%g, n=%d, scale=%d)", p.G, p.N, p.Scale)
	}
	if err = dec.Err(); err != nil {
		return nil, errors.Wrapf(numerr.Tag(err, ErrDerivation), "lanczos.New(g=%g, n=%d, scale=%d)", p.G, p.N, p.Scale)
	}

	return &Tables{
		params: p,
		ctx:    ctx,
		g:      g,
		b:      ch.b,
		c:      ch.c,
		d:      ch.d,
		f:      ch.f,
		p:      ch.p,
		pFast:  fast,
	}, nil
}

// chain is the intermediate result of a derivation in one field.
type chain[T any] struct {
	b, c, d, f *matrix.Dense[T]
	pm         *matrix.Dense[T] // n×1 product
	p          []T
}

// deriveChain builds B, C, D, F and P = ((D·B)·C)·F in the field fl.
func deriveChain[T any](fl numeric.Field[T], g T, n int) (chain[T], error) {
	var ch chain[T]
	var err error

	if ch.b, err = binomialMatrix(fl, n); err != nil {
		return ch, err
	}
	if ch.c, err = chebyshevMatrix(fl, n); err != nil {
		return ch, err
	}
	if ch.d, err = scalingMatrix(fl, n); err != nil {
		return ch, err
	}
	if ch.f, err = exponentialVector(fl, g, n); err != nil {
		return ch, err
	}

	db, err := matrix.Mul[T](fl, ch.d, ch.b)
	if err != nil {
		return ch, err
	}
	dbc, err := matrix.Mul[T](fl, db, ch.c)
	if err != nil {
		return ch, err
	}
	if ch.pm, err = matrix.Mul[T](fl, dbc, ch.f); err != nil {
		return ch, err
	}
	if ch.p, err = ch.pm.Col(0); err != nil {
		return ch, err
	}

	return ch, nil
}

// signed returns v negated when e is odd.
func signed[T any](fl numeric.Field[T], e int, v T) T {
	if e%2 != 0 {
		return fl.Neg(v)
	}

	return v
}

// binomialMatrix: B[0][j] = 1; B[i][j] = (-1)^(j-i)·C(i+j-1, j-i) for j >= i >= 1.
func binomialMatrix[T any](fl numeric.Field[T], n int) (*matrix.Dense[T], error) {
	b, err := matrix.NewDense(n, n, fl.Zero())
	if err != nil {
		return nil, err
	}
	for j := 0; j < n; j++ {
		if err = b.Set(0, j, fl.One()); err != nil {
			return nil, err
		}
	}
	for i := 1; i < n; i++ {
		for j := i; j < n; j++ {
			v := signed(fl, j-i, fl.Binomial(int64(i+j-1), int64(j-i)))
			if err = b.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return b, nil
}

// chebyshevMatrix: C[0][0] = 1/2; C[i][j] = (-1)^(i-j)·Σ_{k=0..i} C(2i,2k)·C(k, k+j-i) for j <= i.
func chebyshevMatrix[T any](fl numeric.Field[T], n int) (*matrix.Dense[T], error) {
	rows := make([][]T, n)
	for i := range rows {
		rows[i] = make([]T, n)
		for j := range rows[i] {
			rows[i][j] = fl.Zero()
		}
	}
	if n > 0 {
		rows[0][0] = fl.FromRatio(1, 2)
	}
	for i := 1; i < n; i++ {
		for j := 0; j <= i; j++ {
			sum := fl.Zero()
			for k := 0; k <= i; k++ {
				// C(k, k+j-i) vanishes for k+j-i < 0
				sum = fl.Add(sum, fl.Mul(fl.Binomial(int64(2*i), int64(2*k)), fl.Binomial(int64(k), int64(k+j-i))))
			}
			rows[i][j] = signed(fl, i-j, sum)
		}
	}

	return matrix.FromRows(rows)
}

// scalingMatrix: D[0][0] = 1, D[1][1] = -1, D[i][i] = D[i-1][i-1]·2(2i-1)/(i-1).
func scalingMatrix[T any](fl numeric.Field[T], n int) (*matrix.Dense[T], error) {
	diag := make([]T, n)
	diag[0] = fl.One()
	if n > 1 {
		diag[1] = fl.Neg(fl.One())
	}
	for i := 2; i < n; i++ {
		diag[i] = fl.Quo(fl.Mul(diag[i-1], fl.FromInt64(int64(2*(2*i-1)))), fl.FromInt64(int64(i-1)))
	}

	return matrix.Diagonal(diag, fl.Zero())
}

// exponentialVector: F[i] = 2·(i+1)···(2i)/4^i · e^a / a^(i+1/2) with a = i+g+1/2.
func exponentialVector[T any](fl numeric.Field[T], g T, n int) (*matrix.Dense[T], error) {
	f, err := matrix.NewDense(n, 1, fl.Zero())
	if err != nil {
		return nil, err
	}
	half := fl.FromRatio(1, 2)
	four := fl.FromInt64(4)
	for i := 0; i < n; i++ {
		rising := fl.FromInt64(2)
		for k := i + 1; k <= 2*i; k++ {
			rising = fl.Mul(rising, fl.FromInt64(int64(k)))
		}
		pow4 := fl.One()
		for k := 0; k < i; k++ {
			pow4 = fl.Mul(pow4, four)
		}
		a := fl.Add(fl.Add(fl.FromInt64(int64(i)), g), half)
		num := fl.Mul(fl.Quo(rising, pow4), fl.Exp(a))
		den := fl.Pow(a, fl.FromRatio(int64(2*i+1), 2))
		if err = f.Set(i, 0, fl.Quo(num, den)); err != nil {
			return nil, err
		}
	}

	return f, nil
}
