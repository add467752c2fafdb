// SPDX-License-Identifier: MIT

package lanczos

import (
	"math"

	"github.com/cockroachdb/errors"
)

const (
	// DefaultG is the Lanczos g used by Godfrey's 15-term table.
	DefaultG = 607.0 / 128.0

	// DefaultN is the number of coefficients.
	DefaultN = 15

	// DefaultScale is the number of decimal digits requested for the precise path.
	DefaultScale = 30

	// GuardDigits are added to Scale to absorb cancellation inside D·B·C.
	GuardDigits = 20

	// maxN bounds the O(n^3) derivation and the size of the exact integer entries.
	maxN = 60
)

// Option mutates Parameters.
type Option func(*Parameters)

// DefaultParameters returns g = 607/128, n = 15, scale = 30.
func DefaultParameters() Parameters {
	return Parameters{G: DefaultG, N: DefaultN, Scale: DefaultScale}
}

// WithG sets g. Panics if g is not a positive finite number.
func WithG(g float64) Option {
	if !(g > 0) || math.IsInf(g, 0) {
		panic("lanczos: WithG requires a positive finite g")
	}

	return func(p *Parameters) { p.G = g }
}

// WithN sets the number of coefficients. Panics if n is outside [1, 60].
func WithN(n int) Option {
	if n < 1 || n > maxN {
		panic("lanczos: WithN requires 1 <= n <= 60")
	}

	return func(p *Parameters) { p.N = n }
}

// WithScale sets the decimal digits of the precise path. Panics if scale < 1.
func WithScale(scale int) Option {
	if scale < 1 {
		panic("lanczos: WithScale requires scale >= 1")
	}

	return func(p *Parameters) { p.Scale = scale }
}

// Validate reports whether p can be derived; it is the error-returning counterpart
// of the option panics, used for parameters read from files or flags.
func (p Parameters) Validate() error {
	switch {
	case !(p.G > 0) || math.IsInf(p.G, 0):
		return errors.Wrapf(ErrInvalidParameters, "g=%g must be positive and finite", p.G)
	case p.N < 1 || p.N > maxN:
		return errors.Wrapf(ErrInvalidParameters, "n=%d must be in [1, %d]", p.N, maxN)
	case p.Scale < 1:
		return errors.Wrapf(ErrInvalidParameters, "scale=%d must be >= 1", p.Scale)
	}

	return nil
}

// Precision returns the decimal working precision, Scale+GuardDigits.
func (p Parameters) Precision() uint32 {
	return uint32(p.Scale + GuardDigits)
}
