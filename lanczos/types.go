// SPDX-License-Identifier: MIT

package lanczos

import (
	"github.com/cockroachdb/apd/v3"

	"github.com/katalvlaran/lvgamma/matrix"
)

// Parameters selects the Lanczos approximation.
//   - G     free parameter g (> 0)
//   - N     number of coefficients (>= 1)
//   - Scale decimal digits of the precise path; working precision is Scale+GuardDigits
type Parameters struct {
	G     float64 `yaml:"g" toml:"g"`
	N     int     `yaml:"n" toml:"n"`
	Scale int     `yaml:"scale" toml:"scale"`
}

// Tables holds the derived matrices and coefficient vectors for one Parameters value.
type Tables struct {
	params Parameters
	ctx    *apd.Context

	g     *apd.Decimal
	b     *matrix.Dense[*apd.Decimal]
	c     *matrix.Dense[*apd.Decimal]
	d     *matrix.Dense[*apd.Decimal]
	f     *matrix.Dense[*apd.Decimal]
	p     []*apd.Decimal
	pFast []float64
}
