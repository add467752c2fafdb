// SPDX-License-Identifier: MIT

package lanczos

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidParameters indicates G, N or Scale outside their valid ranges.
	ErrInvalidParameters = errors.New("lanczos: invalid parameters")

	// ErrDerivation indicates a decimal failure while deriving the tables.
	ErrDerivation = errors.New("lanczos: coefficient derivation failed")
)
