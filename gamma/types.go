package gamma

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// PrecisionMode selects the Lanczos evaluation path.
type PrecisionMode int

const (
	// Quick evaluates in float64 with the narrowed coefficients.
	Quick PrecisionMode = iota
	// Precise evaluates in decimal arithmetic at the tables' working precision.
	Precise
)

// String returns "quick" or "precise".
func (m PrecisionMode) String() string {
	switch m {
	case Quick:
		return "quick"
	case Precise:
		return "precise"
	default:
		return "unknown"
	}
}

// ParsePrecisionMode maps "quick" or "precise" (any case) onto a PrecisionMode.
func ParsePrecisionMode(s string) (PrecisionMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "quick":
		return Quick, nil
	case "precise":
		return Precise, nil
	}

	return Quick, errors.Wrapf(ErrUnknownPrecision, "ParsePrecisionMode(%q): want quick or precise", s)
}
