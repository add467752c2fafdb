// SPDX-License-Identifier: MIT

package numerr

import "github.com/cockroachdb/errors"

var (
	// ErrDomain marks an argument outside the function's domain.
	ErrDomain = errors.New("numerr: argument outside domain")

	// ErrUndefined marks an undefined (NaN) input.
	ErrUndefined = errors.New("numerr: undefined input")

	// ErrNoConvergence marks an iteration that exhausted its budget.
	ErrNoConvergence = errors.New("numerr: no convergence")
)

// Category is a coarse classification of an evaluation error.
type Category int

const (
	// CategoryNone is returned for nil errors.
	CategoryNone Category = iota
	// CategoryDomain groups ErrDomain.
	CategoryDomain
	// CategoryUndefined groups ErrUndefined.
	CategoryUndefined
	// CategoryNoConvergence groups ErrNoConvergence.
	CategoryNoConvergence
	// CategoryOther is any error outside the taxonomy.
	CategoryOther
)

// String returns the lower-case category name used in CLI and metric labels.
func (c Category) String() string {
	switch c {
	case CategoryNone:
		return "ok"
	case CategoryDomain:
		return "domain"
	case CategoryUndefined:
		return "undefined"
	case CategoryNoConvergence:
		return "no_convergence"
	default:
		return "other"
	}
}

// Classify maps err onto its Category.
func Classify(err error) Category {
	switch {
	case err == nil:
		return CategoryNone
	case errors.Is(err, ErrDomain):
		return CategoryDomain
	case errors.Is(err, ErrUndefined):
		return CategoryUndefined
	case errors.Is(err, ErrNoConvergence):
		return CategoryNoConvergence
	default:
		return CategoryOther
	}
}

// Domainf returns ErrDomain wrapped with an operation context.
func Domainf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrDomain, format, args...)
}

// Undefinedf returns ErrUndefined wrapped with an operation context.
func Undefinedf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrUndefined, format, args...)
}

// Tag attaches kind to err. errors.Is(Tag(err, kind), kind) holds for the
// standard library as well as for cockroachdb/errors, and err stays in the
// Unwrap chain. Tag(nil, kind) is nil.
func Tag(err, kind error) error {
	if err == nil {
		return nil
	}

	return &tagged{cause: err, kind: kind}
}

type tagged struct {
	cause error
	kind  error
}

func (t *tagged) Error() string { return t.cause.Error() }

func (t *tagged) Unwrap() error { return t.cause }

// Is matches the attached kind, or anything the kind itself matches.
func (t *tagged) Is(target error) bool {
	return target == t.kind || errors.Is(t.kind, target)
}
