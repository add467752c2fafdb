package gamma

import "github.com/cockroachdb/errors"

// ErrNilTables is returned by New when no Lanczos tables are supplied.
var ErrNilTables = errors.New("gamma: nil lanczos tables")

// ErrUnknownPrecision is returned by ParsePrecisionMode for anything but quick or precise.
var ErrUnknownPrecision = errors.New("gamma: unknown precision mode")
