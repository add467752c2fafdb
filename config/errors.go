package config

import "github.com/cockroachdb/errors"

var (
	// ErrUnsupportedFormat is returned for file extensions other than .yaml, .yml and .toml.
	ErrUnsupportedFormat = errors.New("config: unsupported file format")

	// ErrUnknownKey is returned when a file sets a key the Config does not define.
	ErrUnknownKey = errors.New("config: unknown key")

	// ErrInvalid is returned by Validate.
	ErrInvalid = errors.New("config: invalid value")
)
