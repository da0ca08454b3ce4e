package config

import "errors"

var (
	// ErrParsing is returned when environment variables cannot be parsed
	// into the target struct.
	ErrParsing = errors.New("config: failed to parse environment")

	// ErrNilPointer is returned when Load is given a nil target.
	ErrNilPointer = errors.New("config: nil pointer provided")
)
