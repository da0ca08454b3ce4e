package person

import "errors"

var (
	// ErrInvalidAgeRange is returned when WithAgeRange is given a negative
	// minimum or a minimum above the maximum.
	ErrInvalidAgeRange = errors.New("person: invalid age range")

	// ErrInvalidGender is returned when WithGender is given a value outside
	// the Gender enum.
	ErrInvalidGender = errors.New("person: invalid gender")
)
