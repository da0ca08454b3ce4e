package formats

import "errors"

var (
	// ErrNoColumns is returned when a CSV export is attempted without a
	// column set.
	ErrNoColumns = errors.New("formats: csv export requires at least one column")

	// ErrNilWriter is returned when an exporter is given a nil writer.
	ErrNilWriter = errors.New("formats: writer must not be nil")
)
