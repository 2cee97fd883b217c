package domain

import "errors"

var (
	// ErrReadExport is returned when the export cannot be read at all.
	ErrReadExport = errors.New("export could not be read")
	// ErrEmptyExport is returned when the export has no header row.
	ErrEmptyExport = errors.New("export has no header row")
)
