package domain

import "errors"

var (
	// ErrNotFound is returned when a directly requested record does not
	// exist. Dangling foreign keys inside aggregates degrade to nil
	// snapshots instead.
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument is returned for malformed input (bad
	// coordinates, negative radius, unknown enum values).
	ErrInvalidArgument = errors.New("invalid argument")
)
