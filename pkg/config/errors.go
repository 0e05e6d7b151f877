package config

import "errors"

var (
	// ErrParsingConfig is returned when the environment cannot be parsed into the target struct,
	// including when a required variable is missing.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrNilPointer is returned when a nil pointer is passed to a loader.
	ErrNilPointer = errors.New("nil pointer provided to config loader")
)
