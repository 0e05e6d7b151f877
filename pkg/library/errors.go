package library

import "errors"

var (
	ErrInvalidBook    = errors.New("library: invalid book")
	ErrStorageFailure = errors.New("library: storage failure")
	ErrUnknownOwner   = errors.New("library: unknown owner")
)
