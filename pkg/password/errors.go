package password

import "errors"

var (
	ErrHashing       = errors.New("password: failed to hash value")
	ErrMalformedHash = errors.New("password: malformed hash")
	ErrMismatch      = errors.New("password: value does not match hash")
)
