package linkcodec

import "errors"

var (
	// ErrDecode is the common parent of every decode failure.
	ErrDecode        = errors.New("linkcodec: cannot decode segment")
	ErrInvalidEscape = errors.New("linkcodec: invalid percent escape")
	ErrInvalidUTF8   = errors.New("linkcodec: decoded value is not valid UTF-8")
)
