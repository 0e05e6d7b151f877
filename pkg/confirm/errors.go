package confirm

import "errors"

var (
	ErrEmptySecret    = errors.New("confirm: signing secret is empty")
	ErrIssue          = errors.New("confirm: failed to issue token")
	ErrMalformedToken = errors.New("confirm: token is not a valid hash")
	ErrTokenMismatch  = errors.New("confirm: token does not match payload")
)
