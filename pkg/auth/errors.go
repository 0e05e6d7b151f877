package auth

import (
	"errors"
	"fmt"
)

// Outcome messages exposed to clients.
const (
	MsgInvalidHashLink = "Invalid hash link"
	MsgIncorrectLink   = "Incorrect link"
	MsgLinkExpired     = "Link validity expired"
	MsgEmailTaken      = "Email already taken"
	MsgUsernameTaken   = "Username already taken"
	MsgEmailNotFound   = "Email does not exist"
	MsgBadCredentials  = "Username and Password don't match"
)

// Business outcomes.
var (
	ErrInvalidLink   = errors.New("auth: invalid link")
	ErrIncorrectLink = errors.New("auth: incorrect link")
	ErrLinkExpired   = errors.New("auth: link expired")
	ErrConflict      = errors.New("auth: conflict")
)

// Faults.
var (
	ErrInvalidInput   = errors.New("auth: invalid input")
	ErrUnauthorized   = errors.New("auth: unauthorized")
	ErrStorageFailure = errors.New("auth: storage failure")
	ErrMailFailure    = errors.New("auth: failed to send email")
	ErrInternal       = errors.New("auth: internal error")
)

// Store errors. UserStore implementations must return these.
var (
	ErrUserNotFound      = errors.New("auth: user not found")
	ErrUserAlreadyExists = errors.New("auth: user already exists")
)

// ConflictError is a precondition failure against the user store.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string { return fmt.Sprintf("auth: conflict: %s", e.Reason) }

func (e *ConflictError) Is(target error) bool { return target == ErrConflict }

func conflict(reason string) error { return &ConflictError{Reason: reason} }

// ResultFromError turns a business outcome into its Result. The boolean is
// false for faults, which have no client-facing message.
func ResultFromError(err error) (Result, bool) {
	var c *ConflictError
	switch {
	case err == nil:
		return Success(), true
	case errors.As(err, &c):
		return Failure(c.Reason), true
	case errors.Is(err, ErrInvalidLink):
		return Failure(MsgInvalidHashLink), true
	case errors.Is(err, ErrIncorrectLink):
		return Failure(MsgIncorrectLink), true
	case errors.Is(err, ErrLinkExpired):
		return Failure(MsgLinkExpired), true
	}
	return Result{}, false
}
