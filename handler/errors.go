package handler

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/kbooks/pkg/binder"
	"github.com/dmitrymomot/kbooks/pkg/validator"
)

var (
	// ErrNilResponse indicates a handler returned nil instead of a Response
	ErrNilResponse = errors.New("handler returned nil response")
)

// HTTPError is an error with its own status code and client message.
type HTTPError struct {
	Code int
	Key  string
}

func (e HTTPError) Error() string {
	return e.Key
}

var (
	ErrBadRequest   = HTTPError{Code: http.StatusBadRequest, Key: "Bad request"}
	ErrUnauthorized = HTTPError{Code: http.StatusUnauthorized, Key: "Unauthorized"}
	ErrNotFound     = HTTPError{Code: http.StatusNotFound, Key: "Not found"}
)

// StatusMap maps sentinel errors to HTTP status codes. Lookups use errors.Is,
// so wrapped and joined errors match.
type StatusMap map[error]int

// StatusCode returns the HTTP status for err. HTTPError wins, binder and
// validation failures are client errors and the remaining errors are looked
// up in statuses.
// Unknown errors are 500.
func StatusCode(err error, statuses StatusMap) int {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	switch {
	case errors.Is(err, binder.ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, binder.ErrInvalidJSON),
		errors.Is(err, binder.ErrInvalidForm),
		errors.Is(err, binder.ErrInvalidPath),
		errors.Is(err, binder.ErrMissingContentType),
		validator.IsValidationError(err):
		return http.StatusBadRequest
	}

	for target, code := range statuses {
		if errors.Is(err, target) {
			return code
		}
	}
	return http.StatusInternalServerError
}
