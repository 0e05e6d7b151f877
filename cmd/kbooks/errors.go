package main

import (
	"net/http"

	"github.com/dmitrymomot/kbooks/handler"
	"github.com/dmitrymomot/kbooks/pkg/auth"
	"github.com/dmitrymomot/kbooks/pkg/jwt"
	"github.com/dmitrymomot/kbooks/pkg/library"
)

// statusMap maps domain errors onto HTTP statuses for the API error handler.
func statusMap() handler.StatusMap {
	return handler.StatusMap{
		auth.ErrInvalidInput:    http.StatusBadRequest,
		auth.ErrUnauthorized:    http.StatusUnauthorized,
		library.ErrInvalidBook:  http.StatusBadRequest,
		library.ErrUnknownOwner: http.StatusUnauthorized,
		jwt.ErrMissingToken:     http.StatusUnauthorized,
		jwt.ErrInvalidToken:     http.StatusUnauthorized,
		jwt.ErrExpiredToken:     http.StatusUnauthorized,
	}
}
