// Package library mounts the authenticated book endpoints under /api/book.
package library

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dmitrymomot/kbooks/handler"
	"github.com/dmitrymomot/kbooks/pkg/binder"
	"github.com/dmitrymomot/kbooks/pkg/jwt"
	"github.com/dmitrymomot/kbooks/pkg/library"
)

// Service serves the book endpoints for the bearer of a valid token.
type Service struct {
	books        *library.Service
	tokens       *jwt.Service
	errorHandler handler.ErrorHandler[handler.Context]
}

// New returns the book Service. A nil errorHandler uses the unlogged default.
func New(books *library.Service, tokens *jwt.Service, errorHandler handler.ErrorHandler[handler.Context]) *Service {
	if errorHandler == nil {
		errorHandler = handler.NewErrorHandler(nil, nil)
	}
	return &Service{books: books, tokens: tokens, errorHandler: errorHandler}
}

type createResponse struct {
	Success bool          `json:"success"`
	Book    *library.Book `json:"book,omitempty"`
	Error   *string       `json:"error"`
}

type listResponse struct {
	Success bool           `json:"success"`
	Books   []library.Book `json:"books"`
	Error   *string        `json:"error"`
}

// Handle returns the routes, meant to be mounted at /api/book.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()
	r.Use(jwt.Middleware(s.tokens, func(w http.ResponseWriter, r *http.Request, err error) {
		s.errorHandler(handler.NewContext(w, r), err)
	}))

	r.Post("/create", handler.Wrap(s.create,
		handler.WithBinders[handler.Context, library.NewBook](binder.Form(), binder.JSON()),
		handler.WithErrorHandler[handler.Context, library.NewBook](s.errorHandler),
	))
	r.Get("/list", handler.Wrap(s.list,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))
	return r
}

// owner returns the user id carried by the token subject.
func owner(ctx handler.Context) (uuid.UUID, error) {
	claims, ok := jwt.ClaimsFromContext(ctx)
	if !ok {
		return uuid.Nil, handler.ErrUnauthorized
	}
	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, handler.ErrUnauthorized
	}
	return id, nil
}

func (s *Service) create(ctx handler.Context, req library.NewBook) handler.Response {
	userID, err := owner(ctx)
	if err != nil {
		return handler.Error(err)
	}

	book, err := s.books.Create(ctx, userID, req)
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(createResponse{Success: true, Book: &book})
}

func (s *Service) list(ctx handler.Context, _ struct{}) handler.Response {
	userID, err := owner(ctx)
	if err != nil {
		return handler.Error(err)
	}

	books, err := s.books.List(ctx, userID)
	if err != nil {
		return handler.Error(err)
	}
	if books == nil {
		books = []library.Book{}
	}
	return handler.JSON(listResponse{Success: true, Books: books})
}
