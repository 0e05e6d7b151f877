// Package account mounts the registration, password reset and login routes.
package account

import (
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/kbooks/handler"
	"github.com/dmitrymomot/kbooks/pkg/auth"
	"github.com/dmitrymomot/kbooks/pkg/jwt"
	"github.com/dmitrymomot/kbooks/pkg/logger"
)

// registerOkFragment is appended to the front URL after a confirmed registration.
const registerOkFragment = "/#/?action=registerOk"

// Service serves the account endpoints on top of the auth flows.
type Service struct {
	registration *auth.Registration
	reset        *auth.PasswordReset
	authn        *auth.Authenticator
	tokens       *jwt.Service

	frontURL     string
	matcher      language.Matcher
	rateLimit    func(http.Handler) http.Handler
	errorHandler handler.ErrorHandler[handler.Context]
	logger       *slog.Logger
}

type Option func(*Service)

// WithFrontURL sets the web client origin used for post-registration redirects.
func WithFrontURL(url string) Option {
	return func(s *Service) { s.frontURL = strings.TrimRight(url, "/") }
}

// WithLanguages sets the account languages offered to new users. The first
// one is the fallback for unmatched Accept-Language headers.
func WithLanguages(tags ...language.Tag) Option {
	return func(s *Service) {
		if len(tags) > 0 {
			s.matcher = language.NewMatcher(tags)
		}
	}
}

// WithRateLimit wraps the unauthenticated POST routes.
func WithRateLimit(mw func(http.Handler) http.Handler) Option {
	return func(s *Service) { s.rateLimit = mw }
}

func WithErrorHandler(h handler.ErrorHandler[handler.Context]) Option {
	return func(s *Service) {
		if h != nil {
			s.errorHandler = h
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New returns the account Service.
func New(registration *auth.Registration, reset *auth.PasswordReset, authn *auth.Authenticator, tokens *jwt.Service, opts ...Option) *Service {
	s := &Service{
		registration: registration,
		reset:        reset,
		authn:        authn,
		tokens:       tokens,
		matcher:      language.NewMatcher([]language.Tag{language.English, language.French}),
		logger:       logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.errorHandler == nil {
		s.errorHandler = handler.NewErrorHandler(s.logger, nil)
	}
	return s
}

// languageOf picks the account language from the Accept-Language header.
func (s *Service) languageOf(r *http.Request) string {
	tag, _ := language.MatchStrings(s.matcher, r.Header.Get("Accept-Language"))
	base, _ := tag.Base()
	return base.String()
}
