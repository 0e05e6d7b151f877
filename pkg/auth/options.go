package auth

import (
	"log/slog"
	"strings"
	"time"

	"github.com/dmitrymomot/kbooks/pkg/logger"
	"github.com/dmitrymomot/kbooks/pkg/password"
)

// DefaultLinkTTL is how long a confirmation link stays valid.
const DefaultLinkTTL = 24 * time.Hour

// Flow names, used in logs and metrics.
const (
	FlowRegistration  = "registration"
	FlowPasswordReset = "password_reset"
	FlowLogin         = "login"
)

// PasswordHasher hashes account passwords.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hashed string) bool
}

// TokenSigner issues and checks confirmation tokens over ordered fields.
type TokenSigner interface {
	Issue(fields ...string) (string, error)
	Check(token string, fields ...string) error
}

// Observer is notified of every flow step outcome. outcome is "success",
// "error" for faults, or the client-facing failure message.
type Observer interface {
	ObserveOutcome(flow, step, outcome string)
}

type noopObserver struct{}

func (noopObserver) ObserveOutcome(string, string, string) {}

type options struct {
	hasher          PasswordHasher
	baseURL         string
	ttl             time.Duration
	now             func() time.Time
	logger          *slog.Logger
	observer        Observer
	defaultLanguage string
}

// Option configures the Registration, PasswordReset and Authenticator services.
type Option func(*options)

// WithHasher sets the account password hasher. Defaults to bcrypt at the default cost.
func WithHasher(h PasswordHasher) Option {
	return func(o *options) {
		if h != nil {
			o.hasher = h
		}
	}
}

// WithBaseURL sets the scheme and host that confirmation links start with.
func WithBaseURL(base string) Option {
	return func(o *options) { o.baseURL = strings.TrimRight(base, "/") }
}

// WithLinkTTL overrides DefaultLinkTTL.
func WithLinkTTL(ttl time.Duration) Option {
	return func(o *options) {
		if ttl > 0 {
			o.ttl = ttl
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func WithObserver(obs Observer) Option {
	return func(o *options) {
		if obs != nil {
			o.observer = obs
		}
	}
}

// WithDefaultLanguage sets the language stored on accounts whose
// confirmation request did not name one.
func WithDefaultLanguage(lang string) Option {
	return func(o *options) {
		if lang != "" {
			o.defaultLanguage = lang
		}
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		hasher:          password.New(),
		baseURL:         "http://localhost:8080",
		ttl:             DefaultLinkTTL,
		now:             time.Now,
		logger:          logger.Discard(),
		observer:        noopObserver{},
		defaultLanguage: "en",
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
