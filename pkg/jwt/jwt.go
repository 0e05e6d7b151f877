// Package jwt issues and validates HS256 bearer tokens for the kbooks API.
//
// Tokens carry the user id, login, email and language of the authenticated
// account so that handlers can answer "who am I" without a store lookup.
package jwt

import (
	"errors"
	"fmt"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
)

// Claims is the token body.
type Claims struct {
	gojwt.RegisteredClaims
	Login    string `json:"login"`
	Email    string `json:"email"`
	Language string `json:"lang,omitempty"`
}

// Config holds token settings from the environment.
type Config struct {
	Secret string        `env:"JWT_SECRET"`
	TTL    time.Duration `env:"JWT_TTL" envDefault:"24h"`
	Issuer string        `env:"JWT_ISSUER" envDefault:"kbooks"`
}

// Service signs and parses tokens.
type Service struct {
	key    []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

type Option func(*Service)

func WithTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

func WithIssuer(issuer string) Option {
	return func(s *Service) { s.issuer = issuer }
}

// WithClock replaces time.Now for issuing and validating tokens.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// New returns a Service signing with key.
func New(key string, opts ...Option) (*Service, error) {
	if key == "" {
		return nil, ErrMissingSigningKey
	}
	s := &Service{
		key:    []byte(key),
		ttl:    24 * time.Hour,
		issuer: "kbooks",
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// NewFromConfig builds a Service from cfg.
func NewFromConfig(cfg Config, opts ...Option) (*Service, error) {
	return New(cfg.Secret, append([]Option{WithTTL(cfg.TTL), WithIssuer(cfg.Issuer)}, opts...)...)
}

// Issue signs claims for subject. Registered time fields are filled in.
func (s *Service) Issue(subject string, claims Claims) (string, error) {
	now := s.now()
	claims.Subject = subject
	claims.Issuer = s.issuer
	claims.IssuedAt = gojwt.NewNumericDate(now)
	claims.ExpiresAt = gojwt.NewNumericDate(now.Add(s.ttl))

	signed, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("jwt: sign token: %w", err)
	}
	return signed, nil
}

// Parse validates token and returns its claims.
func (s *Service) Parse(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := gojwt.ParseWithClaims(token, claims,
		func(*gojwt.Token) (any, error) { return s.key, nil },
		gojwt.WithValidMethods([]string{gojwt.SigningMethodHS256.Alg()}),
		gojwt.WithIssuer(s.issuer),
		gojwt.WithTimeFunc(s.now),
		gojwt.WithExpirationRequired(),
	)
	switch {
	case errors.Is(err, gojwt.ErrTokenExpired):
		return nil, ErrExpiredToken
	case err != nil:
		return nil, errors.Join(ErrInvalidToken, err)
	case !parsed.Valid:
		return nil, ErrInvalidToken
	}
	return claims, nil
}
