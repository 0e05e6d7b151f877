package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher hashes and verifies secrets with bcrypt.
type Hasher struct {
	cost int
}

// Option configures a Hasher.
type Option func(*Hasher)

// WithCost overrides the bcrypt work factor. Out of range values are ignored.
func WithCost(cost int) Option {
	return func(h *Hasher) {
		if cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
			h.cost = cost
		}
	}
}

// New returns a Hasher using bcrypt.DefaultCost unless overridden.
func New(opts ...Option) *Hasher {
	h := &Hasher{cost: bcrypt.DefaultCost}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// NewFromConfig builds a Hasher with the cost resolved from cfg.
func NewFromConfig(cfg Config, opts ...Option) *Hasher {
	return New(append([]Option{WithCost(cfg.Cost())}, opts...)...)
}

// Cost returns the configured work factor.
func (h *Hasher) Cost() int { return h.cost }

// Hash returns the bcrypt hash of plaintext with a fresh salt.
// Inputs longer than 72 bytes are rejected by bcrypt and reported as ErrHashing.
func (h *Hasher) Hash(plaintext string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", errors.Join(ErrHashing, err)
	}
	return string(b), nil
}

// Compare checks plaintext against hashed. It returns ErrMismatch on a wrong
// value and ErrMalformedHash when hashed is not a bcrypt hash.
func (h *Hasher) Compare(plaintext, hashed string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrMismatch
	default:
		return fmt.Errorf("%w: %v", ErrMalformedHash, err)
	}
}

// Verify reports whether plaintext matches hashed. Malformed hashes never match.
func (h *Hasher) Verify(plaintext, hashed string) bool {
	return h.Compare(plaintext, hashed) == nil
}

// IsHash reports whether s is structurally a bcrypt hash.
func IsHash(s string) bool {
	_, err := bcrypt.Cost([]byte(s))
	return err == nil
}
