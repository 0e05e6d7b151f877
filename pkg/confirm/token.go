package confirm

import (
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"

	"github.com/dmitrymomot/kbooks/pkg/password"
)

// Hasher is the one-way primitive used to sign payloads.
type Hasher interface {
	Hash(plaintext string) (string, error)
	Compare(plaintext, hashed string) error
}

// Signer issues and verifies confirmation tokens bound to a process secret.
type Signer struct {
	hasher Hasher
	secret []byte
}

// NewSigner returns a Signer. The secret is copied and never exposed again.
func NewSigner(hasher Hasher, secret string) (*Signer, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	if hasher == nil {
		hasher = password.New()
	}
	return &Signer{hasher: hasher, secret: []byte(secret)}, nil
}

// MustNewSigner is NewSigner that panics on error.
func MustNewSigner(hasher Hasher, secret string) *Signer {
	s, err := NewSigner(hasher, secret)
	if err != nil {
		panic(err)
	}
	return s
}

// BuildPayload concatenates fields and secret in order, without delimiter.
func BuildPayload(fields []string, secret []byte) string {
	n := len(secret)
	for _, f := range fields {
		n += len(f)
	}
	var sb strings.Builder
	sb.Grow(n)
	for _, f := range fields {
		sb.WriteString(f)
	}
	sb.Write(secret)
	return sb.String()
}

// digest folds a payload of any length into bcrypt's 72 byte input window.
func digest(payload string) string {
	sum := sha256.Sum256([]byte(payload))
	return base64.StdEncoding.EncodeToString(sum[:])
}

// Issue returns a fresh token for fields.
func (s *Signer) Issue(fields ...string) (string, error) {
	token, err := s.hasher.Hash(digest(BuildPayload(fields, s.secret)))
	if err != nil {
		return "", errors.Join(ErrIssue, err)
	}
	return token, nil
}

// Check verifies token against fields. It returns ErrMalformedToken when the
// token is not a hash at all and ErrTokenMismatch for any other failure.
func (s *Signer) Check(token string, fields ...string) error {
	if !password.IsHash(token) {
		return ErrMalformedToken
	}
	if err := s.hasher.Compare(digest(BuildPayload(fields, s.secret)), token); err != nil {
		if errors.Is(err, password.ErrMalformedHash) {
			return ErrMalformedToken
		}
		return ErrTokenMismatch
	}
	return nil
}

// Verify reports whether token was issued for fields by this secret.
func (s *Signer) Verify(token string, fields ...string) bool {
	return s.Check(token, fields...) == nil
}
