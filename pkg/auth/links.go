package auth

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrymomot/kbooks/pkg/confirm"
	"github.com/dmitrymomot/kbooks/pkg/linkcodec"
)

// Route prefixes of the two confirmation links.
const (
	RegistrationRoute  = "/register/register"
	PasswordResetRoute = "/user/forgotten"
)

// RegistrationLink holds the still-encoded path segments of a registration link.
type RegistrationLink struct {
	Token          string `path:"token"`
	Username       string `path:"username"`
	HashedPassword string `path:"hpass"`
	Email          string `path:"email"`
	Expires        string `path:"expires"`
	// Language is the account language; it is not part of the link.
	Language string `path:"-"`
}

// ResetLink holds the still-encoded path segments of a password reset link.
type ResetLink struct {
	Token   string `path:"token"`
	Email   string `path:"email"`
	Expires string `path:"expires"`
}

func formatExpires(unix int64) string { return strconv.FormatInt(unix, 10) }

// parseExpires reads the expiry segment. A malformed or non-canonical value
// ("+0171...", "007") makes the link incorrect, so that only the exact
// segment the link was issued with verifies.
func parseExpires(raw string) (int64, error) {
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: expiry %q: %v", ErrIncorrectLink, raw, err)
	}
	if formatExpires(v) != raw {
		return 0, fmt.Errorf("%w: expiry %q is not in canonical form", ErrIncorrectLink, raw)
	}
	return v, nil
}

// decodeSegments decodes every segment or reports an incorrect link.
func decodeSegments(segments ...string) ([]string, error) {
	out, err := linkcodec.DecodeAll(segments...)
	if err != nil {
		return nil, errors.Join(ErrIncorrectLink, err)
	}
	return out, nil
}

// checkToken maps signer failures onto link outcomes.
func checkToken(signer TokenSigner, token string, fields ...string) error {
	err := signer.Check(token, fields...)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, confirm.ErrMalformedToken):
		return errors.Join(ErrInvalidLink, err)
	default:
		return errors.Join(ErrIncorrectLink, err)
	}
}

// buildLink joins base, route and already-encoded segments.
func buildLink(base, route string, segments ...string) string {
	n := len(base) + len(route)
	for _, s := range segments {
		n += len(s) + 1
	}
	b := make([]byte, 0, n)
	b = append(b, base...)
	b = append(b, route...)
	for _, s := range segments {
		b = append(b, '/')
		b = append(b, s...)
	}
	return string(b)
}
