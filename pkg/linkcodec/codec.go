package linkcodec

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

const upperhex = "0123456789ABCDEF"

// Codec is the value form of Encode/Decode, handy as a struct dependency.
type Codec struct{}

func (Codec) Encode(value string) string { return Encode(value) }

func (Codec) Decode(value string) (string, error) { return Decode(value) }

// DecodeAll decodes values in order and stops at the first failure.
func (Codec) DecodeAll(values ...string) ([]string, error) {
	return DecodeAll(values...)
}

// shouldEscape reports whether b must be percent-encoded inside a path segment.
func shouldEscape(b byte) bool {
	if b < 0x20 || b >= 0x7f {
		return true
	}
	switch b {
	case ' ', '"', '#', '<', '>', '`', '?', '{', '}', '%', '/':
		return true
	}
	return false
}

// Encode percent-encodes value for use as a single URL path segment.
func Encode(value string) string {
	n := 0
	for i := 0; i < len(value); i++ {
		if shouldEscape(value[i]) {
			n++
		}
	}
	if n == 0 {
		return value
	}

	var sb strings.Builder
	sb.Grow(len(value) + 2*n)
	for i := 0; i < len(value); i++ {
		c := value[i]
		if shouldEscape(c) {
			sb.WriteByte('%')
			sb.WriteByte(upperhex[c>>4])
			sb.WriteByte(upperhex[c&15])
			continue
		}
		sb.WriteByte(c)
	}
	return sb.String()
}

// Decode reverses Encode. Any "%XX" sequence is decoded, including ones Encode
// would not have produced. The result must be valid UTF-8.
func Decode(value string) (string, error) {
	if !strings.Contains(value, "%") {
		if !utf8.ValidString(value) {
			return "", errors.Join(ErrDecode, ErrInvalidUTF8)
		}
		return value, nil
	}

	buf := make([]byte, 0, len(value))
	for i := 0; i < len(value); i++ {
		c := value[i]
		if c != '%' {
			buf = append(buf, c)
			continue
		}
		if i+2 >= len(value) {
			return "", errors.Join(ErrDecode, fmt.Errorf("%w: truncated sequence at offset %d", ErrInvalidEscape, i))
		}
		hi, okHi := unhex(value[i+1])
		lo, okLo := unhex(value[i+2])
		if !okHi || !okLo {
			return "", errors.Join(ErrDecode, fmt.Errorf("%w: %q at offset %d", ErrInvalidEscape, value[i:i+3], i))
		}
		buf = append(buf, hi<<4|lo)
		i += 2
	}

	if !utf8.Valid(buf) {
		return "", errors.Join(ErrDecode, ErrInvalidUTF8)
	}
	return string(buf), nil
}

// DecodeAll decodes values in order and stops at the first failure.
func DecodeAll(values ...string) ([]string, error) {
	out := make([]string, len(values))
	for i, v := range values {
		d, err := Decode(v)
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}
		out[i] = d
	}
	return out, nil
}

func unhex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
