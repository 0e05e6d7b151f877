package sanitizer

import (
	"regexp"
	"strings"
	"unicode"
)

var dotRegex = regexp.MustCompile(`\.+`)

// NormalizeEmail trims and lower-cases an address and collapses repeated
// dots in its local part. Input without exactly one "@" is only trimmed and
// lower-cased.
func NormalizeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))

	local, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") {
		return email
	}

	local = dotRegex.ReplaceAllString(local, ".")
	local = strings.Trim(local, ".")

	return local + "@" + domain
}

// NormalizeISBN drops hyphens and whitespace and upper-cases the "x" check
// digit. Other characters are kept for the validator to reject.
func NormalizeISBN(isbn string) string {
	var b strings.Builder
	b.Grow(len(isbn))
	for _, r := range isbn {
		switch {
		case r == '-' || unicode.IsSpace(r):
		case r == 'x':
			b.WriteRune('X')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
