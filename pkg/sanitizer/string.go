package sanitizer

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// RemoveExtraWhitespace trims s and collapses inner runs of whitespace into
// one space.
func RemoveExtraWhitespace(s string) string {
	return whitespaceRegex.ReplaceAllString(strings.TrimSpace(s), " ")
}

// NormalizeText trims s and puts it in Unicode NFC form, so that visually
// identical strings compare equal byte for byte.
func NormalizeText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
