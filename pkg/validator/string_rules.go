package validator

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Required fails for empty or whitespace-only values.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{Field: field, Message: "field is required"},
	}
}

// MinLen checks the length of value in bytes.
func MinLen(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) >= min
		},
		Error: ValidationError{Field: field, Message: fmt.Sprintf("must be at least %d characters long", min)},
	}
}

// MaxLen checks the length of value in bytes.
func MaxLen(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) <= max
		},
		Error: ValidationError{Field: field, Message: fmt.Sprintf("must be at most %d characters long", max)},
	}
}

// MaxRunes checks the length of value in characters.
func MaxRunes(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) <= max
		},
		Error: ValidationError{Field: field, Message: fmt.Sprintf("must be at most %d characters long", max)},
	}
}

func NoControlChars(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return !strings.ContainsFunc(value, unicode.IsControl)
		},
		Error: ValidationError{Field: field, Message: "must not contain control characters"},
	}
}

// ContainsLetter fails when value has no Unicode letter.
func ContainsLetter(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.ContainsFunc(value, unicode.IsLetter)
		},
		Error: ValidationError{Field: field, Message: "must contain at least one letter"},
	}
}
