package validator

import "strings"

// ValidISBN accepts an ISBN-10 or ISBN-13 with separators already removed.
// Only the check digit of an ISBN-10 may be "X". Empty values pass.
func ValidISBN(field, value string) Rule {
	return Rule{
		Check: func() bool {
			switch len(value) {
			case 0:
				return true
			case 10:
				return allDigits(value[:9]) && (allDigits(value[9:]) || value[9] == 'X')
			case 13:
				return allDigits(value)
			}
			return false
		},
		Error: ValidationError{Field: field, Message: "must be an ISBN-10 or ISBN-13"},
	}
}

func allDigits(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' }) < 0
}
