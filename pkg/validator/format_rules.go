package validator

import (
	"net/mail"
	"strings"

	"golang.org/x/text/language"
)

// maxEmailLength is the longest address SMTP accepts in a path.
const maxEmailLength = 254

// ValidEmail accepts bare addresses of the form local@domain.tld. Display
// names ("Ann <ann@example.com>") are rejected.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if value == "" || len(value) > maxEmailLength {
				return false
			}

			addr, err := mail.ParseAddress(value)
			if err != nil || addr.Address != value {
				return false
			}

			local, domain, ok := strings.Cut(value, "@")
			if !ok || local == "" {
				return false
			}
			if !strings.Contains(domain, ".") {
				return false
			}
			for part := range strings.SplitSeq(domain, ".") {
				if part == "" {
					return false
				}
			}
			return true
		},
		Error: ValidationError{Field: field, Message: "must be a valid email address"},
	}
}

// ValidLanguage accepts BCP 47 tags such as "fr", "FR" or "pt-BR". Empty
// values pass; combine with Required when the field is mandatory.
func ValidLanguage(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if value == "" {
				return true
			}
			_, err := language.Parse(value)
			return err == nil
		},
		Error: ValidationError{Field: field, Message: "must be a language code"},
	}
}
