package validator

import "fmt"

// PasswordLength bounds a password in bytes. bcrypt ignores input past 72
// bytes, so callers hashing with bcrypt should pass max <= 72.
func PasswordLength(field, value string, min, max int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) >= min && len(value) <= max
		},
		Error: ValidationError{Field: field, Message: fmt.Sprintf("password must be %d to %d bytes long", min, max)},
	}
}
