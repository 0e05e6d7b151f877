package auth

import (
	"fmt"

	"github.com/dmitrymomot/kbooks/pkg/validator"
)

const (
	maxUsernameLength = 64
	minPasswordLength = 6
	maxPasswordLength = 72 // bcrypt input limit
)

// invalidInput tags a validation failure as ErrInvalidInput while keeping
// the per-field messages reachable through validator.ExtractValidationErrors.
func invalidInput(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidInput, err)
}

func emailRules(addr string) []validator.Rule {
	return []validator.Rule{validator.ValidEmail("email", addr)}
}

func usernameRules(name string) []validator.Rule {
	return []validator.Rule{
		validator.Required("username", name),
		validator.MaxRunes("username", name, maxUsernameLength),
		validator.NoControlChars("username", name),
	}
}

func passwordRules(pw string) []validator.Rule {
	return []validator.Rule{validator.PasswordLength("password", pw, minPasswordLength, maxPasswordLength)}
}

func validate(rules ...[]validator.Rule) error {
	var all []validator.Rule
	for _, r := range rules {
		all = append(all, r...)
	}
	return invalidInput(validator.Apply(all...))
}
