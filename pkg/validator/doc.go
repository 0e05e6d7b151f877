// Package validator builds declarative input checks out of small Rule values.
//
// A Rule pairs a Check function with the ValidationError reported when the
// check fails. Apply evaluates every rule and collects the failures into
// ValidationErrors, which implements error:
//
//	err := validator.Apply(
//	    validator.ValidEmail("email", email),
//	    validator.PasswordLength("password", password, 6, 72),
//	)
//	if validator.IsValidationError(err) {
//	    // 400 with err.Error()
//	}
//
// Rules are plain values with no shared state, so they are safe to build and
// apply from any goroutine.
package validator
