// Package sanitizer cleans user input before it is validated and stored.
//
// Every function is pure and returns the cleaned copy of its argument:
//
//	addr := sanitizer.NormalizeEmail("  Ann@Example.COM ") // "ann@example.com"
//	isbn := sanitizer.NormalizeISBN("978-2-07-040850-4")  // "9782070408504"
//
// Sanitizers never reject input; pair them with pkg/validator rules.
package sanitizer
