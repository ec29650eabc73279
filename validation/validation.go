// Package validation provides input validation utilities
package validation

import "regexp"

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// minPasswordLength is measured in bytes, matching the signup contract.
const minPasswordLength = 5

// IsValidEmail reports whether s looks like an email address.
func IsValidEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// IsValidPassword reports whether s is long enough to be accepted at signup.
func IsValidPassword(s string) bool {
	return len(s) >= minPasswordLength
}
