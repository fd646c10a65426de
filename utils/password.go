package utils

import "strings"

const (
	passwordMinLength    = 8
	passwordDigits       = "0123456789"
	passwordSpecialChars = `!@#$%^&*(),.?":{}|<>`
)

// ValidatePassword checks the registration password policy and returns the
// first violated rule as a message, or "" when the password is acceptable.
// Rule order matters: length, digit, special character.
func ValidatePassword(password string) string {
	if len(password) < passwordMinLength {
		return "password must be at least 8 characters"
	}
	if !strings.ContainsAny(password, passwordDigits) {
		return "password must contain at least 1 digit"
	}
	if !strings.ContainsAny(password, passwordSpecialChars) {
		return "password must contain at least 1 special character"
	}
	return ""
}
