// Package validation holds the registration form rules as pure predicates.
// Nothing here knows about elements or error display.
package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// PasswordSpecials lists the special characters a password may and must use.
const PasswordSpecials = "!@#$%^&*"

// MinNameLength and MinPasswordLength are inclusive lower bounds.
const (
	MinNameLength     = 2
	MinPasswordLength = 8
)

var (
	emailPattern         = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	passwordCharsPattern = regexp.MustCompile(`^[a-zA-Z0-9!@#$%^&*]+$`)
	digitPattern         = regexp.MustCompile(`[0-9]`)
)

// ValidName reports whether the trimmed name has at least two characters.
func ValidName(name string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(name)) >= MinNameLength
}

// ValidEmail applies a permissive structural check: local@domain.tld with no
// whitespace and no extra @ in any part.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidPassword requires eight or more characters drawn only from letters,
// digits and PasswordSpecials, with at least one digit and one special.
func ValidPassword(password string) bool {
	if len(password) < MinPasswordLength {
		return false
	}
	if !passwordCharsPattern.MatchString(password) {
		return false
	}
	return digitPattern.MatchString(password) && strings.ContainsAny(password, PasswordSpecials)
}

// PasswordsMatch reports exact equality between password and confirmation.
func PasswordsMatch(password, confirm string) bool {
	return password == confirm
}
