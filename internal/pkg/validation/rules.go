package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// Username pattern: lowercase letters, digits, underscores, 3-30 chars
	UsernamePattern = `^[a-z0-9_]{3,30}$`

	// Email validation pattern
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,4}$`

	// Password min length
	PasswordMinLength = 8

	// Name validation min/max length
	NameMinLength = 2
	NameMaxLength = 100
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Username *regexp.Regexp
	Email    *regexp.Regexp
}{
	Username: regexp.MustCompile(UsernamePattern),
	Email:    regexp.MustCompile(EmailPattern),
}

// ValidUsername reports whether the given username is acceptable
func ValidUsername(username string) bool {
	return CompiledPatterns.Username.MatchString(username)
}

// ValidEmail reports whether the given address looks like an email.
// Empty is allowed; the field is optional on organization profiles.
func ValidEmail(email string) bool {
	if email == "" {
		return true
	}
	return CompiledPatterns.Email.MatchString(email)
}

// ValidPassword reports whether the password satisfies the minimum policy
func ValidPassword(password string) bool {
	return len(password) >= PasswordMinLength
}

// ValidName reports whether a display name length is within bounds
func ValidName(name string) bool {
	return len(name) >= NameMinLength && len(name) <= NameMaxLength
}
