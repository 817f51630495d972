package validator

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	emailRegex = "^[a-zA-Z0-9.!#$%&'*+\\/=?^_`{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$"
)

var (
	// EmailRgx is a regular expression for validating email addresses.
	// Dotless domains such as localhost are accepted.
	EmailRgx = regexp.MustCompile(emailRegex)
)

// NotBlank returns true if a string is not empty or contains only whitespace.
func NotBlank(value string) bool {
	return strings.TrimSpace(value) != ""
}

// MinRunes returns true if a string is greater than or equal to a minimum number of n
func MinRunes(value string, n int) bool {
	return utf8.RuneCountInString(strings.TrimSpace(value)) >= n
}

// IsEmail returns true if a string is a valid email address.
func IsEmail(value string) bool {
	if len(value) > 254 {
		return false
	}

	return EmailRgx.MatchString(value)
}

// After returns true if t is strictly after ref
func After(t, ref time.Time) bool {
	return t.After(ref)
}

// NotBefore returns true if t is on or after ref
func NotBefore(t, ref time.Time) bool {
	return !t.Before(ref)
}

// Present returns true for a non-zero time
func Present(t time.Time) bool {
	return !t.IsZero()
}
