package core

import "regexp"

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[0-9]{2,3}-[0-9]{3,4}-[0-9]{4}$`)
)

// IsValidEmail reports whether s looks like an email address.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsValidPhone reports whether s is a dashed phone number such as
// "010-1234-5678".
func IsValidPhone(s string) bool {
	return phonePattern.MatchString(s)
}
