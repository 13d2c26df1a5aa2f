// Package normalize provides canonicalization helpers for user-entered
// fields before they are validated and stored.
package normalize

import "strings"

// Email lowercases and trims an email address.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims surrounding whitespace but preserves case.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// Phone trims surrounding whitespace. Digits, spaces, and punctuation
// inside the number are kept as entered.
func Phone(s string) string {
	return strings.TrimSpace(s)
}

// Text trims surrounding whitespace from free-text fields such as
// messages and descriptions.
func Text(s string) string {
	return strings.TrimSpace(s)
}
