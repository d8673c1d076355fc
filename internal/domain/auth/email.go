package auth

import (
	"fmt"
	"regexp"
	"strings"
)

// emailRegex is the regular expression for validating email addresses
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// NormalizeEmail trims surrounding whitespace and lowercases an email address.
func NormalizeEmail(value string) string {
	return strings.TrimSpace(strings.ToLower(value))
}

// ParseEmail normalizes and validates an email address.
func ParseEmail(value string) (string, error) {
	normalized := NormalizeEmail(value)

	if normalized == "" {
		return "", fmt.Errorf("email cannot be empty")
	}
	if len(normalized) > 255 {
		return "", fmt.Errorf("email cannot exceed 255 characters")
	}
	if !emailRegex.MatchString(normalized) {
		return "", fmt.Errorf("invalid email format: %s", value)
	}

	return normalized, nil
}
