package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// MatchFields carries the normalised, unhashed user-matching inputs for one
// Conversions API event. Zero-valued fields are omitted from the payload.
type MatchFields struct {
	Email     string
	Phone     string
	FirstName string
	LastName  string
}

// NormalizeEmail lowercases and trims an email for hashing. Returns "" for
// effectively empty input.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizePhone strips formatting characters and converts a national-format
// number to E.164 by replacing a leading 0 with the +61 country code. Numbers
// already carrying a + prefix pass through untouched.
func NormalizePhone(phone string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '(', ')':
			return -1
		}
		return r
	}, strings.TrimSpace(phone))
	if cleaned == "" || strings.HasPrefix(cleaned, "+") {
		return cleaned
	}
	if strings.HasPrefix(cleaned, "0") {
		return "+61" + cleaned[1:]
	}
	return cleaned
}

// SplitName parses a free-form full name into first and last parts. A single
// token becomes the first name with an empty last name.
func SplitName(full string) (first, last string) {
	parts := strings.Fields(full)
	if len(parts) == 0 {
		return "", ""
	}
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

// HashMatchValue applies the Conversions API hashing rule: lowercase, trim,
// then hex-encoded SHA-256. Empty input returns "".
func HashMatchValue(v string) string {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(v))
	return hex.EncodeToString(sum[:])
}
