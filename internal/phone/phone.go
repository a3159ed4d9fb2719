// Package phone validates Spanish phone numbers.
package phone

import "strings"

// SpanishPrefix is the international dialing prefix for Spain.
const SpanishPrefix = "+34"

// spanishLength is the prefix plus nine subscriber digits, e.g. +34666777888.
const spanishLength = 12

// ValidateSpanish reports whether s is a Spanish number in international format.
func ValidateSpanish(s string) bool {
	if len(s) != spanishLength || !strings.HasPrefix(s, SpanishPrefix) {
		return false
	}
	for i := len(SpanishPrefix); i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
