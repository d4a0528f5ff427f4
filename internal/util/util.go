package util

import (
	"strings"
)

// IsUUID checks if a string is a valid UUID
func IsUUID(str string) bool {
	// Simple UUID check - this is not a comprehensive validation
	// but will help differentiate between names and UUIDs
	if len(str) != 36 {
		return false
	}

	// Check for UUID format (8-4-4-4-12 pattern with hyphens)
	sections := []int{8, 4, 4, 4, 12}
	parts := strings.Split(str, "-")
	if len(parts) != 5 {
		return false
	}

	for i, length := range sections {
		if len(parts[i]) != length {
			return false
		}
	}

	return true
}

// Truncate shortens a string to at most max runes, appending an ellipsis
// when something was cut
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}
