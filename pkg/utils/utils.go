package utils

import (
	"os"
	"strings"
)

// Boolean coerces a raw variable value the way filter_var(FILTER_VALIDATE_BOOLEAN)
// does: "1", "true", "on" and "yes" are true, anything else is false.
func Boolean(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "on", "yes":
		return true
	default:
		return false
	}
}

func StringOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func TrimTrailingSeparator(path string) string {
	return strings.TrimRight(path, string(os.PathSeparator))
}

// Mask hides all but the last four characters of a secret.
func Mask(secret string) string {
	runes := []rune(secret)
	if len(runes) <= 4 {
		return strings.Repeat("*", len(runes))
	}
	return strings.Repeat("*", len(runes)-4) + string(runes[len(runes)-4:])
}
