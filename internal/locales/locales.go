// Package locales normalizes and compares the locale codes used by the
// repository and the portable translation file.
package locales

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Normalize returns the canonical BCP 47 form of a locale code ("EN_us"
// becomes "en-US"). Unparseable input is lowercased and passed through so
// repository-specific codes still compare consistently.
func Normalize(code string) string {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return ""
	}
	tag, err := language.Parse(strings.ReplaceAll(trimmed, "_", "-"))
	if err != nil {
		return strings.ToLower(trimmed)
	}
	return tag.String()
}

// Contains reports whether the candidate locale appears in the configured
// list, comparing canonical forms.
func Contains(known []string, code string) bool {
	want := Normalize(code)
	for _, candidate := range known {
		if Normalize(candidate) == want {
			return true
		}
	}
	return false
}

// DisplayName returns a human-readable English name for a locale code, or
// the uppercased code when it is not recognized.
func DisplayName(code string) string {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return "Unknown"
	}
	tag, err := language.Parse(strings.ReplaceAll(trimmed, "_", "-"))
	if err != nil {
		return strings.ToUpper(trimmed)
	}
	name := display.English.Tags().Name(tag)
	if name == "" {
		return strings.ToUpper(trimmed)
	}
	return name
}
