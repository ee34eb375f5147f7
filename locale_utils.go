package dateparser

import (
	"strings"

	"golang.org/x/text/language"
)

// normalizeLocaleCode normalizes a locale identifier for registration by
// trimming whitespace, replacing underscores with hyphens and lower-casing.
func normalizeLocaleCode(code string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(code), "_", "-"))
}

// validLocaleCode reports whether code parses as a BCP 47 language tag.
// Built-in keys always pass; custom registrations are checked with this
// before they are accepted.
func validLocaleCode(code string) bool {
	if code == "" {
		return false
	}
	_, err := language.Parse(code)
	return err == nil
}
