// Package sanitize strips markup from free text before it is stored.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// Text removes every HTML element from value and trims surrounding space. Entities are
// decoded afterwards so plain text such as "Bed & Breakfast" is stored as typed.
func Text(value string) string {
	if value == "" {
		return value
	}

	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(value)))
}

// TextPtr applies Text to an optional field.
func TextPtr(value *string) *string {
	if value == nil {
		return nil
	}

	clean := Text(*value)

	return &clean
}

// Strings applies Text to every element, dropping the ones left empty.
func Strings(values []string) []string {
	if values == nil {
		return nil
	}

	clean := make([]string, 0, len(values))

	for _, value := range values {
		if v := Text(value); v != "" {
			clean = append(clean, v)
		}
	}

	return clean
}
