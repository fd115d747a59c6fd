package directory

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// CitySlug normalizes a city display name for comparison against a city slug:
// lowercase, every whitespace run replaced by a single hyphen.
func CitySlug(city string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(city), "-")
}

// CategorySlug normalizes a category display name for matching. Only the first
// ampersand is removed, so "Beauty & Wellness" becomes "beauty--wellness".
func CategorySlug(category string) string {
	slug := whitespaceRun.ReplaceAllString(strings.ToLower(category), "-")
	return strings.Replace(slug, "&", "", 1)
}
