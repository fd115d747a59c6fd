package utils

import (
	"net/url"
	"regexp"
	"strings"
	"time"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\(\d{3}\) \d{3}-\d{4}$`)
	slugPattern  = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	datePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	nonSlugRun   = regexp.MustCompile(`[^a-z0-9]+`)
)

// ValidateWebsite checks that rawURL is an absolute http(s) URL with a host
func ValidateWebsite(rawURL string) error {
	if rawURL == "" {
		return ErrEmptyURL
	}

	parsedURL, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return ErrInvalidURL
	}

	// The scheme prefix is checked on the raw text, not the parsed (lowercased) scheme
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return ErrInvalidScheme
	}

	if parsedURL.Host == "" {
		return ErrEmptyHost
	}

	return nil
}

// IsValidEmail is a deliberately loose shape check: something@something.something
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// IsValidPhone reports whether phone is formatted as (XXX) XXX-XXXX
func IsValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// IsValidSlug reports whether slug is lowercase words joined by single hyphens
func IsValidSlug(slug string) bool {
	return slugPattern.MatchString(slug)
}

// IsValidDate reports whether date is a real calendar date in YYYY-MM-DD form
func IsValidDate(date string) bool {
	if !datePattern.MatchString(date) {
		return false
	}
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}

// Slugify lowercases name, collapses every run of non [a-z0-9] characters
// into a single hyphen and trims hyphens from both ends.
func Slugify(name string) string {
	slug := nonSlugRun.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}
