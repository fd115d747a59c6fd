package security

import (
	"strings"
)

// WebsiteScreener flags submitted business websites that match known abuse
// patterns. A match never rejects a submission; it is surfaced to the
// reviewer alongside the draft record.
type WebsiteScreener struct {
	enabled   bool
	blocklist []string
}

// NewWebsiteScreener creates a screener over the default blocklist plus extra patterns
func NewWebsiteScreener(enabled bool, extra ...string) *WebsiteScreener {
	blocklist := defaultBlocklist()
	for _, p := range extra {
		if p = strings.ToLower(strings.TrimSpace(p)); p != "" {
			blocklist = append(blocklist, p)
		}
	}
	return &WebsiteScreener{enabled: enabled, blocklist: blocklist}
}

// Screen returns the first blocklist pattern contained in rawURL
func (s *WebsiteScreener) Screen(rawURL string) (string, bool) {
	if s == nil || !s.enabled {
		return "", false
	}

	urlLower := strings.ToLower(rawURL)
	for _, pattern := range s.blocklist {
		if strings.Contains(urlLower, pattern) {
			return pattern, true
		}
	}
	return "", false
}

func defaultBlocklist() []string {
	return []string{
		// Shorteners hide the real destination
		"bit.ly/",
		"tinyurl.com/",

		// Common phishing patterns
		"account-verify",
		"confirm-account",
		"secure-login",
		"verify-identity",
		"suspended-account",

		// Direct executable downloads
		".exe",
		".scr?",
		".bat?",
		".vbs?",

		// Free TLDs heavily used for throwaway sites
		".tk/",
		".ml/",
		".ga/",
		".cf/",
		".gq/",

		// Suspicious keywords
		"free-money",
		"free-bitcoin",
		"prize-winner",
		"click-here-now",
	}
}
