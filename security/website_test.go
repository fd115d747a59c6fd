package security

import "testing"

func TestWebsiteScreener(t *testing.T) {
	s := NewWebsiteScreener(true, "  Spammy-Domain.com ")

	tests := []struct {
		url         string
		wantPattern string
		wantFlagged bool
	}{
		{"https://bluegrassbakehouse.com", "", false},
		{"https://bit.ly/3xYz", "bit.ly/", true},
		{"http://my-shop.tk/", ".tk/", true},
		{"https://example.com/secure-login", "secure-login", true},
		{"https://www.SPAMMY-DOMAIN.com/", "spammy-domain.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			pattern, flagged := s.Screen(tt.url)
			if pattern != tt.wantPattern || flagged != tt.wantFlagged {
				t.Errorf("Screen() = (%q, %v), want (%q, %v)", pattern, flagged, tt.wantPattern, tt.wantFlagged)
			}
		})
	}

	if _, flagged := NewWebsiteScreener(false).Screen("https://bit.ly/x"); flagged {
		t.Error("a disabled screener should never flag")
	}
}
