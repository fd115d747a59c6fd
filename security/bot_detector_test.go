package security

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const browserUA = "Mozilla/5.0 (Macintosh; Intel Mac OS X 14_0) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Safari/605.1.15"

func newPost(userAgent, forwarded string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
	r.Header.Set("User-Agent", userAgent)
	if forwarded != "" {
		r.Header.Set("X-Forwarded-For", forwarded)
	}
	return r
}

func TestIsBot_UserAgents(t *testing.T) {
	tests := []struct {
		name       string
		userAgent  string
		wantBot    bool
		wantReason string
	}{
		{"Browser", browserUA, false, ""},
		{"Googlebot is tolerated", "Mozilla/5.0 (compatible; Googlebot/2.1)", false, ""},
		{"curl", "curl/8.4.0 (x86_64-pc-linux-gnu)", true, ReasonKnownBot},
		{"Python requests", "python-requests/2.31.0", true, ReasonKnownBot},
		{"Empty", "", true, ReasonSuspiciousUA},
		{"No browser marker", "SomethingCustom/1.0", true, ReasonSuspiciousUA},
		{"Uptime monitor", "Pingdom.com_uptime_monitor/1.0", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bd := NewBotDetector(100)
			isBot, reason := bd.IsBot(newPost(tt.userAgent, "198.51.100.1"))
			if isBot != tt.wantBot || reason != tt.wantReason {
				t.Errorf("IsBot() = (%v, %q), want (%v, %q)", isBot, reason, tt.wantBot, tt.wantReason)
			}
		})
	}
}

func TestIsBot_RequestRate(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	bd := NewBotDetector(3)
	bd.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		if isBot, _ := bd.IsBot(newPost(browserUA, "198.51.100.7")); isBot {
			t.Fatalf("request %d flagged too early", i+1)
		}
	}
	if isBot, reason := bd.IsBot(newPost(browserUA, "198.51.100.7")); !isBot || reason != ReasonRequestRate {
		t.Fatalf("4th request = (%v, %q), want rate flag", isBot, reason)
	}
	if isBot, _ := bd.IsBot(newPost(browserUA, "198.51.100.8")); isBot {
		t.Error("another client should not be affected")
	}

	now = now.Add(61 * time.Second)
	if isBot, _ := bd.IsBot(newPost(browserUA, "198.51.100.7")); isBot {
		t.Error("old requests should fall out of the trailing minute")
	}

	if stats := bd.Stats(); stats.Blocked != 1 || stats.TrackedClients != 2 || stats.MaxRequestsPerMinute != 3 {
		t.Errorf("Stats() = %+v", stats)
	}
}

func TestCleanup(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	bd := NewBotDetector(10)
	bd.now = func() time.Time { return now }

	bd.IsBot(newPost(browserUA, "198.51.100.1"))
	now = now.Add(11 * time.Minute)
	bd.IsBot(newPost(browserUA, "198.51.100.2"))

	if removed := bd.Cleanup(10 * time.Minute); removed != 1 {
		t.Errorf("Cleanup() removed %d, want 1", removed)
	}
	if got := bd.Stats().TrackedClients; got != 1 {
		t.Errorf("TrackedClients = %d, want 1", got)
	}
}

func TestClientAddr(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"Forwarded chain", map[string]string{"X-Forwarded-For": "203.0.113.5, 10.0.0.1"}, "10.0.0.9:1234", "203.0.113.5"},
		{"Real IP", map[string]string{"X-Real-IP": "203.0.113.6"}, "10.0.0.9:1234", "203.0.113.6"},
		{"Remote address", nil, "192.0.2.10:5555", "192.0.2.10"},
		{"Remote without port", nil, "192.0.2.11", "192.0.2.11"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			if got := ClientAddr(r); got != tt.want {
				t.Errorf("ClientAddr() = %q, want %q", got, tt.want)
			}
		})
	}
}
