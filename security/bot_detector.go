package security

import (
	"context"
	"net"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
)

// Block reasons reported by IsBot
const (
	ReasonKnownBot     = "known_bot_user_agent"
	ReasonSuspiciousUA = "suspicious_user_agent"
	ReasonRequestRate  = "excessive_request_rate"
)

// legitimateBots may crawl the site, so they are never blocked
var legitimateBots = []string{
	"googlebot",
	"bingbot",
	"slackbot",
	"twitterbot",
	"facebookexternalhit",
	"linkedinbot",
	"whatsapp",
	"telegrambot",
	"discordbot",
}

// automatedClients are libraries and scrapers that have no business posting forms
var automatedClients = []string{
	"bot",
	"crawler",
	"spider",
	"scraper",
	"curl",
	"wget",
	"python-requests",
	"go-http-client",
	"java/",
	"ruby",
	"php",
	"perl",
	"node-fetch",
	"axios",
}

var browserMarkers = []string{"Mozilla", "Chrome", "Safari", "Firefox", "Edge", "Opera"}

// BotDetector flags form posts that do not look like they come from a person
// using a browser.
type BotDetector struct {
	mu      sync.Mutex
	history map[string]*requestHistory
	blocked atomic.Uint64

	maxRequestsPerMinute int
	now                  func() time.Time
}

// requestHistory tracks recent request times for one client
type requestHistory struct {
	requests []time.Time
	lastSeen time.Time
}

// DetectorStats is a point-in-time view of the detector
type DetectorStats struct {
	TrackedClients       int    `json:"tracked_clients"`
	MaxRequestsPerMinute int    `json:"max_requests_per_minute"`
	Blocked              uint64 `json:"blocked"`
}

// NewBotDetector creates a detector. The cleanup loop is started separately
// with StartCleanup so its lifetime follows a context.
func NewBotDetector(maxRequestsPerMinute int) *BotDetector {
	return &BotDetector{
		history:              make(map[string]*requestHistory),
		maxRequestsPerMinute: maxRequestsPerMinute,
		now:                  time.Now,
	}
}

// IsBot checks if a request appears to be automated and reports why
func (bd *BotDetector) IsBot(r *http.Request) (bool, string) {
	userAgent := r.UserAgent()

	reason := ""
	switch {
	case isAutomatedClient(userAgent):
		reason = ReasonKnownBot
	case isSuspiciousUserAgent(userAgent):
		reason = ReasonSuspiciousUA
	case bd.exceedsRate(ClientAddr(r)):
		reason = ReasonRequestRate
	default:
		return false, ""
	}

	bd.blocked.Add(1)
	return true, reason
}

func isAutomatedClient(userAgent string) bool {
	ua := strings.ToLower(userAgent)

	for _, bot := range legitimateBots {
		if strings.Contains(ua, bot) {
			log.Debug().Str("user_agent", userAgent).Str("bot", bot).Msg("Legitimate bot detected")
			return false
		}
	}

	for _, pattern := range automatedClients {
		if strings.Contains(ua, pattern) {
			return true
		}
	}
	return false
}

// isSuspiciousUserAgent flags empty or very short agents and agents without
// any browser marker.
func isSuspiciousUserAgent(userAgent string) bool {
	if len(userAgent) < 10 {
		return true
	}
	for _, marker := range browserMarkers {
		if strings.Contains(userAgent, marker) {
			return false
		}
	}
	ua := strings.ToLower(userAgent)
	for _, service := range []string{"monitor", "uptime", "pingdom", "statuspage"} {
		if strings.Contains(ua, service) {
			return false
		}
	}
	return true
}

// exceedsRate records a request and reports whether the client went over
// maxRequestsPerMinute in the trailing minute.
func (bd *BotDetector) exceedsRate(client string) bool {
	bd.mu.Lock()
	defer bd.mu.Unlock()

	now := bd.now()
	oneMinuteAgo := now.Add(-time.Minute)

	h, exists := bd.history[client]
	if !exists {
		bd.history[client] = &requestHistory{requests: []time.Time{now}, lastSeen: now}
		return false
	}

	recent := h.requests[:0]
	for _, t := range h.requests {
		if t.After(oneMinuteAgo) {
			recent = append(recent, t)
		}
	}
	h.requests = append(recent, now)
	h.lastSeen = now

	if len(h.requests) > bd.maxRequestsPerMinute {
		log.Warn().
			Str("client", client).
			Int("requests", len(h.requests)).
			Msg("Request rate limit exceeded - potential bot")
		return true
	}
	return false
}

// Cleanup forgets clients idle for longer than idle and returns how many it removed
func (bd *BotDetector) Cleanup(idle time.Duration) int {
	bd.mu.Lock()
	defer bd.mu.Unlock()

	cutoff := bd.now().Add(-idle)
	removed := 0
	for client, h := range bd.history {
		if h.lastSeen.Before(cutoff) {
			delete(bd.history, client)
			removed++
		}
	}
	return removed
}

// StartCleanup runs Cleanup(10m) every interval until ctx is done
func (bd *BotDetector) StartCleanup(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				removed := bd.Cleanup(10 * time.Minute)
				log.Debug().Int("removed", removed).Msg("Cleaned up bot detection tracker")
			}
		}
	}()
}

// Stats returns bot detection statistics
func (bd *BotDetector) Stats() DetectorStats {
	bd.mu.Lock()
	defer bd.mu.Unlock()

	return DetectorStats{
		TrackedClients:       len(bd.history),
		MaxRequestsPerMinute: bd.maxRequestsPerMinute,
		Blocked:              bd.blocked.Load(),
	}
}

// ClientAddr extracts the client address: first X-Forwarded-For value,
// then X-Real-IP, then the connection's host.
func ClientAddr(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}

	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
