package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/lexabu/woman-owned.com/ratelimit"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveRateLimit(t *testing.T) {
	m := New()

	m.ObserveRateLimit("contact", ratelimit.Decision{Allowed: true})
	m.ObserveRateLimit("contact", ratelimit.Decision{Allowed: true})
	m.ObserveRateLimit("contact", ratelimit.Decision{Allowed: false})

	if got := testutil.ToFloat64(m.rateLimit.WithLabelValues("contact", "allowed")); got != 2 {
		t.Errorf("allowed = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.rateLimit.WithLabelValues("contact", "rejected")); got != 1 {
		t.Errorf("rejected = %v, want 1", got)
	}
}

func TestObserveFormAndCache(t *testing.T) {
	m := New()

	m.ObserveForm("submission", OutcomeInvalid)
	m.ObserveCache(true)
	m.ObserveCache(false)
	m.ObserveCache(false)

	if got := testutil.ToFloat64(m.formsReceived.WithLabelValues("submission", OutcomeInvalid)); got != 1 {
		t.Errorf("invalid submissions = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.cacheLookups.WithLabelValues("miss")); got != 2 {
		t.Errorf("cache misses = %v, want 2", got)
	}
}

func TestHandlerExposesCollectors(t *testing.T) {
	m := New()
	m.ObserveRequest("/api/businesses/{slug}", http.MethodGet, http.StatusNotFound, 3*time.Millisecond)

	store, err := ratelimit.NewMemoryStore(10)
	if err != nil {
		t.Fatalf("NewMemoryStore() error = %v", err)
	}
	m.TrackMemoryStore("contact", store)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := rec.Body.String()
	for _, want := range []string{
		`womanowned_http_requests_total{method="GET",route="/api/businesses/{slug}",status="404"} 1`,
		`womanowned_ratelimit_tracked_keys{limiter="contact"} 0`,
		"go_goroutines",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics output is missing %q", want)
		}
	}
}
