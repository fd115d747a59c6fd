package middleware

import (
	"net/http"
	"sync"

	"github.com/hashicorp/golang-lru/v2/simplelru"
	"github.com/lexabu/woman-owned.com/security"
	"golang.org/x/time/rate"
)

// RateLimiter is the global per-client token bucket applied to every route.
// It sits in front of the stricter per-form limiters in the ratelimit package.
type RateLimiter struct {
	limiters *simplelru.LRU[string, *rate.Limiter]
	mu       sync.Mutex
	r        rate.Limit
	b        int
}

// NewRateLimiter creates a new rate limiter tracking at most maxClients buckets
func NewRateLimiter(requestsPerSecond float64, burst, maxClients int) (*RateLimiter, error) {
	limiters, err := simplelru.NewLRU[string, *rate.Limiter](maxClients, nil)
	if err != nil {
		return nil, err
	}
	return &RateLimiter{
		limiters: limiters,
		r:        rate.Limit(requestsPerSecond),
		b:        burst,
	}, nil
}

// getLimiter returns the bucket for a client, creating it on first use
func (rl *RateLimiter) getLimiter(client string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, exists := rl.limiters.Get(client)
	if !exists {
		limiter = rate.NewLimiter(rl.r, rl.b)
		rl.limiters.Add(client, limiter)
	}

	return limiter
}

// Limit is a middleware that rate limits requests
func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.getLimiter(security.ClientAddr(r)).Allow() {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"success":false,"error":"Rate limit exceeded. Please try again later."}` + "\n"))
			return
		}

		next.ServeHTTP(w, r)
	})
}
