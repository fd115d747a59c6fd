// Package ratelimit implements the fixed-window submission limiter.
//
// A Limiter admits at most max requests per key within a window that starts
// at the key's first request. A fresh window admits a full burst immediately,
// which is the accepted imprecision of fixed windows.
package ratelimit

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// UnknownClient is the key used when a request carries no forwarded address.
const UnknownClient = "unknown"

// Decision is the outcome of one Check.
type Decision struct {
	Allowed   bool
	Count     int
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// RetryAfter is how long until the key's window ends, never negative.
func (d Decision) RetryAfter(now time.Time) time.Duration {
	if wait := d.ResetAt.Sub(now); wait > 0 {
		return wait
	}
	return 0
}

// Limiter gates one endpoint. Each endpoint owns its own Limiter and store
// namespace, so budgets never mix.
type Limiter struct {
	name     string
	store    Store
	max      int
	window   time.Duration
	now      func() time.Time
	observer func(name string, d Decision)
}

// Option customizes a Limiter.
type Option func(*Limiter)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) { l.now = now }
}

// WithObserver registers a callback invoked after every decision.
func WithObserver(fn func(name string, d Decision)) Option {
	return func(l *Limiter) { l.observer = fn }
}

// New creates a Limiter admitting max requests per key per window.
func New(name string, store Store, max int, window time.Duration, opts ...Option) *Limiter {
	l := &Limiter{
		name:   name,
		store:  store,
		max:    max,
		window: window,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Name identifies the limiter in logs and metrics.
func (l *Limiter) Name() string { return l.name }

// Max is the number of requests admitted per key per window.
func (l *Limiter) Max() int { return l.max }

// Window is the length of one fixed window.
func (l *Limiter) Window() time.Duration { return l.window }

// Check applies one hit for key. A store failure admits the request.
func (l *Limiter) Check(ctx context.Context, key string) Decision {
	now := l.now()

	entry, allowed, err := l.store.Take(ctx, key, l.max, l.window, now)
	if err != nil {
		log.Error().Err(err).Str("limiter", l.name).Str("key", key).Msg("Rate limit store failed, admitting request")
		d := Decision{Allowed: true, Limit: l.max, Remaining: l.max, ResetAt: now.Add(l.window)}
		l.observe(d)
		return d
	}

	remaining := l.max - entry.Count
	if remaining < 0 {
		remaining = 0
	}
	d := Decision{
		Allowed:   allowed,
		Count:     entry.Count,
		Limit:     l.max,
		Remaining: remaining,
		ResetAt:   entry.ResetAt,
	}
	l.observe(d)
	return d
}

// Allow reports whether a request for key is admitted.
func (l *Limiter) Allow(ctx context.Context, key string) bool {
	return l.Check(ctx, key).Allowed
}

func (l *Limiter) observe(d Decision) {
	if l.observer != nil {
		l.observer(l.name, d)
	}
}

// ClientKey derives the limiter key: the first comma-separated value of
// X-Forwarded-For, or UnknownClient when the header is absent or blank.
func ClientKey(r *http.Request) string {
	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded == "" {
		return UnknownClient
	}
	first, _, _ := strings.Cut(forwarded, ",")
	if ip := strings.TrimSpace(first); ip != "" {
		return ip
	}
	return UnknownClient
}
