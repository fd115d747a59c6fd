package ratelimit

import (
	"context"
	"time"
)

// Entry is the state of one key's current fixed window.
type Entry struct {
	Count   int
	ResetAt time.Time
}

// Store keeps fixed-window counters. Take must apply one hit atomically:
//
//   - no entry, or now is past ResetAt: the entry becomes {1, now+window}, admitted
//   - Count >= max: rejected, entry unchanged
//   - otherwise Count is incremented, admitted
//
// The returned Entry reflects the state after the hit.
type Store interface {
	Take(ctx context.Context, key string, max int, window time.Duration, now time.Time) (Entry, bool, error)
}
