package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/simplelru"
	"github.com/rs/zerolog/log"
)

// MemoryStore is a process-local Store. It holds at most maxEntries keys and
// evicts the least recently used key when full. Counters do not survive a
// restart and are not shared between instances.
type MemoryStore struct {
	mu      sync.Mutex
	entries *simplelru.LRU[string, *Entry]
	evicted atomic.Uint64
}

// NewMemoryStore creates a store bounded to maxEntries keys.
func NewMemoryStore(maxEntries int) (*MemoryStore, error) {
	entries, err := simplelru.NewLRU[string, *Entry](maxEntries, nil)
	if err != nil {
		return nil, fmt.Errorf("create rate limit store: %w", err)
	}
	return &MemoryStore{entries: entries}, nil
}

// Take implements Store.
func (s *MemoryStore) Take(_ context.Context, key string, max int, window time.Duration, now time.Time) (Entry, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries.Get(key)
	if !ok || now.After(e.ResetAt) {
		e = &Entry{Count: 1, ResetAt: now.Add(window)}
		if s.entries.Add(key, e) {
			s.evicted.Add(1)
		}
		return *e, true, nil
	}

	if e.Count >= max {
		return *e, false, nil
	}

	e.Count++
	return *e, true, nil
}

// Sweep removes every entry whose window ended before now and returns how many it removed.
func (s *MemoryStore) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for _, key := range s.entries.Keys() {
		if e, ok := s.entries.Peek(key); ok && now.After(e.ResetAt) {
			s.entries.Remove(key)
			removed++
		}
	}
	return removed
}

// Len is the number of tracked keys.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entries.Len()
}

// Evicted is the number of keys dropped because the store was full.
func (s *MemoryStore) Evicted() uint64 {
	return s.evicted.Load()
}

// StartJanitor sweeps expired entries every interval until ctx is done.
func (s *MemoryStore) StartJanitor(ctx context.Context, every time.Duration) {
	if every <= 0 {
		return
	}

	ticker := time.NewTicker(every)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				if removed := s.Sweep(now); removed > 0 {
					log.Debug().Int("removed", removed).Int("tracked", s.Len()).Msg("Swept expired rate limit entries")
				}
			}
		}
	}()
}
