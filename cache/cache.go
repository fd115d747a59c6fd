package cache

import (
	"time"

	"github.com/dgraph-io/ristretto"
	"github.com/lexabu/woman-owned.com/config"
	"github.com/rs/zerolog/log"
)

// Cache holds rendered directory responses keyed by request path and query.
// A disabled Cache is valid: every lookup misses and every store is dropped.
type Cache struct {
	client *ristretto.Cache
	ttl    time.Duration
}

// New creates a new cache instance with the given configuration
func New(cfg config.CacheConfig) (*Cache, error) {
	ttl := time.Duration(cfg.TTLSeconds) * time.Second
	if !cfg.Enabled {
		log.Info().Msg("Response cache disabled")
		return &Cache{ttl: ttl}, nil
	}

	// Cost is measured in bytes of rendered body
	maxCost := int64(cfg.MaxSizeMB) * 1024 * 1024

	client, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: int64(cfg.CounterSize), // Number of keys to track frequency for admission
		MaxCost:     maxCost,
		BufferItems: 64, // Number of keys per Get buffer
		Metrics:     true,
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Int("max_size_mb", cfg.MaxSizeMB).
		Int("ttl_seconds", cfg.TTLSeconds).
		Int("counter_size", cfg.CounterSize).
		Msg("Response cache initialized")

	return &Cache{client: client, ttl: ttl}, nil
}

// Enabled reports whether responses are actually cached
func (c *Cache) Enabled() bool {
	return c != nil && c.client != nil
}

// Get returns a cached body
func (c *Cache) Get(key string) ([]byte, bool) {
	if !c.Enabled() {
		return nil, false
	}
	v, ok := c.client.Get(key)
	if !ok {
		return nil, false
	}
	body, ok := v.([]byte)
	return body, ok
}

// Set stores body under key with the configured TTL. Ristretto admits
// writes asynchronously, so a Get right after Set may still miss.
func (c *Cache) Set(key string, body []byte) bool {
	if !c.Enabled() {
		return false
	}
	return c.client.SetWithTTL(key, body, int64(len(body)), c.ttl)
}

// Remember returns the cached body for key, or renders, stores and returns it.
// The bool reports a cache hit.
func (c *Cache) Remember(key string, render func() ([]byte, error)) ([]byte, bool, error) {
	if body, ok := c.Get(key); ok {
		return body, true, nil
	}
	body, err := render()
	if err != nil {
		return nil, false, err
	}
	c.Set(key, body)
	return body, false, nil
}

// Wait blocks until pending writes are applied
func (c *Cache) Wait() {
	if c.Enabled() {
		c.client.Wait()
	}
}

// Clear drops every entry
func (c *Cache) Clear() {
	if c.Enabled() {
		c.client.Clear()
	}
}

// Close cleanly shuts down the cache
func (c *Cache) Close() {
	if c.Enabled() {
		c.client.Close()
		log.Info().Msg("Response cache closed")
	}
}

// MetricsSnapshot is the JSON shape served on /cache/metrics
type MetricsSnapshot struct {
	Enabled      bool    `json:"enabled"`
	Hits         uint64  `json:"hits"`
	Misses       uint64  `json:"misses"`
	KeysAdded    uint64  `json:"keys_added"`
	KeysEvicted  uint64  `json:"keys_evicted"`
	CostAdded    uint64  `json:"cost_added"`
	CostEvicted  uint64  `json:"cost_evicted"`
	SetsDropped  uint64  `json:"sets_dropped"`
	SetsRejected uint64  `json:"sets_rejected"`
	GetsDropped  uint64  `json:"gets_dropped"`
	HitRatio     float64 `json:"hit_ratio"`
	TTLSeconds   int     `json:"ttl_seconds"`
}

// GetMetricsSnapshot returns current cache metrics as a snapshot
func (c *Cache) GetMetricsSnapshot() MetricsSnapshot {
	if !c.Enabled() || c.client.Metrics == nil {
		return MetricsSnapshot{TTLSeconds: int(c.ttl.Seconds())}
	}

	m := c.client.Metrics
	return MetricsSnapshot{
		Enabled:      true,
		Hits:         m.Hits(),
		Misses:       m.Misses(),
		KeysAdded:    m.KeysAdded(),
		KeysEvicted:  m.KeysEvicted(),
		CostAdded:    m.CostAdded(),
		CostEvicted:  m.CostEvicted(),
		SetsDropped:  m.SetsDropped(),
		SetsRejected: m.SetsRejected(),
		GetsDropped:  m.GetsDropped(),
		HitRatio:     m.Ratio(),
		TTLSeconds:   int(c.ttl.Seconds()),
	}
}
