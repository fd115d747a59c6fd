package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
)

// fixedWindowScript applies one hit to the hash at KEYS[1] atomically.
// ARGV[1] = max requests, ARGV[2] = window in ms, ARGV[3] = now in unix ms.
// The hash holds count and reset (unix ms); a window ends once now > reset.
// The key TTL only garbage-collects idle windows.
// Returns {count, reset, admitted (1|0)}.
var fixedWindowScript = redis.NewScript(`
local max = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local now = tonumber(ARGV[3])
local state = redis.call('HMGET', KEYS[1], 'count', 'reset')
local count = tonumber(state[1])
local reset = tonumber(state[2])
if not count or not reset or now > reset then
  reset = now + window
  redis.call('HSET', KEYS[1], 'count', 1, 'reset', reset)
  redis.call('PEXPIRE', KEYS[1], window + 1000)
  return {1, reset, 1}
end
if count >= max then
  return {count, reset, 0}
end
redis.call('HINCRBY', KEYS[1], 'count', 1)
return {count + 1, reset, 1}
`)

var errUnexpectedReply = errors.New("unexpected reply from rate limit script")

// RedisStore keeps counters in Redis so every instance shares one view.
// Window boundaries follow the limiter's clock, as in MemoryStore; instances
// sharing a store should keep their clocks in sync.
type RedisStore struct {
	rdb    *redis.Client
	prefix string
}

// NewRedisStore namespaces keys under prefix (e.g. "ratelimit:contact").
func NewRedisStore(rdb *redis.Client, prefix string) *RedisStore {
	return &RedisStore{rdb: rdb, prefix: strings.Trim(prefix, ":")}
}

func (s *RedisStore) redisKey(key string) string {
	return s.prefix + ":" + key
}

// Take implements Store.
func (s *RedisStore) Take(ctx context.Context, key string, max int, window time.Duration, now time.Time) (Entry, bool, error) {
	reply, err := fixedWindowScript.Run(ctx, s.rdb, []string{s.redisKey(key)},
		max, window.Milliseconds(), now.UnixMilli()).Result()
	if err != nil {
		return Entry{}, false, fmt.Errorf("rate limit script: %w", err)
	}

	values, ok := reply.([]interface{})
	if !ok || len(values) != 3 {
		return Entry{}, false, errUnexpectedReply
	}
	count, ok1 := values[0].(int64)
	reset, ok2 := values[1].(int64)
	admitted, ok3 := values[2].(int64)
	if !ok1 || !ok2 || !ok3 {
		return Entry{}, false, errUnexpectedReply
	}

	return Entry{
		Count:   int(count),
		ResetAt: time.UnixMilli(reset).In(now.Location()),
	}, admitted == 1, nil
}
