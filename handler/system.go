package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/lexabu/woman-owned.com/cache"
	"github.com/lexabu/woman-owned.com/directory"
	"github.com/rs/zerolog/log"
)

// SystemHandler serves health and cache diagnostics
type SystemHandler struct {
	dir   *directory.Directory
	cache *cache.Cache
	redis *redis.Client
}

// NewSystemHandler creates a system handler. rdb is nil unless the limiter runs on Redis.
func NewSystemHandler(dir *directory.Directory, cacheClient *cache.Cache, rdb *redis.Client) *SystemHandler {
	return &SystemHandler{dir: dir, cache: cacheClient, redis: rdb}
}

// HealthCheck handles GET /health
func (h *SystemHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	body := map[string]interface{}{
		"status":     "healthy",
		"businesses": h.dir.TotalCount(),
		"redis":      "not_configured",
	}

	if h.redis != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := h.redis.Ping(ctx).Err(); err != nil {
			log.Error().Err(err).Msg("Redis health check failed")
			body["status"] = "unhealthy"
			body["redis"] = "unavailable"
			SendJSONSuccess(w, http.StatusServiceUnavailable, body)
			return
		}
		body["redis"] = "connected"
	}

	SendJSONSuccess(w, http.StatusOK, body)
}

// CacheMetrics handles GET /cache/metrics
func (h *SystemHandler) CacheMetrics(w http.ResponseWriter, r *http.Request) {
	if !h.cache.Enabled() {
		SendJSONError(w, http.StatusServiceUnavailable, ErrCacheDisabled, "")
		return
	}
	SendJSONSuccess(w, http.StatusOK, h.cache.GetMetricsSnapshot())
}
