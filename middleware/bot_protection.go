package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/lexabu/woman-owned.com/model"
	"github.com/lexabu/woman-owned.com/security"
	"github.com/rs/zerolog/log"
)

// BotProtection blocks automated clients on the form routes
type BotProtection struct {
	detector *security.BotDetector
	enabled  bool
	onBlock  func(reason string)
}

// NewBotProtection creates a new bot protection middleware. onBlock may be nil.
func NewBotProtection(detector *security.BotDetector, enabled bool, onBlock func(reason string)) *BotProtection {
	return &BotProtection{
		detector: detector,
		enabled:  enabled,
		onBlock:  onBlock,
	}
}

// Protect returns a middleware function that blocks bots
func (bp *BotProtection) Protect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !bp.enabled {
			next.ServeHTTP(w, r)
			return
		}

		isBot, reason := bp.detector.IsBot(r)
		if !isBot {
			next.ServeHTTP(w, r)
			return
		}

		log.Warn().
			Str("client", security.ClientAddr(r)).
			Str("user_agent", r.UserAgent()).
			Str("reason", reason).
			Str("path", r.URL.Path).
			Msg("Bot detected - form post blocked")

		if bp.onBlock != nil {
			bp.onBlock(reason)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		if err := json.NewEncoder(w).Encode(model.FormResponse{
			Success: false,
			Error:   "This request appears to be automated. If you believe this is an error, please contact us.",
		}); err != nil {
			log.Error().Err(err).Msg("Failed to encode bot protection response")
		}
	})
}

// Stats returns bot detection statistics
func (bp *BotProtection) Stats() security.DetectorStats {
	return bp.detector.Stats()
}
