package middleware

import (
	"github.com/deppfellow/travelog/internal/server"
)

// RateLimitMiddleware reports rejected requests; the limiter itself is
// echo's RateLimiter, configured by the router.
type RateLimitMiddleware struct {
	server *server.Server
}

func NewRateLimitMiddleware(s *server.Server) *RateLimitMiddleware {
	return &RateLimitMiddleware{server: s}
}

// RecordRateLimitHit logs a rejected request and, when New Relic is
// enabled, records a RateLimitHit custom event.
func (r *RateLimitMiddleware) RecordRateLimitHit(endpoint, identifier string) {
	r.server.Logger.Warn().
		Str("endpoint", endpoint).
		Str("client", identifier).
		Msg("rate limit exceeded")

	if r.server.LoggerService != nil && r.server.LoggerService.GetApplication() != nil {
		r.server.LoggerService.GetApplication().RecordCustomEvent("RateLimitHit", map[string]any{
			"endpoint": endpoint,
			"client":   identifier,
		})
	}
}
