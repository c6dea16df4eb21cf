package middleware

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/tasklists-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/tasklists-service/internal/platform/config"
	"github.com/jsamuelsen11/tasklists-service/internal/platform/logging"
)

// RateLimit returns middleware that applies a process-wide token bucket to
// inbound requests. Requests over the limit get a 429 problem response with
// a Retry-After hint. When cfg.Enabled is false the middleware is a no-op.
func RateLimit(cfg config.RateLimitConfig) func(http.Handler) http.Handler {
	if !cfg.Enabled {
		return func(next http.Handler) http.Handler { return next }
	}

	limiter := rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			res := limiter.Reserve()
			if delay := res.Delay(); delay > 0 {
				res.Cancel()

				logging.FromContext(r.Context()).WarnContext(r.Context(), "rate limit exceeded",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				)
				w.Header().Set("Retry-After", retryAfter(delay))
				dto.WriteStatusResponse(w, r, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// retryAfter renders a delay as whole seconds, rounded up, at least 1.
func retryAfter(d time.Duration) string {
	secs := max(int(math.Ceil(d.Seconds())), 1)
	return strconv.Itoa(secs)
}
