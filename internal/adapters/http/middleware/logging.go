package middleware

import (
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/jsamuelsen11/tasklists-service/internal/platform/logging"
)

// Logging attaches a request-scoped logger carrying request_id and
// correlation_id to the context (see logging.FromContext) and writes one
// access line per request once the handler returns. Server errors log at
// ERROR, client errors at WARN, everything else at INFO. The chi route pattern
// is included when the router matched one.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			reqLogger := logger.With(
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			)
			ctx = logging.WithLogger(ctx, reqLogger)

			if reqLogger.Enabled(ctx, slog.LevelDebug) {
				reqLogger.DebugContext(ctx, "request headers", headerGroup(r.Header))
			}

			sr := record(w)
			next.ServeHTTP(sr, r.WithContext(ctx))

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sr.code),
				slog.Int64("bytes", sr.bytes),
				slog.Duration("duration", time.Since(start)),
			}
			if route := routePattern(ctx); route != "" {
				attrs = append(attrs, slog.String("route", route))
			}
			reqLogger.LogAttrs(ctx, accessLevel(sr.code), "request completed", attrs...)
		})
	}
}

func accessLevel(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// headerGroup renders request headers as a "headers" group with credentials
// masked. Multi-value headers are joined with a comma.
func headerGroup(h http.Header) slog.Attr {
	attrs := make([]any, 0, len(h))
	for _, name := range slices.Sorted(maps.Keys(h)) {
		value := strings.Join(h.Values(name), ",")
		if logging.IsSensitiveHeader(name) {
			value = "[REDACTED]"
		}
		attrs = append(attrs, slog.String(name, value))
	}
	return slog.Group("headers", attrs...)
}
