package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsamuelsen11/tasklists-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/tasklists-service/internal/platform/config"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimit_Disabled(t *testing.T) {
	t.Parallel()

	handler := middleware.RateLimit(config.RateLimitConfig{Enabled: false})(okHandler())

	for range 50 {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test", http.NoBody))
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}
	}
}

func TestRateLimit_RejectsOverBurst(t *testing.T) {
	t.Parallel()

	handler := middleware.RateLimit(config.RateLimitConfig{
		Enabled:           true,
		RequestsPerSecond: 0.01,
		Burst:             2,
	})(okHandler())

	codes := make([]int, 0, 3)
	var last *httptest.ResponseRecorder
	for range 3 {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test", http.NoBody))
		codes = append(codes, rec.Code)
		last = rec
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Errorf("first two statuses = %v, want 200 200", codes[:2])
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Fatalf("third status = %d, want %d", codes[2], http.StatusTooManyRequests)
	}
	if ct := last.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want application/problem+json", ct)
	}
	if ra := last.Header().Get("Retry-After"); ra == "" || ra == "0" {
		t.Errorf("Retry-After = %q, want a positive number of seconds", ra)
	}
}
