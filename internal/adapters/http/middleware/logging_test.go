package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/tasklists-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/tasklists-service/internal/platform/logging"
)

func testLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// logLines decodes every JSON log line written to buf.
func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var lines []map[string]any
	for line := range strings.SplitSeq(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("decoding log line %q: %v", line, err)
		}
		lines = append(lines, m)
	}
	return lines
}

func accessLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	for _, l := range logLines(t, buf) {
		if l["msg"] == "request completed" {
			return l
		}
	}
	t.Fatalf("no access line in %s", buf.String())
	return nil
}

func TestLogging_AccessLineLevels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status    int
		wantLevel string
	}{
		{http.StatusOK, "INFO"},
		{http.StatusNoContent, "INFO"},
		{http.StatusBadRequest, "WARN"},
		{http.StatusNotFound, "WARN"},
		{http.StatusInternalServerError, "ERROR"},
		{http.StatusServiceUnavailable, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			handler := middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))
			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/task-lists", http.NoBody))

			line := accessLine(t, &buf)
			if line["level"] != tt.wantLevel {
				t.Errorf("level = %v, want %s", line["level"], tt.wantLevel)
			}
			if line["status"] != float64(tt.status) {
				t.Errorf("status = %v, want %d", line["status"], tt.status)
			}
		})
	}
}

func TestLogging_RecordsRequestShape(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"id":"x"}`))
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/v1/task-lists", http.NoBody))

	line := accessLine(t, &buf)
	if line["method"] != http.MethodPost {
		t.Errorf("method = %v", line["method"])
	}
	if line["path"] != "/api/v1/task-lists" {
		t.Errorf("path = %v", line["path"])
	}
	if line["bytes"] != float64(10) {
		t.Errorf("bytes = %v, want 10", line["bytes"])
	}
	if _, ok := line["duration"]; !ok {
		t.Error("duration missing")
	}
}

func TestLogging_IncludesRoutePattern(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := chi.NewRouter()
	r.Use(middleware.Logging(testLogger(&buf)))
	r.Get("/api/v1/task-lists/{listId}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/task-lists/6f1c2a3e-8d4b-4f7a-9c1e-2b3d4e5f6a7b", http.NoBody))

	if got := accessLine(t, &buf)["route"]; got != "/api/v1/task-lists/{listId}" {
		t.Errorf("route = %v, want the chi pattern", got)
	}
}

func TestLogging_StoresRequestLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.RequestID()(middleware.CorrelationID()(
		middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			logging.FromContext(r.Context()).InfoContext(r.Context(), "inside handler")
		})),
	))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/task-lists", http.NoBody)
	req.Header.Set("X-Request-ID", "req-log-test")
	req.Header.Set("X-Correlation-ID", "corr-log-test")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	var found bool
	for _, l := range logLines(t, &buf) {
		if l["msg"] != "inside handler" {
			continue
		}
		found = true
		if l["request_id"] != "req-log-test" {
			t.Errorf("request_id = %v", l["request_id"])
		}
		if l["correlation_id"] != "corr-log-test" {
			t.Errorf("correlation_id = %v", l["correlation_id"])
		}
	}
	if !found {
		t.Fatal("handler log line missing")
	}
}

func TestLogging_RedactsCredentialHeaders(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.Logging(testLogger(&buf))(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/task-lists", http.NoBody)
	req.Header.Set("Authorization", "Bearer secret-token")
	req.Header.Set("Cookie", "session=abc")
	req.Header.Set("Accept", "application/json")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	if strings.Contains(out, "secret-token") || strings.Contains(out, "session=abc") {
		t.Errorf("credentials leaked into logs: %s", out)
	}
	if !strings.Contains(out, "[REDACTED]") {
		t.Error("expected [REDACTED] marker")
	}
	if !strings.Contains(out, "application/json") {
		t.Error("non-sensitive header missing")
	}
}

func TestLogging_SkipsHeadersAboveDebug(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	handler := middleware.Logging(logger)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/task-lists", http.NoBody)
	req.Header.Set("Accept", "application/json")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if strings.Contains(buf.String(), "request headers") {
		t.Error("headers logged at INFO level")
	}
}
