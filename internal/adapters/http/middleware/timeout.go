package middleware

import (
	"context"
	"log/slog"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/tasklists-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/tasklists-service/internal/platform/logging"
)

const timeoutDetail = "request deadline exceeded"

// Timeout bounds each request to d. The handler runs on its own goroutine
// against a buffered writer and a context carrying the deadline, so repository
// calls observe it. When the deadline passes first, the buffer is discarded
// and a 504 problem is written instead; later handler writes fail with
// http.ErrHandlerTimeout. A panic in the handler is re-raised on the serving
// goroutine so Recovery still sees it. A non-positive d disables the limit.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if d <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			bw := &bufferedWriter{header: make(http.Header)}
			done := make(chan struct{})
			panicked := make(chan any, 1)

			go func() {
				defer func() {
					if v := recover(); v != nil {
						panicked <- v
					}
				}()
				next.ServeHTTP(bw, r.WithContext(ctx))
				close(done)
			}()

			select {
			case v := <-panicked:
				panic(v)
			case <-done:
				bw.mu.Lock()
				defer bw.mu.Unlock()
				bw.copyTo(w)
			case <-ctx.Done():
				bw.mu.Lock()
				defer bw.mu.Unlock()
				bw.expired = true
				logging.FromContext(r.Context()).WarnContext(r.Context(), "request timed out",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Duration("timeout", d),
				)
				dto.WriteStatusResponse(w, r, http.StatusGatewayTimeout, timeoutDetail)
			}
		})
	}
}

// bufferedWriter holds the handler's response until Timeout decides whether
// it is delivered. mu is shared between the handler goroutine and Timeout.
type bufferedWriter struct {
	mu      sync.Mutex
	header  http.Header
	body    []byte
	code    int
	expired bool
}

func (bw *bufferedWriter) Header() http.Header {
	return bw.header
}

func (bw *bufferedWriter) WriteHeader(code int) {
	bw.mu.Lock()
	defer bw.mu.Unlock()

	if bw.code == 0 && !bw.expired {
		bw.code = code
	}
}

func (bw *bufferedWriter) Write(b []byte) (int, error) {
	bw.mu.Lock()
	defer bw.mu.Unlock()

	if bw.expired {
		return 0, http.ErrHandlerTimeout
	}
	if bw.code == 0 {
		bw.code = http.StatusOK
	}
	bw.body = append(bw.body, b...)
	return len(b), nil
}

// copyTo delivers the buffered response. Callers hold bw.mu.
func (bw *bufferedWriter) copyTo(w http.ResponseWriter) {
	maps.Copy(w.Header(), bw.header)
	if bw.code == 0 {
		bw.code = http.StatusOK
	}
	w.WriteHeader(bw.code)
	if len(bw.body) > 0 {
		_, _ = w.Write(bw.body)
	}
}
