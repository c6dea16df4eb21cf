package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestStatusRecorder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		write     func(w http.ResponseWriter)
		wantCode  int
		wantBytes int64
		wantWrote bool
	}{
		{
			name:     "nothing written",
			write:    func(http.ResponseWriter) {},
			wantCode: http.StatusOK,
		},
		{
			name:      "explicit status",
			write:     func(w http.ResponseWriter) { w.WriteHeader(http.StatusNoContent) },
			wantCode:  http.StatusNoContent,
			wantWrote: true,
		},
		{
			name: "first status wins",
			write: func(w http.ResponseWriter) {
				w.WriteHeader(http.StatusNotFound)
				w.WriteHeader(http.StatusOK)
			},
			wantCode:  http.StatusNotFound,
			wantWrote: true,
		},
		{
			name: "body counts bytes",
			write: func(w http.ResponseWriter) {
				_, _ = w.Write([]byte(`[]`))
				_, _ = w.Write([]byte("\n"))
			},
			wantCode:  http.StatusOK,
			wantBytes: 3,
			wantWrote: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sr := record(httptest.NewRecorder())
			tt.write(sr)

			if sr.code != tt.wantCode {
				t.Errorf("code = %d, want %d", sr.code, tt.wantCode)
			}
			if sr.bytes != tt.wantBytes {
				t.Errorf("bytes = %d, want %d", sr.bytes, tt.wantBytes)
			}
			if sr.wrote != tt.wantWrote {
				t.Errorf("wrote = %v, want %v", sr.wrote, tt.wantWrote)
			}
		})
	}
}

func TestStatusRecorder_Unwrap(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	if got := record(rec).Unwrap(); got != rec {
		t.Error("Unwrap did not return the wrapped writer")
	}
}
