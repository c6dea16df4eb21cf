package http_test

import (
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	adapthttp "github.com/jsamuelsen11/tasklists-service/internal/adapters/http"
	"github.com/jsamuelsen11/tasklists-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/tasklists-service/internal/domain/tasklist"
	"github.com/jsamuelsen11/tasklists-service/internal/platform/config"
	"github.com/jsamuelsen11/tasklists-service/mocks"
)

var testCORS = config.CORSConfig{AllowedOrigins: []string{"https://tasks.example.com"}, MaxAge: 300}

type routerMocks struct {
	lists    *mocks.MockTaskListService
	tasks    *mocks.MockTaskService
	registry *mocks.MockHealthRegistry
}

func newTestRouter(t *testing.T, middlewares ...func(http.Handler) http.Handler) (http.Handler, routerMocks) {
	t.Helper()
	m := routerMocks{
		lists:    mocks.NewMockTaskListService(t),
		tasks:    mocks.NewMockTaskService(t),
		registry: mocks.NewMockHealthRegistry(t),
	}

	router := adapthttp.NewRouter(adapthttp.Handlers{
		TaskLists: handlers.NewTaskListHandler(m.lists),
		Tasks:     handlers.NewTaskHandler(m.tasks),
		Health:    handlers.NewHealthHandler(m.registry),
	}, testCORS, middlewares...)
	return router, m
}

func TestRouter_Routes(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)
	mux, ok := router.(*chi.Mux)
	if !ok {
		t.Fatalf("router is %T, want *chi.Mux", router)
	}

	var got []string
	err := chi.Walk(mux, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		got = append(got, method+" "+route)
		return nil
	})
	if err != nil {
		t.Fatalf("chi.Walk: %v", err)
	}

	const lists, list = "/api/v1/task-lists", "/api/v1/task-lists/{listId}"
	want := []string{
		"GET /health/live",
		"GET /health/ready",
		"GET " + lists, "POST " + lists,
		"GET " + list, "PATCH " + list, "DELETE " + list,
		"GET " + list + "/tasks", "POST " + list + "/tasks",
		"GET " + list + "/tasks/{id}", "PATCH " + list + "/tasks/{id}", "DELETE " + list + "/tasks/{id}",
	}
	for _, route := range want {
		if !slices.Contains(got, route) {
			t.Errorf("route %q not registered; have %v", route, got)
		}
	}
}

func TestRouter_Dispatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		method string
		target string
		expect func(m routerMocks)
		want   int
	}{
		{
			name:   "list task lists",
			method: http.MethodGet,
			target: "/api/v1/task-lists",
			expect: func(m routerMocks) { m.lists.EXPECT().List(mock.Anything).Return([]tasklist.TaskList{}, nil) },
			want:   http.StatusOK,
		},
		{name: "unknown path", method: http.MethodGet, target: "/nonexistent", want: http.StatusNotFound},
		{name: "unsupported method", method: http.MethodPut, target: "/api/v1/task-lists", want: http.StatusMethodNotAllowed},
		{name: "liveness", method: http.MethodGet, target: "/health/live", want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			router, m := newTestRouter(t)
			if tt.expect != nil {
				tt.expect(m)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, nil))

			if rec.Code != tt.want {
				t.Errorf("%s %s = %d, want %d", tt.method, tt.target, rec.Code, tt.want)
			}
		})
	}
}

func TestRouter_AppliesMiddleware(t *testing.T) {
	t.Parallel()

	var seen []string
	tag := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = append(seen, r.URL.Path)
			next.ServeHTTP(w, r)
		})
	}

	router, m := newTestRouter(t, tag)
	m.registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	if len(seen) != 1 || seen[0] != "/health/ready" {
		t.Errorf("middleware saw %v, want [/health/ready]", seen)
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	t.Parallel()

	tests := []struct {
		origin string
		want   string
	}{
		{origin: "https://tasks.example.com", want: "https://tasks.example.com"},
		{origin: "https://evil.example.org", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.origin, func(t *testing.T) {
			t.Parallel()

			router, _ := newTestRouter(t)
			req := httptest.NewRequest(http.MethodOptions, "/api/v1/task-lists", nil)
			req.Header.Set("Origin", tt.origin)
			req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.want {
				t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, tt.want)
			}
		})
	}
}
