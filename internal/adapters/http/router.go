// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/jsamuelsen11/tasklists-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/tasklists-service/internal/platform/config"
)

// Handlers groups the endpoint handlers mounted by the router.
type Handlers struct {
	TaskLists *handlers.TaskListHandler
	Tasks     *handlers.TaskHandler
	Health    *handlers.HealthHandler
}

// NewRouter creates an HTTP handler with all application routes registered.
// CORS is applied first, then middleware globally in the order given.
func NewRouter(h Handlers, corsCfg config.CORSConfig, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsCfg.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID", "X-Correlation-ID"},
		ExposedHeaders: []string{"X-Request-ID", "X-Correlation-ID"},
		MaxAge:         corsCfg.MaxAge,
	}))

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	// API v1 routes.
	r.Route("/api/v1", func(r chi.Router) {
		// Task list CRUD.
		r.Get("/task-lists", h.TaskLists.ListTaskLists)
		r.Post("/task-lists", h.TaskLists.CreateTaskList)
		r.Get("/task-lists/{listId}", h.TaskLists.GetTaskList)
		r.Patch("/task-lists/{listId}", h.TaskLists.UpdateTaskList)
		r.Delete("/task-lists/{listId}", h.TaskLists.DeleteTaskList)

		// Tasks nested under their list.
		r.Get("/task-lists/{listId}/tasks", h.Tasks.ListTasks)
		r.Post("/task-lists/{listId}/tasks", h.Tasks.CreateTask)
		r.Get("/task-lists/{listId}/tasks/{id}", h.Tasks.GetTask)
		r.Patch("/task-lists/{listId}/tasks/{id}", h.Tasks.UpdateTask)
		r.Delete("/task-lists/{listId}/tasks/{id}", h.Tasks.DeleteTask)
	})

	return r
}
