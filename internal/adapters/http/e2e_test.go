package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapthttp "github.com/jsamuelsen11/tasklists-service/internal/adapters/http"
	"github.com/jsamuelsen11/tasklists-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/tasklists-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/tasklists-service/internal/adapters/memory"
	"github.com/jsamuelsen11/tasklists-service/internal/app"
	"github.com/jsamuelsen11/tasklists-service/internal/platform/health"
)

// newStack wires the router to real services over an in-memory store.
func newStack(t *testing.T) http.Handler {
	t.Helper()

	store := memory.New()
	lists := app.NewTaskListService(store.TaskLists(), store.Tasks(), discardLogger())
	tasks := app.NewTaskService(store.Tasks(), store.TaskLists(), discardLogger())

	registry := health.New()
	registry.Register(store)

	return adapthttp.NewRouter(adapthttp.Handlers{
		TaskLists: handlers.NewTaskListHandler(lists),
		Tasks:     handlers.NewTaskHandler(tasks),
		Health:    handlers.NewHealthHandler(registry),
	}, testCORS)
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), "body: %s", rec.Body.String())
	return v
}

func TestEndToEnd_ListAndTaskLifecycle(t *testing.T) {
	t.Parallel()

	h := newStack(t)

	rec := do(t, h, http.MethodPost, "/api/v1/task-lists", `{"title":"Groceries"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	list := decode[dto.TaskListResponse](t, rec)
	require.NotEmpty(t, list.ID)
	assert.Equal(t, 0, list.Count)
	assert.Nil(t, list.Progress)

	listURL := "/api/v1/task-lists/" + list.ID.String()

	rec = do(t, h, http.MethodPost, listURL+"/tasks", `{"title":"Milk"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	milk := decode[dto.TaskResponse](t, rec)
	assert.Equal(t, "OPEN", milk.Status)
	assert.Equal(t, "MEDIUM", milk.Priority)
	assert.Nil(t, milk.DueDate)

	taskURL := listURL + "/tasks/" + milk.ID.String()

	rec = do(t, h, http.MethodPatch, taskURL, `{"status":"CLOSED"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "CLOSED", decode[dto.TaskResponse](t, rec).Status)

	rec = do(t, h, http.MethodGet, listURL, "")
	require.Equal(t, http.StatusOK, rec.Code)
	list = decode[dto.TaskListResponse](t, rec)
	assert.Equal(t, 1, list.Count)
	require.NotNil(t, list.Progress)
	assert.InDelta(t, 1.0, *list.Progress, 1e-9)

	rec = do(t, h, http.MethodDelete, taskURL, "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, h, http.MethodGet, listURL, "")
	require.Equal(t, http.StatusOK, rec.Code)
	list = decode[dto.TaskListResponse](t, rec)
	assert.Equal(t, 0, list.Count)
	assert.Nil(t, list.Progress)
}

func TestEndToEnd_ProgressAcrossTasks(t *testing.T) {
	t.Parallel()

	h := newStack(t)

	list := decode[dto.TaskListResponse](t, do(t, h, http.MethodPost, "/api/v1/task-lists", `{"title":"Chores"}`))
	listURL := "/api/v1/task-lists/" + list.ID.String()

	var ids []string
	for _, title := range []string{"dishes", "laundry", "floors", "windows"} {
		rec := do(t, h, http.MethodPost, listURL+"/tasks", `{"title":"`+title+`","priority":"LOW"}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		ids = append(ids, decode[dto.TaskResponse](t, rec).ID.String())
	}

	rec := do(t, h, http.MethodPatch, listURL+"/tasks/"+ids[0], `{"status":"CLOSED"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	lists := decode[[]dto.TaskListResponse](t, do(t, h, http.MethodGet, "/api/v1/task-lists", ""))
	require.Len(t, lists, 1)
	assert.Equal(t, 4, lists[0].Count)
	require.NotNil(t, lists[0].Progress)
	assert.InDelta(t, 0.25, *lists[0].Progress, 1e-9)

	tasks := decode[[]dto.TaskResponse](t, do(t, h, http.MethodGet, listURL+"/tasks", ""))
	assert.Len(t, tasks, 4)
}

func TestEndToEnd_TasksAreScopedToTheirList(t *testing.T) {
	t.Parallel()

	h := newStack(t)

	first := decode[dto.TaskListResponse](t, do(t, h, http.MethodPost, "/api/v1/task-lists", `{"title":"first"}`))
	second := decode[dto.TaskListResponse](t, do(t, h, http.MethodPost, "/api/v1/task-lists", `{"title":"second"}`))

	firstURL := "/api/v1/task-lists/" + first.ID.String()
	secondURL := "/api/v1/task-lists/" + second.ID.String()

	created := decode[dto.TaskResponse](t, do(t, h, http.MethodPost, firstURL+"/tasks", `{"title":"only here"}`))

	rec := do(t, h, http.MethodGet, secondURL+"/tasks/"+created.ID.String(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodDelete, secondURL+"/tasks/"+created.ID.String(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodGet, secondURL+"/tasks", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = do(t, h, http.MethodGet, firstURL+"/tasks/"+created.ID.String(), "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestEndToEnd_DeleteListRemovesItsTasks(t *testing.T) {
	t.Parallel()

	h := newStack(t)

	list := decode[dto.TaskListResponse](t, do(t, h, http.MethodPost, "/api/v1/task-lists", `{"title":"temp"}`))
	listURL := "/api/v1/task-lists/" + list.ID.String()
	created := decode[dto.TaskResponse](t, do(t, h, http.MethodPost, listURL+"/tasks", `{"title":"gone soon"}`))

	rec := do(t, h, http.MethodDelete, listURL, "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, h, http.MethodGet, listURL, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodGet, listURL+"/tasks/"+created.ID.String(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodDelete, listURL, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEndToEnd_ValidationFailures(t *testing.T) {
	t.Parallel()

	h := newStack(t)
	list := decode[dto.TaskListResponse](t, do(t, h, http.MethodPost, "/api/v1/task-lists", `{"title":"v"}`))
	listURL := "/api/v1/task-lists/" + list.ID.String()

	tests := []struct {
		name     string
		method   string
		target   string
		body     string
		location string
	}{
		{"list without title", http.MethodPost, "/api/v1/task-lists", `{}`, "body.title"},
		{"list with unknown field", http.MethodPost, "/api/v1/task-lists", `{"title":"x","color":"red"}`, "body"},
		{"list patch with empty title", http.MethodPatch, listURL, `{"title":""}`, "body.title"},
		{"task with bad priority", http.MethodPost, listURL + "/tasks", `{"title":"x","priority":"URGENT"}`, "body.priority"},
		{"list with zero id", http.MethodPost, "/api/v1/task-lists", `{"id":"00000000-0000-0000-0000-000000000000","title":"Groceries"}`, "body.id"},
		{"task with zero id", http.MethodPost, listURL + "/tasks", `{"id":"00000000-0000-0000-0000-000000000000","title":"x"}`, "body.id"},
		{"task with bad list id", http.MethodGet, "/api/v1/task-lists/not-a-uuid/tasks", "", "path.listId"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := do(t, h, tt.method, tt.target, tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
			assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))

			problem := decode[dto.ErrorResponse](t, rec)
			locations := make([]string, 0, len(problem.Errors))
			for _, d := range problem.Errors {
				locations = append(locations, d.Location)
			}
			assert.Contains(t, locations, tt.location)
		})
	}
}

func TestEndToEnd_ReadinessReportsStore(t *testing.T) {
	t.Parallel()

	rec := do(t, newStack(t), http.MethodGet, "/health/ready", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "memory")
}
