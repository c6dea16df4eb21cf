package handlers_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jsamuelsen11/tasklists-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/tasklists-service/internal/domain/task"
	"github.com/jsamuelsen11/tasklists-service/internal/domain/tasklist"
)

var (
	testTime   = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)
	testListID = uuid.MustParse("6f1c1f9e-3a55-4a9e-b5b6-0d7f0a3e2c11")
	testTaskID = uuid.MustParse("0b6d6b8c-1f0e-4c7e-9a55-4a3c2b1d0e9f")
)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func newRequest(method, target, body string, params map[string]string) *http.Request {
	var rd io.Reader = http.NoBody
	if body != "" {
		rd = strings.NewReader(body)
	}
	return withChiParams(httptest.NewRequest(method, target, rd), params)
}

func validTaskList() tasklist.TaskList {
	return tasklist.TaskList{
		ID:          testListID,
		Title:       "Groceries",
		Description: "weekly shop",
		Tasks:       []task.Task{},
		Created:     testTime,
		Updated:     testTime,
	}
}

func validTask() task.Task {
	return task.Task{
		ID:       testTaskID,
		Title:    "Buy milk",
		ListID:   testListID,
		Priority: task.PriorityMedium,
		Status:   task.StatusOpen,
		Created:  testTime,
		Updated:  testTime,
	}
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}

// requireProblemAt asserts a 400 problem document with an error at location.
func requireProblemAt(t *testing.T, rec *httptest.ResponseRecorder, location string) {
	t.Helper()
	requireStatus(t, rec, http.StatusBadRequest)

	resp := decodeJSON[dto.ErrorResponse](t, rec)
	for _, e := range resp.Errors {
		if e.Location == location {
			return
		}
	}
	t.Errorf("errors = %+v, want one at %q", resp.Errors, location)
}

func ptr[T any](v T) *T { return &v }
