// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/tasklists-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/tasklists-service/internal/adapters/http/schema"
	"github.com/jsamuelsen11/tasklists-service/internal/domain"
	"github.com/jsamuelsen11/tasklists-service/internal/ports"
)

// TaskListHandler handles HTTP requests for task list CRUD.
type TaskListHandler struct {
	svc ports.TaskListService
}

// NewTaskListHandler creates a new TaskListHandler with the given service port.
func NewTaskListHandler(svc ports.TaskListService) *TaskListHandler {
	return &TaskListHandler{svc: svc}
}

// ListTaskLists handles GET /api/v1/task-lists.
func (h *TaskListHandler) ListTaskLists(w http.ResponseWriter, r *http.Request) {
	lists, err := h.svc.List(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTaskListResponses(lists))
}

// CreateTaskList handles POST /api/v1/task-lists.
func (h *TaskListHandler) CreateTaskList(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTaskListRequest
	if !decodeAndValidate(w, r, schema.TaskListCreate, &req) {
		return
	}

	created, err := h.svc.Create(r.Context(), req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTaskListResponse(created))
}

// GetTaskList handles GET /api/v1/task-lists/{listId}.
func (h *TaskListHandler) GetTaskList(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID(r, "listId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	l, err := h.svc.Get(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTaskListResponse(l))
}

// UpdateTaskList handles PATCH /api/v1/task-lists/{listId}. A missing list
// is reported before the body is looked at.
func (h *TaskListHandler) UpdateTaskList(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID(r, "listId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	exists, err := h.svc.Exists(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	if !exists {
		dto.WriteErrorResponse(w, r, domain.ErrNotFound)
		return
	}

	var req dto.UpdateTaskListRequest
	if !decodeAndValidate(w, r, schema.TaskListUpdate, &req) {
		return
	}

	updated, err := h.svc.Update(r.Context(), id, req.ToPatch())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTaskListResponse(updated))
}

// DeleteTaskList handles DELETE /api/v1/task-lists/{listId}.
func (h *TaskListHandler) DeleteTaskList(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID(r, "listId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
