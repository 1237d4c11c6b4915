package handler

import (
	"io"
	"net/http"
	"strings"

	"todoweb/internal/middleware"
	"todoweb/internal/service"
	"todoweb/internal/validation"
)

type TodoHandler struct {
	svc *service.TodoService
}

func NewTodoHandler(svc *service.TodoService) *TodoHandler {
	return &TodoHandler{svc: svc}
}

// ServeHTTP routes /api/todos and /api/todos/{id}. The session is
// resolved by middleware before this runs.
func (h *TodoHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/todos")
	path = strings.TrimPrefix(path, "/")
	todoID := strings.TrimSuffix(path, "/")

	if todoID != "" {
		switch r.Method {
		case http.MethodGet:
			h.handleGetByID(w, r, todoID)
		case http.MethodPut:
			h.handleUpdate(w, r, todoID)
		case http.MethodDelete:
			h.handleDelete(w, r, todoID)
		default:
			WriteError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
		}
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.handleList(w, r)
	case http.MethodPost:
		h.handleCreate(w, r)
	default:
		WriteError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
	}
}

func (h *TodoHandler) handleList(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r)

	todos, err := h.svc.List(r.Context(), sess.UserID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, todos)
}

func (h *TodoHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r)

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "INVALID_INPUT", "invalid request body")
		return
	}

	input, err := validation.DecodeCreate(raw)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	todo, err := h.svc.Create(r.Context(), sess.UserID, input)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, todo)
}

func (h *TodoHandler) handleGetByID(w http.ResponseWriter, r *http.Request, todoID string) {
	sess := middleware.GetSession(r)

	todo, err := h.svc.GetByID(r.Context(), sess.UserID, todoID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, todo)
}

func (h *TodoHandler) handleUpdate(w http.ResponseWriter, r *http.Request, todoID string) {
	sess := middleware.GetSession(r)

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "INVALID_INPUT", "invalid request body")
		return
	}

	// The id in the path wins over anything in the body.
	input, err := validation.DecodeUpdate(raw, todoID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	todo, err := h.svc.Update(r.Context(), sess.UserID, input)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, todo)
}

func (h *TodoHandler) handleDelete(w http.ResponseWriter, r *http.Request, todoID string) {
	sess := middleware.GetSession(r)

	if err := h.svc.Delete(r.Context(), sess.UserID, todoID); err != nil {
		handleServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"message": "todo deleted"})
}
