package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"gotodo/internal/todo"
	"gotodo/middleware"
	"gotodo/models"
)

type todoResponse struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Done  bool   `json:"done"`
}

type createTodoRequest struct {
	Title *string `json:"title"`
}

type updateTodoRequest struct {
	Title *string `json:"title"`
	Done  *bool   `json:"done"`
}

func toTodoResponse(t *models.Todo) todoResponse {
	return todoResponse{ID: t.ID, Title: t.Title, Done: t.Done}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeAPIError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// API Handlers. Auth is the same session cookie as the page surface; the
// RequireAPI guard has already placed the user in the context.

func (h *WebHandler) APITodos(w http.ResponseWriter, r *http.Request) {
	u := middleware.UserFromContext(r.Context())

	todos, err := h.todoService.List(r.Context(), u.ID)
	if err != nil {
		writeAPIError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	out := make([]todoResponse, 0, len(todos))
	for _, t := range todos {
		out = append(out, toTodoResponse(t))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *WebHandler) APICreateTodo(w http.ResponseWriter, r *http.Request) {
	u := middleware.UserFromContext(r.Context())

	var req createTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAPIError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Title == nil {
		writeAPIError(w, http.StatusBadRequest, "title is required")
		return
	}

	created, err := h.todoService.Create(r.Context(), u.ID, *req.Title)
	if err != nil {
		if errors.Is(err, todo.ErrInvalidTitle) {
			writeAPIError(w, http.StatusBadRequest, "title is required")
			return
		}
		writeAPIError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, toTodoResponse(created))
}

func (h *WebHandler) APIUpdateTodo(w http.ResponseWriter, r *http.Request) {
	u := middleware.UserFromContext(r.Context())
	id := pathID(r)

	var req updateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAPIError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.todoService.Update(r.Context(), u.ID, id, req.Title, req.Done)
	if err != nil {
		switch {
		case errors.Is(err, todo.ErrNotFound):
			writeAPIError(w, http.StatusNotFound, "todo not found")
		case errors.Is(err, todo.ErrInvalidTitle):
			writeAPIError(w, http.StatusBadRequest, "title must not be empty")
		default:
			writeAPIError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, toTodoResponse(updated))
}

func (h *WebHandler) APIDeleteTodo(w http.ResponseWriter, r *http.Request) {
	u := middleware.UserFromContext(r.Context())
	id := pathID(r)

	if err := h.todoService.Delete(r.Context(), u.ID, id); err != nil {
		if errors.Is(err, todo.ErrNotFound) {
			writeAPIError(w, http.StatusNotFound, "todo not found")
			return
		}
		writeAPIError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "todo deleted"})
}
