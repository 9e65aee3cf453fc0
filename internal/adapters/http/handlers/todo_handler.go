package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/todo-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-service/internal/ports"
)

// Envelope messages for the todo endpoints.
const (
	msgListed       = "Todos retrieved successfully"
	msgCreated      = "Todo created successfully"
	msgUpdated      = "Todo updated successfully"
	msgDeleted      = "Todo deleted successfully"
	msgListFailed   = "Failed to retrieve todos"
	msgCreateFailed = "Failed to create todo"
	msgUpdateFailed = "Failed to update todo"
	msgDeleteFailed = "Failed to delete todo"
)

// TodoHandler handles HTTP requests for todo CRUD operations.
type TodoHandler struct {
	svc ports.TodoService
}

// NewTodoHandler creates a new TodoHandler with the given service port.
func NewTodoHandler(svc ports.TodoService) *TodoHandler {
	return &TodoHandler{svc: svc}
}

// ListTodos handles GET /api/todos.
func (h *TodoHandler) ListTodos(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListTodos(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err, msgListFailed)
		return
	}

	dto.WriteJSON(w, r, http.StatusOK, dto.SuccessList(msgListed, dto.ToTodoResponses(items)))
}

// CreateTodo handles POST /api/todos.
func (h *TodoHandler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	draft, ok := decodeDraft(w, r)
	if !ok {
		return
	}

	created, err := h.svc.CreateTodo(r.Context(), draft)
	if err != nil {
		dto.WriteErrorResponse(w, r, err, msgCreateFailed)
		return
	}

	dto.WriteJSON(w, r, http.StatusCreated, dto.Success(msgCreated, dto.ToTodoResponse(created)))
}

// UpdateTodo handles PUT /api/todos/{id}. The identifier is checked before
// the body is read.
func (h *TodoHandler) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	id, err := parseTodoID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err, msgUpdateFailed)
		return
	}

	draft, ok := decodeDraft(w, r)
	if !ok {
		return
	}

	updated, err := h.svc.UpdateTodo(r.Context(), id, draft)
	if err != nil {
		dto.WriteErrorResponse(w, r, err, msgUpdateFailed)
		return
	}

	dto.WriteJSON(w, r, http.StatusOK, dto.Success(msgUpdated, dto.ToTodoResponse(updated)))
}

// DeleteTodo handles DELETE /api/todos/{id}. The removed record is echoed
// back in data.
func (h *TodoHandler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	id, err := parseTodoID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err, msgDeleteFailed)
		return
	}

	deleted, err := h.svc.DeleteTodo(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err, msgDeleteFailed)
		return
	}

	dto.WriteJSON(w, r, http.StatusOK, dto.Success(msgDeleted, dto.ToTodoResponse(deleted)))
}
