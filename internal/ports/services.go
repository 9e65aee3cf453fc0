package ports

import (
	"context"

	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
)

// TodoService defines the service port for todo item operations.
// Implemented by the application layer; called by inbound adapters (handlers).
type TodoService interface {
	// ListTodos returns every item, newest first.
	ListTodos(ctx context.Context) ([]todo.Item, error)

	// CreateTodo trims and validates the draft, then persists it with fresh
	// timestamps. Returns domain.ErrValidation if the draft fails validation.
	CreateTodo(ctx context.Context, draft todo.Draft) (*todo.Item, error)

	// UpdateTodo replaces title and description of an existing item and
	// refreshes its updatedAt.
	// Returns domain.ErrValidation if the draft fails validation.
	// Returns domain.ErrNotFound if the item does not exist.
	UpdateTodo(ctx context.Context, id todo.ID, draft todo.Draft) (*todo.Item, error)

	// DeleteTodo removes an item and returns the removed record.
	// Returns domain.ErrNotFound if the item does not exist.
	DeleteTodo(ctx context.Context, id todo.ID) (*todo.Item, error)
}
