package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
)

// TodoRepository defines the store port for todo documents. Every method is
// exactly one store round trip. Failures other than a missing document are
// returned as *domain.StoreError.
type TodoRepository interface {
	// List returns all items ordered by createdAt descending.
	List(ctx context.Context) ([]todo.Item, error)

	// Insert stores a new item. The store layer assigns item.ID when it is
	// zero and returns the stored record.
	Insert(ctx context.Context, item todo.Item) (*todo.Item, error)

	// Replace overwrites title and description and sets updatedAt, returning
	// the record as it is after the write.
	// Returns domain.ErrNotFound if no item has the given id.
	Replace(ctx context.Context, id todo.ID, draft todo.Draft, updatedAt time.Time) (*todo.Item, error)

	// Delete removes an item and returns the record as it was.
	// Returns domain.ErrNotFound if no item has the given id.
	Delete(ctx context.Context, id todo.ID) (*todo.Item, error)
}

// StoreStatus reports whether the document store connection is usable.
// Ready must be cheap: it is consulted on every API request.
type StoreStatus interface {
	Ready() bool
}

// Store bundles the repository with its connection state and lifecycle.
type Store interface {
	TodoRepository
	StoreStatus
	HealthChecker

	// Close releases the underlying connection.
	Close(ctx context.Context) error
}
