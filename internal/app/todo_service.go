// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-service/internal/ports"
)

// Compile-time check that TodoService implements ports.TodoService.
var _ ports.TodoService = (*TodoService)(nil)

// Option configures a TodoService.
type Option func(*TodoService)

// WithClock replaces time.Now as the source of createdAt/updatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *TodoService) {
		s.now = now
	}
}

// TodoService implements ports.TodoService on top of a TodoRepository. It
// trims and validates input, stamps timestamps and logs failures. Each
// operation makes exactly one repository call.
type TodoService struct {
	repo   ports.TodoRepository
	logger *slog.Logger
	now    func() time.Time
}

// NewTodoService creates a TodoService. A nil logger discards output.
func NewTodoService(repo ports.TodoRepository, logger *slog.Logger, opts ...Option) *TodoService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &TodoService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListTodos returns all items, newest first.
func (s *TodoService) ListTodos(ctx context.Context) ([]todo.Item, error) {
	s.logger.DebugContext(ctx, "listing todos")

	items, err := s.repo.List(ctx)
	if err != nil {
		s.logFailure(ctx, "failed to list todos", "ListTodos", err)
		return nil, err
	}

	return items, nil
}

// CreateTodo validates the draft and stores it as a new item with
// createdAt == updatedAt.
func (s *TodoService) CreateTodo(ctx context.Context, draft todo.Draft) (*todo.Item, error) {
	clean, err := draft.Normalize()
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "creating todo")

	stamp := s.timestamp()
	created, err := s.repo.Insert(ctx, todo.Item{
		Title:       clean.Title,
		Description: clean.Description,
		CreatedAt:   stamp,
		UpdatedAt:   stamp,
	})
	if err != nil {
		s.logFailure(ctx, "failed to create todo", "CreateTodo", err)
		return nil, err
	}

	return created, nil
}

// UpdateTodo replaces title and description of an existing item. An empty
// description in the draft clears the stored one.
func (s *TodoService) UpdateTodo(ctx context.Context, id todo.ID, draft todo.Draft) (*todo.Item, error) {
	clean, err := draft.Normalize()
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "updating todo", slog.String("todo_id", id.String()))

	updated, err := s.repo.Replace(ctx, id, clean, s.timestamp())
	if err != nil {
		s.logFailure(ctx, "failed to update todo", "UpdateTodo", err, slog.String("todo_id", id.String()))
		return nil, err
	}

	return updated, nil
}

// DeleteTodo removes an item and returns it as it was before removal.
func (s *TodoService) DeleteTodo(ctx context.Context, id todo.ID) (*todo.Item, error) {
	s.logger.InfoContext(ctx, "deleting todo", slog.String("todo_id", id.String()))

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logFailure(ctx, "failed to delete todo", "DeleteTodo", err, slog.String("todo_id", id.String()))
		return nil, err
	}

	return deleted, nil
}

// timestamp returns the current time at store precision.
func (s *TodoService) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Millisecond)
}

// logFailure logs a repository error. Missing items are an expected client
// outcome and are logged below error level.
func (s *TodoService) logFailure(ctx context.Context, msg, op string, err error, attrs ...slog.Attr) {
	level := slog.LevelError
	if errors.Is(err, domain.ErrNotFound) {
		level = slog.LevelInfo
	}

	attrs = append(attrs,
		slog.String("operation", op),
		slog.Any("error", err),
	)
	s.logger.LogAttrs(ctx, level, msg, attrs...)
}
