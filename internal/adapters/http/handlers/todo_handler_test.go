package handlers_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/todo-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-service/mocks"
)

func newTodoHandler(t *testing.T) (*handlers.TodoHandler, *mocks.MockTodoService) {
	t.Helper()
	svc := mocks.NewMockTodoService(t)
	return handlers.NewTodoHandler(svc), svc
}

func unavailable() error {
	return domain.NewStoreError("list", fmt.Errorf("%w: connection refused", domain.ErrUnavailable))
}

// --- ListTodos ---

func TestListTodos_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	svc.EXPECT().ListTodos(mock.Anything).Return([]todo.Item{validItem(t)}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/todos", nil)
	h.ListTodos(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[envelope[[]todoJSON]](t, rec)
	if !resp.Success || resp.Message != "Todos retrieved successfully" {
		t.Errorf("envelope = %+v", resp)
	}
	if resp.Count == nil || *resp.Count != 1 || len(resp.Data) != 1 {
		t.Fatalf("count = %v, len(data) = %d, want 1/1", resp.Count, len(resp.Data))
	}
	if resp.Data[0].MongoID != testID || resp.Data[0].CreatedAt != "2026-02-12T15:04:05.000Z" {
		t.Errorf("data[0] = %+v", resp.Data[0])
	}
}

func TestListTodos_Empty(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	svc.EXPECT().ListTodos(mock.Anything).Return(nil, nil)

	rec := httptest.NewRecorder()
	h.ListTodos(rec, httptest.NewRequest(http.MethodGet, "/api/todos", nil))

	requireStatus(t, rec, http.StatusOK)
	if !strings.Contains(rec.Body.String(), `"data":[],"count":0`) {
		t.Errorf("body = %s, want empty data array with count 0", rec.Body.String())
	}
}

func TestListTodos_StoreFailure(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	svc.EXPECT().ListTodos(mock.Anything).Return(nil, domain.NewStoreError("list", errors.New("cursor killed")))

	rec := httptest.NewRecorder()
	h.ListTodos(rec, httptest.NewRequest(http.MethodGet, "/api/todos", nil))

	requireStatus(t, rec, http.StatusInternalServerError)
	resp := decodeJSON[envelope[any]](t, rec)
	if resp.Success || resp.Message != "Failed to retrieve todos" {
		t.Errorf("envelope = %+v", resp)
	}
	if resp.Error != "store list: cursor killed" {
		t.Errorf("error = %q", resp.Error)
	}
}

func TestListTodos_StoreUnavailable(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	svc.EXPECT().ListTodos(mock.Anything).Return(nil, unavailable())

	rec := httptest.NewRecorder()
	h.ListTodos(rec, httptest.NewRequest(http.MethodGet, "/api/todos", nil))

	requireStatus(t, rec, http.StatusServiceUnavailable)
	resp := decodeJSON[envelope[any]](t, rec)
	if resp.Error != "store connection not ready" {
		t.Errorf("error = %q", resp.Error)
	}
}

// --- CreateTodo ---

func TestCreateTodo_JSON(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	item := validItem(t)
	svc.EXPECT().
		CreateTodo(mock.Anything, todo.Draft{Title: "  Buy groceries ", Description: "Milk, eggs, bread"}).
		Return(&item, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/todos", jsonBody(t, map[string]string{
		"title":       "  Buy groceries ",
		"description": "Milk, eggs, bread",
	}))
	req.Header.Set("Content-Type", "application/json")
	h.CreateTodo(rec, req)

	requireStatus(t, rec, http.StatusCreated)
	resp := decodeJSON[envelope[todoJSON]](t, rec)
	if !resp.Success || resp.Message != "Todo created successfully" {
		t.Errorf("envelope = %+v", resp)
	}
	if resp.Data.Title != "Buy groceries" || resp.Data.ID != testID {
		t.Errorf("data = %+v", resp.Data)
	}
	if resp.Count != nil {
		t.Errorf("count = %d, want absent", *resp.Count)
	}
}

func TestCreateTodo_Form(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	item := validItem(t)
	svc.EXPECT().CreateTodo(mock.Anything, todo.Draft{Title: "Buy groceries"}).Return(&item, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/todos",
		strings.NewReader(url.Values{"title": {"Buy groceries"}}.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	h.CreateTodo(rec, req)

	requireStatus(t, rec, http.StatusCreated)
}

func TestCreateTodo_MissingTitle(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	svc.EXPECT().CreateTodo(mock.Anything, todo.Draft{Title: "   "}).
		Return(nil, &domain.ValidationError{Fields: map[string]string{"title": domain.MsgRequired}})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/todos", jsonBody(t, map[string]string{"title": "   "}))
	h.CreateTodo(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
	resp := decodeJSON[envelope[any]](t, rec)
	if resp.Message != "Todo title is required" {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestCreateTodo_MalformedBody(t *testing.T) {
	t.Parallel()
	h, _ := newTodoHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/todos", strings.NewReader(`{"title":`))
	req.Header.Set("Content-Type", "application/json")
	h.CreateTodo(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
	resp := decodeJSON[envelope[any]](t, rec)
	if resp.Message != "Invalid request body" {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestCreateTodo_StoreFailure(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	svc.EXPECT().CreateTodo(mock.Anything, mock.Anything).
		Return(nil, domain.NewStoreError("insert", errors.New("disk full")))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/todos", jsonBody(t, map[string]string{"title": "x"}))
	h.CreateTodo(rec, req)

	requireStatus(t, rec, http.StatusInternalServerError)
	resp := decodeJSON[envelope[any]](t, rec)
	if resp.Message != "Failed to create todo" {
		t.Errorf("message = %q", resp.Message)
	}
}

// --- UpdateTodo ---

func TestUpdateTodo_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	item := validItem(t)
	item.Title = "Updated"
	svc.EXPECT().
		UpdateTodo(mock.Anything, mustID(t, testID), todo.Draft{Title: "Updated"}).
		Return(&item, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/todos/"+testID, jsonBody(t, map[string]string{"title": "Updated"}))
	req = withChiParams(req, map[string]string{"id": testID})
	h.UpdateTodo(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[envelope[todoJSON]](t, rec)
	if resp.Message != "Todo updated successfully" || resp.Data.Title != "Updated" {
		t.Errorf("envelope = %+v", resp)
	}
}

func TestUpdateTodo_InvalidIDCheckedBeforeBody(t *testing.T) {
	t.Parallel()
	h, _ := newTodoHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/todos/42", jsonBody(t, map[string]string{"title": ""}))
	req = withChiParams(req, map[string]string{"id": "42"})
	h.UpdateTodo(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
	resp := decodeJSON[envelope[any]](t, rec)
	if resp.Message != "Invalid todo ID" {
		t.Errorf("message = %q, want %q", resp.Message, "Invalid todo ID")
	}
}

func TestUpdateTodo_NotFound(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	svc.EXPECT().UpdateTodo(mock.Anything, mustID(t, testID), mock.Anything).Return(nil, domain.ErrNotFound)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/todos/"+testID, jsonBody(t, map[string]string{"title": "x"}))
	req = withChiParams(req, map[string]string{"id": testID})
	h.UpdateTodo(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
	resp := decodeJSON[envelope[any]](t, rec)
	if resp.Message != "Todo not found" {
		t.Errorf("message = %q", resp.Message)
	}
}

// --- DeleteTodo ---

func TestDeleteTodo_EchoesRemovedRecord(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	item := validItem(t)
	svc.EXPECT().DeleteTodo(mock.Anything, mustID(t, testID)).Return(&item, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/todos/"+testID, nil)
	req = withChiParams(req, map[string]string{"id": testID})
	h.DeleteTodo(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[envelope[todoJSON]](t, rec)
	if resp.Message != "Todo deleted successfully" || resp.Data.MongoID != testID {
		t.Errorf("envelope = %+v", resp)
	}
}

func TestDeleteTodo_InvalidID(t *testing.T) {
	t.Parallel()
	h, _ := newTodoHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/todos/not-an-id", nil)
	req = withChiParams(req, map[string]string{"id": "not-an-id"})
	h.DeleteTodo(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestDeleteTodo_NotFound(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	svc.EXPECT().DeleteTodo(mock.Anything, mock.Anything).Return(nil, domain.ErrNotFound)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/todos/"+testID, nil)
	req = withChiParams(req, map[string]string{"id": testID})
	h.DeleteTodo(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}

// --- Root ---

func TestRoot(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	handlers.Root(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[envelope[any]](t, rec)
	if !resp.Success || resp.Message != "Todo backend API is running" {
		t.Errorf("envelope = %+v", resp)
	}
}
