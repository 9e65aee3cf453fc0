package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
)

const testID = "507f1f77bcf86cd799439011"

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

// envelope mirrors dto.Envelope with concrete data types for decoding.
type envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
	Count   *int   `json:"count"`
	Error   string `json:"error"`
}

type todoJSON struct {
	MongoID     string `json:"_id"`
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func mustID(t *testing.T, raw string) todo.ID {
	t.Helper()
	id, err := todo.ParseID(raw)
	if err != nil {
		t.Fatalf("ParseID(%q): %v", raw, err)
	}
	return id
}

func validItem(t *testing.T) todo.Item {
	t.Helper()
	return todo.Item{
		ID:          mustID(t, testID),
		Title:       "Buy groceries",
		Description: "Milk, eggs, bread",
		CreatedAt:   testTime,
		UpdatedAt:   testTime,
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
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
