package dto_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/jsamuelsen11/todo-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-service/internal/domain"
)

func TestDecodeTodoRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		contentType string
		body        string
		want        dto.TodoRequest
		wantErr     bool
	}{
		{
			name:        "json body",
			contentType: "application/json",
			body:        `{"title":"Buy milk","description":"2 liters"}`,
			want:        dto.TodoRequest{Title: "Buy milk", Description: "2 liters"},
		},
		{
			name:        "json with charset and unknown fields",
			contentType: "application/json; charset=utf-8",
			body:        `{"title":"Buy milk","priority":3}`,
			want:        dto.TodoRequest{Title: "Buy milk"},
		},
		{
			name: "missing content type is parsed as json",
			body: `{"title":"Buy milk"}`,
			want: dto.TodoRequest{Title: "Buy milk"},
		},
		{
			name:        "form body",
			contentType: "application/x-www-form-urlencoded",
			body:        url.Values{"title": {"Buy milk"}, "description": {"2 liters"}}.Encode(),
			want:        dto.TodoRequest{Title: "Buy milk", Description: "2 liters"},
		},
		{
			name:        "empty body decodes to zero request",
			contentType: "application/json",
			body:        "",
			want:        dto.TodoRequest{},
		},
		{
			name:        "null title decodes to empty",
			contentType: "application/json",
			body:        `{"title":null}`,
			want:        dto.TodoRequest{},
		},
		{
			name:        "malformed json",
			contentType: "application/json",
			body:        `{"title":`,
			wantErr:     true,
		},
		{
			name:        "non-string title",
			contentType: "application/json",
			body:        `{"title":42}`,
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest(http.MethodPost, "/api/todos", strings.NewReader(tt.body))
			if tt.contentType != "" {
				r.Header.Set("Content-Type", tt.contentType)
			}

			got, err := dto.DecodeTodoRequest(httptest.NewRecorder(), r)

			if tt.wantErr {
				var verr *domain.ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("err = %v, want *domain.ValidationError", err)
				}
				if _, ok := verr.Fields["body"]; !ok {
					t.Errorf("Fields = %v, want key %q", verr.Fields, "body")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDecodeTodoRequest_BodyTooLarge(t *testing.T) {
	t.Parallel()

	body := `{"title":"` + strings.Repeat("a", dto.MaxBodyBytes) + `"}`
	r := httptest.NewRequest(http.MethodPost, "/api/todos", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")

	_, err := dto.DecodeTodoRequest(httptest.NewRecorder(), r)

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want *domain.ValidationError", err)
	}
	if got := verr.Fields["body"]; got != "exceeds the maximum size" {
		t.Errorf("Fields[body] = %q", got)
	}
}

func TestTodoRequest_Draft(t *testing.T) {
	t.Parallel()

	d := dto.TodoRequest{Title: " a ", Description: " b "}.Draft()
	if d.Title != " a " || d.Description != " b " {
		t.Errorf("Draft() = %+v, want untrimmed fields", d)
	}
}
