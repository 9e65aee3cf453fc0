package dto

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
)

// MaxBodyBytes is the maximum accepted request body size (1 MB).
const MaxBodyBytes = 1 << 20

const mediaTypeForm = "application/x-www-form-urlencoded"

// TodoRequest is the body of create and update requests. Both use the same
// shape because update replaces title and description wholesale.
type TodoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Draft converts the request to the domain input type. Trimming and length
// checks happen in the domain, not here.
func (r TodoRequest) Draft() todo.Draft {
	return todo.Draft{Title: r.Title, Description: r.Description}
}

// DecodeTodoRequest reads a TodoRequest from a JSON or URL-encoded form body.
// An empty body decodes to the zero request so that the domain reports the
// missing title. A malformed body yields a *domain.ValidationError on the
// "body" field.
func DecodeTodoRequest(w http.ResponseWriter, r *http.Request) (TodoRequest, error) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == mediaTypeForm {
		if err := r.ParseForm(); err != nil {
			return TodoRequest{}, invalidBody(err)
		}
		return TodoRequest{
			Title:       r.PostForm.Get("title"),
			Description: r.PostForm.Get("description"),
		}, nil
	}

	var req TodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return TodoRequest{}, nil
		}
		return TodoRequest{}, invalidBody(err)
	}
	return req, nil
}

func invalidBody(err error) error {
	msg := "must be a JSON object or form data"
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		msg = "exceeds the maximum size"
	}
	return &domain.ValidationError{Fields: map[string]string{"body": msg}}
}
