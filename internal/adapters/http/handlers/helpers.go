package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todo-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
)

// paramID is the chi URL parameter carrying a todo identifier.
const paramID = "id"

// parseTodoID extracts and parses the {id} path parameter.
func parseTodoID(r *http.Request) (todo.ID, error) {
	return todo.ParseID(chi.URLParam(r, paramID))
}

// decodeDraft decodes the request body into a domain draft. On failure it
// writes the 400 envelope and returns false.
func decodeDraft(w http.ResponseWriter, r *http.Request) (todo.Draft, bool) {
	req, err := dto.DecodeTodoRequest(w, r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err, dto.MsgInvalidBody)
		return todo.Draft{}, false
	}
	return req.Draft(), true
}
