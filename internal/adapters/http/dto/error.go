package dto

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/platform/logging"
)

// Client-facing messages.
const (
	MsgInvalidID     = "Invalid todo ID"
	MsgTitleRequired = "Todo title is required"
	MsgInvalidTodo   = "Invalid todo"
	MsgInvalidBody   = "Invalid request body"
	MsgNotFound      = "Todo not found"
	MsgUnavailable   = "Database connection is unavailable"
	MsgInternal      = "Internal server error"
	MsgRouteNotFound = "Requested resource not found"
	MsgNotAllowed    = "Method not allowed"

	// DetailNotReady is the error detail of every 503 response.
	DetailNotReady = "store connection not ready"
)

// StatusFor maps domain sentinel errors to HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// NewErrorResponse builds the status and envelope for err. failMessage is the
// operation-specific message used when the failure is not the client's
// fault, e.g. "Failed to create todo".
func NewErrorResponse(err error, failMessage string) (int, Envelope) {
	status := StatusFor(err)

	switch status {
	case http.StatusBadRequest:
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return status, Failure(validationMessage(verr), verr.Summary())
		}
		return status, Failure(MsgInvalidTodo, err.Error())
	case http.StatusNotFound:
		return status, Failure(MsgNotFound, "")
	case http.StatusServiceUnavailable:
		return status, Failure(MsgUnavailable, DetailNotReady)
	default:
		return status, Failure(failMessage, err.Error())
	}
}

// validationMessage picks the headline message for a validation failure.
// Identifier problems win over body problems, which win over field rules.
func validationMessage(verr *domain.ValidationError) string {
	if _, ok := verr.Fields["id"]; ok {
		return MsgInvalidID
	}
	if _, ok := verr.Fields["body"]; ok {
		return MsgInvalidBody
	}
	if verr.Fields["title"] == domain.MsgRequired {
		return MsgTitleRequired
	}
	return MsgInvalidTodo
}

// WriteErrorResponse writes the envelope for err with the mapped status.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error, failMessage string) {
	status, env := NewErrorResponse(err, failMessage)
	WriteJSON(w, r, status, env)
}

// WriteJSON writes v as JSON with the given status code. Encoding failures
// are logged with the request-scoped logger; the status is already sent.
func WriteJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to encode response",
			slog.Any("error", err),
		)
	}
}
