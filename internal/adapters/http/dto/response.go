package dto

import (
	"time"

	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
)

// TimestampLayout renders timestamps as UTC ISO-8601 with millisecond
// precision, e.g. "2026-02-12T15:04:05.000Z".
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Envelope is the body of every JSON response the API writes.
// Count is set only by list responses; Path only by unmatched routes.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Error   string `json:"error,omitempty"`
	Path    string `json:"path,omitempty"`
}

// Success builds a successful envelope carrying data.
func Success(message string, data any) Envelope {
	return Envelope{Success: true, Message: message, Data: data}
}

// Failure builds a failed envelope. detail goes to the error field and is
// omitted when empty.
func Failure(message, detail string) Envelope {
	return Envelope{Success: false, Message: message, Error: detail}
}

// TodoResponse is the JSON representation of a todo item. The identifier is
// emitted both as "_id" and as "id".
type TodoResponse struct {
	MongoID     string `json:"_id"`
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// FormatTimestamp renders t in TimestampLayout after converting to UTC.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ToTodoResponse converts a domain Item to its response DTO.
func ToTodoResponse(item *todo.Item) TodoResponse {
	id := item.ID.String()
	return TodoResponse{
		MongoID:     id,
		ID:          id,
		Title:       item.Title,
		Description: item.Description,
		CreatedAt:   FormatTimestamp(item.CreatedAt),
		UpdatedAt:   FormatTimestamp(item.UpdatedAt),
	}
}

// ToTodoResponses converts a slice of items. A nil or empty input yields an
// empty, non-nil slice so the data field always renders as an array.
func ToTodoResponses(items []todo.Item) []TodoResponse {
	out := make([]TodoResponse, 0, len(items))
	for i := range items {
		out = append(out, ToTodoResponse(&items[i]))
	}
	return out
}

// SuccessList builds a list envelope whose count equals len(data).
func SuccessList(message string, data []TodoResponse) Envelope {
	n := len(data)
	return Envelope{Success: true, Message: message, Data: data, Count: &n}
}
