// Package todo defines the todo item entity, its identifier and the input
// rules applied before an item is written to the store.
package todo

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jsamuelsen11/todo-service/internal/domain"
)

// Field length limits, counted in Unicode code points after trimming.
const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 1000
)

// Item is a stored todo record.
type Item struct {
	ID          ID
	Title       string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ID is the store-assigned identifier of an Item: a 12-byte document key
// rendered as 24 hex characters.
type ID primitive.ObjectID

// NewID generates a fresh identifier.
func NewID() ID {
	return ID(primitive.NewObjectID())
}

// ParseID is the typed parse step for identifiers arriving from clients.
// Anything that is not a 24-character hex string yields a
// *domain.ValidationError on the "id" field.
func ParseID(raw string) (ID, error) {
	oid, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return ID{}, &domain.ValidationError{
			Fields: map[string]string{"id": domain.MsgInvalidID},
		}
	}
	return ID(oid), nil
}

// ObjectID returns the identifier as a driver ObjectID.
func (id ID) ObjectID() primitive.ObjectID {
	return primitive.ObjectID(id)
}

// String returns the lowercase hex form.
func (id ID) String() string {
	return primitive.ObjectID(id).Hex()
}

// IsZero reports whether id is the zero identifier.
func (id ID) IsZero() bool {
	return primitive.ObjectID(id).IsZero()
}

// Draft carries the client-writable fields of an Item. It is used for both
// create and full-replace update; an absent description is the empty string.
type Draft struct {
	Title       string
	Description string
}

// Normalize trims both fields and checks them against the item rules.
// Returns the trimmed draft, or a *domain.ValidationError (wrapping
// domain.ErrValidation) with per-field details.
func (d Draft) Normalize() (Draft, error) {
	out := Draft{
		Title:       strings.TrimSpace(d.Title),
		Description: strings.TrimSpace(d.Description),
	}

	fields := make(map[string]string)

	if out.Title == "" {
		fields["title"] = domain.MsgRequired
	} else if n := utf8.RuneCountInString(out.Title); n > MaxTitleLength {
		fields["title"] = fmt.Sprintf("must be at most %d characters, got %d", MaxTitleLength, n)
	}
	if n := utf8.RuneCountInString(out.Description); n > MaxDescriptionLength {
		fields["description"] = fmt.Sprintf("must be at most %d characters, got %d", MaxDescriptionLength, n)
	}

	if len(fields) > 0 {
		return Draft{}, &domain.ValidationError{Fields: fields}
	}
	return out, nil
}
