package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrStore       = errors.New("store error")
	ErrUnavailable = errors.New("store unavailable")
)

// Common field-level validation messages.
const (
	MsgRequired  = "is required"
	MsgInvalidID = "must be a valid todo identifier"
)

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), e.Summary())
}

// Summary renders the field failures as "field message" pairs sorted by
// field name and joined with "; ". Used as the client-facing message.
func (e *ValidationError) Summary() string {
	keys := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		keys = append(keys, field)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, field := range keys {
		parts = append(parts, field+" "+e.Fields[field])
	}
	return strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// StoreError reports a failed document store operation. It matches both
// ErrStore and the underlying cause, so errors.Is(err, ErrUnavailable) holds
// when the cause is a connectivity failure.
type StoreError struct {
	Op  string
	Err error
}

// NewStoreError wraps err as a StoreError for the named operation. A nil err
// yields nil.
func NewStoreError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() []error {
	return []error{ErrStore, e.Err}
}
