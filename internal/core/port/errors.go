package port

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals that an entity or warehouse table is absent.
	// Absence is often expected and must be distinguishable from
	// upstream failures.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists signals a conflicting create.
	ErrAlreadyExists = errors.New("already exists")

	// ErrUnavailable signals that the store, warehouse or destination
	// API is unreachable or erroring.
	ErrUnavailable = errors.New("upstream unavailable")
)

// ValidationError reports a malformed entity field. It is surfaced to
// the caller unchanged so the route layer can map it to 422.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
