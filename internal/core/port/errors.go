package port

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates the referenced entity does not exist. Callers
// decide whether to surface it or treat the entity as absent.
var ErrNotFound = errors.New("not found")

// ErrStoreUnavailable indicates a transient infrastructure failure. The
// engine performs no implicit retry; callers may retry with backoff.
var ErrStoreUnavailable = errors.New("store unavailable")

// ValidationError reports malformed or missing required input. The caller
// must fix the request before retrying.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Invalid is a shorthand constructor for a ValidationError.
func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
