package repositories

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when no session result has the requested ID.
type ErrNotFound struct {
	ID string
}

func (e *ErrNotFound) Error() string {
	if e.ID == "" {
		return "session result not found"
	}
	return fmt.Sprintf("session result %s not found", e.ID)
}

// IsNotFound reports whether err, or any error it wraps, is an ErrNotFound.
func IsNotFound(err error) bool {
	var notFound *ErrNotFound
	return errors.As(err, &notFound)
}
