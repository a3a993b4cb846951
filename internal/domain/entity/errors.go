package entity

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by repository updates and deletes that address an
// identifier the store does not hold. Reads signal a miss with a nil result.
var ErrNotFound = errors.New("entity not found")

// ValidationError rejects an Item, Summary or Source field. Handlers answer it
// with 400.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}
