// Package item provides read-side use cases over ingested items.
package item

import "errors"

// Sentinel errors for item use case operations.
var (
	// ErrItemNotFound indicates that no item exists with the given ID.
	ErrItemNotFound = errors.New("item not found")

	// ErrInvalidItemID indicates a non-positive item ID.
	ErrInvalidItemID = errors.New("invalid item ID")
)
