// Package summary provides the use cases for reading and editing stored summaries.
package summary

import "errors"

// Sentinel errors for summary use case operations.
var (
	// ErrSummaryNotFound indicates that no summary exists with the given ID.
	ErrSummaryNotFound = errors.New("summary not found")

	// ErrInvalidSummaryID indicates a non-positive summary ID.
	ErrInvalidSummaryID = errors.New("invalid summary ID")
)
