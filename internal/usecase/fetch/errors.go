// Package fetch implements the feed ingestion use case: retrieving every
// registered feed, sanitizing new entries and storing them deduplicated by link.
package fetch

import "errors"

// Sentinel errors for fetch use case operations.
var (
	// ErrInvalidLimit indicates a per-feed limit below 1.
	ErrInvalidLimit = errors.New("per-feed limit must be positive")

	// ErrFeedFetchFailed indicates that retrieving or parsing a feed failed.
	// It is logged per source and never aborts a run.
	ErrFeedFetchFailed = errors.New("failed to fetch feed from source")
)
