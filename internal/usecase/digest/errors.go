// Package digest orchestrates ingestion cycles: fetch all feeds, hand the full
// item set to the summarizer and store what comes back.
package digest

import "errors"

// ErrCycleFailed wraps failures that abort a cycle before summarization.
var ErrCycleFailed = errors.New("ingestion cycle failed")
