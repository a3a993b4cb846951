package metrics

import "time"

// RecordFeedCrawl records the outcome of processing one source.
func RecordFeedCrawl(source string, duration time.Duration, found, inserted, duplicated, skipped int) {
	FeedCrawlDuration.WithLabelValues(source).Observe(duration.Seconds())
	if found > 0 {
		FeedItemsFetchedTotal.WithLabelValues(source).Add(float64(found))
	}
	if inserted > 0 {
		ItemsIngestedTotal.WithLabelValues(source, "inserted").Add(float64(inserted))
	}
	if duplicated > 0 {
		ItemsIngestedTotal.WithLabelValues(source, "duplicate").Add(float64(duplicated))
	}
	if skipped > 0 {
		ItemsIngestedTotal.WithLabelValues(source, "skipped").Add(float64(skipped))
	}
}

// RecordFeedCrawlError records a failure for a source.
// errorType is a short label such as "fetch_failed" or "store_failed".
func RecordFeedCrawlError(source, errorType string) {
	FeedCrawlErrors.WithLabelValues(source, errorType).Inc()
}

// RecordIngestionCycle records a finished cycle. kind is "cycle" or "refresh".
func RecordIngestionCycle(kind string, success bool, duration time.Duration) {
	status := "success"
	if !success {
		status = "failure"
	}
	IngestionCyclesTotal.WithLabelValues(kind, status).Inc()
	IngestionCycleDuration.WithLabelValues(kind).Observe(duration.Seconds())
}

func RecordSummariesSaved(n int) {
	if n > 0 {
		SummariesSavedTotal.Add(float64(n))
	}
}

func UpdateItemsTotal(count int) {
	ItemsTotal.Set(float64(count))
}

func UpdateSummariesTotal(count int) {
	SummariesTotal.Set(float64(count))
}

func UpdateSourcesTotal(count int) {
	SourcesTotal.Set(float64(count))
}
