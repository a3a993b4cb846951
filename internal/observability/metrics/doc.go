// Package metrics holds the Prometheus collectors shared by the service.
//
// It covers:
//   - HTTP request metrics (count, duration, sizes, in-flight)
//   - Ingestion metrics (per-source crawl results, cycle outcomes)
//   - Store gauges (items, summaries, sources)
//
// Collectors are registered on the default registry and exposed on /metrics.
//
//	start := time.Now()
//	inserted, duplicated := ingest(src)
//	metrics.RecordFeedCrawl(src.Name, time.Since(start), found, inserted, duplicated)
package metrics
