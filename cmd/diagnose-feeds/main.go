// Command diagnose-feeds probes every configured feed once and reports which
// ones are reachable, parseable and non-empty.
//
//	go run ./cmd/diagnose-feeds -sources sources.yaml -json
//
// The exit code is 1 when at least one feed is unhealthy.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/puntadelverde-srpm/srpm/internal/config"
	"github.com/puntadelverde-srpm/srpm/internal/infra/scraper"
	"github.com/puntadelverde-srpm/srpm/internal/observability/logging"
	pkgconfig "github.com/puntadelverde-srpm/srpm/internal/pkg/config"
)

func main() {
	var (
		sourcesPath = flag.String("sources", pkgconfig.LoadEnvString("FEED_SOURCES_FILE", ""), "YAML feed registry (defaults to the built-in sources)")
		timeout     = flag.Duration("timeout", 15*time.Second, "per-feed request timeout")
		parallel    = flag.Int("parallel", 4, "number of feeds probed concurrently")
		asJSON      = flag.Bool("json", false, "print the report as JSON")
	)
	flag.Parse()

	logger := logging.New(os.Stderr)

	sources, err := config.LoadSources(*sourcesPath)
	if err != nil {
		logger.Error("failed to load sources", slog.Any("error", err))
		os.Exit(2)
	}

	logger.Info("diagnosing feeds",
		slog.Int("count", len(sources)),
		slog.Duration("timeout", *timeout))

	fetcher := scraper.NewRSSFetcher(nil)
	results := fetcher.DiagnoseAll(context.Background(), sources, *timeout, *parallel)

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			logger.Error("failed to encode report", slog.Any("error", err))
			os.Exit(2)
		}
	} else {
		printReport(os.Stdout, results)
	}

	unhealthy := 0
	for _, d := range results {
		if !d.Healthy() {
			unhealthy++
			logger.Warn("feed unhealthy",
				slog.String("source", d.Name),
				slog.String("status", d.Status),
				slog.String("error", d.ErrorMessage))
		}
	}
	logger.Info("diagnosis finished",
		slog.Int("healthy", len(results)-unhealthy),
		slog.Int("unhealthy", unhealthy))

	if unhealthy > 0 {
		os.Exit(1)
	}
}

func printReport(w io.Writer, results []scraper.Diagnostic) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "SOURCE\tSTATUS\tHTTP\tITEMS\tLATEST\tTYPE\tTIME")
	for _, d := range results {
		latest := d.LatestDate
		if latest == "" {
			latest = "-"
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\t%s\t%dms\n",
			d.Name, d.Status, d.HTTPCode, d.ItemCount, latest, d.FeedType, d.ResponseTime)
	}
	_ = tw.Flush()

	for _, d := range results {
		if d.RedirectURL != "" {
			_, _ = fmt.Fprintf(w, "\n%s redirects to %s\n", d.Name, d.RedirectURL)
		}
	}
}
