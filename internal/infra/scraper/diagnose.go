package scraper

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
	"golang.org/x/sync/errgroup"

	"github.com/puntadelverde-srpm/srpm/internal/domain/entity"
)

// Diagnostic statuses.
const (
	StatusOK           = "OK"
	StatusRedirect     = "REDIRECT"
	StatusEmpty        = "EMPTY"
	StatusHTTPError    = "HTTP_ERROR"
	StatusTimeout      = "TIMEOUT"
	StatusParseError   = "PARSE_ERROR"
	StatusRequestError = "REQUEST_ERROR"
)

// Diagnostic is the outcome of one raw probe of a feed.
type Diagnostic struct {
	Name         string `json:"name"`
	URL          string `json:"url"`
	Status       string `json:"status"`
	HTTPCode     int    `json:"http_code"`
	ItemCount    int    `json:"item_count"`
	LatestDate   string `json:"latest_date,omitempty"`
	FeedType     string `json:"feed_type,omitempty"`
	RedirectURL  string `json:"redirect_url,omitempty"`
	ResponseTime int64  `json:"response_time_ms"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// Healthy reports whether the feed can be ingested as is.
func (d Diagnostic) Healthy() bool {
	return d.Status == StatusOK || d.Status == StatusRedirect
}

// Diagnose probes one feed once, without retry, rate limiting or circuit
// breaking, so the raw behaviour of the endpoint is visible.
func (f *RSSFetcher) Diagnose(ctx context.Context, src entity.Source, timeout time.Duration) Diagnostic {
	d := Diagnostic{Name: src.Name, URL: src.FeedURL}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.FeedURL, nil)
	if err != nil {
		d.Status = StatusRequestError
		d.ErrorMessage = err.Error()
		return d
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "application/rss+xml, application/atom+xml, application/xml;q=0.9, */*;q=0.8")

	start := time.Now()
	resp, err := f.client.Do(req)
	d.ResponseTime = time.Since(start).Milliseconds()
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			d.Status = StatusTimeout
			d.ErrorMessage = fmt.Sprintf("request timeout after %v", timeout)
		} else {
			d.Status = StatusHTTPError
			d.ErrorMessage = err.Error()
		}
		return d
	}
	defer func() { _ = resp.Body.Close() }()

	d.HTTPCode = resp.StatusCode
	if final := resp.Request.URL.String(); final != src.FeedURL {
		d.RedirectURL = final
	}
	if resp.StatusCode != http.StatusOK {
		d.Status = StatusHTTPError
		d.ErrorMessage = resp.Status
		return d
	}

	feed, err := gofeed.NewParser().Parse(io.LimitReader(resp.Body, f.maxBodySize))
	if err != nil {
		d.Status = StatusParseError
		d.ErrorMessage = err.Error()
		return d
	}

	d.FeedType = feed.FeedType
	d.ItemCount = len(feed.Items)
	if latest := latestDate(feed); !latest.IsZero() {
		d.LatestDate = latest.UTC().Format(time.RFC3339)
	}

	switch {
	case d.ItemCount == 0:
		d.Status = StatusEmpty
		d.ErrorMessage = "feed has no items"
	case d.RedirectURL != "":
		d.Status = StatusRedirect
	default:
		d.Status = StatusOK
	}
	return d
}

// DiagnoseAll probes every source with at most parallelism requests in
// flight. Results keep the order of sources.
func (f *RSSFetcher) DiagnoseAll(ctx context.Context, sources []entity.Source, timeout time.Duration, parallelism int) []Diagnostic {
	if parallelism < 1 {
		parallelism = 1
	}
	out := make([]Diagnostic, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)
	for i, src := range sources {
		g.Go(func() error {
			out[i] = f.Diagnose(gctx, src, timeout)
			return nil
		})
	}
	_ = g.Wait()
	return out
}

func latestDate(feed *gofeed.Feed) time.Time {
	var latest time.Time
	for _, it := range feed.Items {
		t := it.PublishedParsed
		if t == nil {
			t = it.UpdatedParsed
		}
		if t != nil && t.After(latest) {
			latest = *t
		}
	}
	return latest
}
