// Package scraper retrieves RSS/Atom feeds over HTTP and parses them with gofeed.
package scraper

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"sync"
	"time"

	"github.com/mmcdole/gofeed"
	"golang.org/x/time/rate"

	"github.com/puntadelverde-srpm/srpm/internal/resilience/circuitbreaker"
	"github.com/puntadelverde-srpm/srpm/internal/resilience/retry"
	"github.com/puntadelverde-srpm/srpm/internal/usecase/fetch"
)

const (
	defaultUserAgent   = "srpm-feed-reader/1.0"
	defaultMaxBodySize = 10 << 20 // 10MB
)

// RSSFetcher implements fetch.FeedFetcher.
//
// Every attempt waits on a shared rate limiter, then runs through the circuit
// breaker of its feed URL, so a failing feed only ever trips its own breaker.
// Transient failures (timeouts, refused connections, 5xx, 429) are retried
// with exponential backoff.
type RSSFetcher struct {
	client        *http.Client
	breakerConfig circuitbreaker.Config
	retryConfig   retry.Config
	limiter       *rate.Limiter
	userAgent     string
	maxBodySize   int64

	mu       sync.Mutex
	breakers map[string]*circuitbreaker.CircuitBreaker
}

type Option func(*RSSFetcher)

func WithRetryConfig(cfg retry.Config) Option {
	return func(f *RSSFetcher) { f.retryConfig = cfg }
}

// WithBreakerConfig sets the template for per-feed breakers. The name is used
// as a prefix.
func WithBreakerConfig(cfg circuitbreaker.Config) Option {
	return func(f *RSSFetcher) { f.breakerConfig = cfg }
}

// WithRateLimit paces outbound requests across all feeds. rate.Inf disables pacing.
func WithRateLimit(r rate.Limit, burst int) Option {
	return func(f *RSSFetcher) { f.limiter = rate.NewLimiter(r, burst) }
}

func WithUserAgent(ua string) Option {
	return func(f *RSSFetcher) { f.userAgent = ua }
}

func WithMaxBodySize(n int64) Option {
	return func(f *RSSFetcher) { f.maxBodySize = n }
}

// NewRSSFetcher creates a fetcher sharing client across all feeds.
func NewRSSFetcher(client *http.Client, opts ...Option) *RSSFetcher {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	f := &RSSFetcher{
		client:        client,
		breakerConfig: circuitbreaker.FeedFetchConfig(),
		retryConfig:   retry.FeedFetchConfig(),
		limiter:       rate.NewLimiter(rate.Every(250*time.Millisecond), 4),
		userAgent:     defaultUserAgent,
		maxBodySize:   defaultMaxBodySize,
		breakers:      make(map[string]*circuitbreaker.CircuitBreaker),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

var _ fetch.FeedFetcher = (*RSSFetcher)(nil)

// Breaker returns the circuit breaker guarding feedURL, creating it on first use.
func (f *RSSFetcher) Breaker(feedURL string) *circuitbreaker.CircuitBreaker {
	f.mu.Lock()
	defer f.mu.Unlock()

	if cb, ok := f.breakers[feedURL]; ok {
		return cb
	}
	cfg := f.breakerConfig
	cfg.Name = cfg.Name + ":" + breakerSuffix(feedURL)
	cb := circuitbreaker.New(cfg)
	f.breakers[feedURL] = cb
	return cb
}

// CircuitBreakers lists the per-feed breakers created so far, ordered by name.
func (f *RSSFetcher) CircuitBreakers() []*circuitbreaker.CircuitBreaker {
	f.mu.Lock()
	out := make([]*circuitbreaker.CircuitBreaker, 0, len(f.breakers))
	for _, cb := range f.breakers {
		out = append(out, cb)
	}
	f.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// breakerSuffix is host plus path, which keeps breaker names readable and
// free of credentials or query strings.
func breakerSuffix(feedURL string) string {
	u, err := url.Parse(feedURL)
	if err != nil || u.Host == "" {
		return feedURL
	}
	return u.Host + u.Path
}

// Fetch retrieves and parses the feed at feedURL. Entries keep document order.
func (f *RSSFetcher) Fetch(ctx context.Context, feedURL string) ([]fetch.FeedItem, error) {
	var feed *gofeed.Feed
	cb := f.Breaker(feedURL)

	err := retry.WithBackoff(ctx, f.retryConfig, func() error {
		if err := f.limiter.Wait(ctx); err != nil {
			return err
		}
		parsed, err := circuitbreaker.Do(cb, func() (*gofeed.Feed, error) {
			return f.doFetch(ctx, feedURL)
		})
		if err != nil {
			if circuitbreaker.IsRejection(err) {
				slog.Warn("feed fetch circuit breaker open, request rejected",
					slog.String("service", cb.Name()),
					slog.String("url", feedURL),
					slog.String("state", cb.State().String()))
			}
			return err
		}
		feed = parsed
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toFeedItems(feed), nil
}

// doFetch performs one GET and parse without retry or circuit breaker.
func (f *RSSFetcher) doFetch(ctx context.Context, feedURL string) (*gofeed.Feed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "application/rss+xml, application/atom+xml, application/xml;q=0.9, */*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, &retry.HTTPError{StatusCode: resp.StatusCode, Message: resp.Status}
	}

	feed, err := gofeed.NewParser().Parse(io.LimitReader(resp.Body, f.maxBodySize))
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, fmt.Errorf("parse feed: %w", err)
	}
	return feed, nil
}

func toFeedItems(feed *gofeed.Feed) []fetch.FeedItem {
	if feed == nil {
		return nil
	}
	items := make([]fetch.FeedItem, 0, len(feed.Items))
	for _, it := range feed.Items {
		if it == nil {
			continue
		}
		items = append(items, fetch.FeedItem{
			Title:       it.Title,
			URL:         it.Link,
			Content:     it.Content,
			Description: it.Description,
			PublishedAt: it.PublishedParsed,
		})
	}
	return items
}
