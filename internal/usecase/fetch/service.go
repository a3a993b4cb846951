package fetch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/puntadelverde-srpm/srpm/internal/domain/entity"
	"github.com/puntadelverde-srpm/srpm/internal/observability/metrics"
	"github.com/puntadelverde-srpm/srpm/internal/repository"
	"github.com/puntadelverde-srpm/srpm/internal/utils/text"
)

// DefaultParallelism bounds concurrent feed retrievals when none is configured.
const DefaultParallelism = 4

// FeedFetcher retrieves and parses one feed document.
type FeedFetcher interface {
	Fetch(ctx context.Context, url string) ([]FeedItem, error)
}

// FeedItem is a raw feed entry in document order, before sanitization.
type FeedItem struct {
	Title       string
	URL         string
	Content     string
	Description string
	// PublishedAt is nil when the entry carries no parseable date.
	PublishedAt *time.Time
}

// SourceResult is the per-source outcome of a run.
type SourceResult struct {
	Source     string `json:"source"`
	Fetched    int    `json:"fetched"`
	NewItems   int    `json:"new_items"`
	Duplicates int    `json:"duplicates"`
	Skipped    int    `json:"skipped"`
	Error      string `json:"error,omitempty"`
}

// FetchResult summarizes a FetchAll run.
type FetchResult struct {
	Total     int            `json:"total"`
	PerSource []SourceResult `json:"per_source"`
	Message   string         `json:"message"`
}

type Service struct {
	SourceRepo  repository.SourceRepository
	ItemRepo    repository.ItemRepository
	FeedFetcher FeedFetcher
	// Parallelism bounds concurrent retrievals; values < 1 use DefaultParallelism.
	Parallelism int
}

func NewService(
	sourceRepo repository.SourceRepository,
	itemRepo repository.ItemRepository,
	feedFetcher FeedFetcher,
	parallelism int,
) *Service {
	return &Service{
		SourceRepo:  sourceRepo,
		ItemRepo:    itemRepo,
		FeedFetcher: feedFetcher,
		Parallelism: parallelism,
	}
}

type fetched struct {
	items    []FeedItem
	err      error
	duration time.Duration
}

// FetchAll retrieves every registered source and stores up to perFeedLimit
// entries of each, skipping entries without a link and links already stored.
//
// Retrieval runs concurrently. Entries are then stored source by source in
// registry order, so identifiers follow the registry and document order.
// A failing source is logged and counted; it never fails the run.
func (s *Service) FetchAll(ctx context.Context, perFeedLimit int) (*FetchResult, error) {
	if perFeedLimit <= 0 {
		return nil, ErrInvalidLimit
	}

	logger := slog.Default()
	start := time.Now()

	srcs, err := s.SourceRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active sources: %w", err)
	}
	metrics.UpdateSourcesTotal(len(srcs))

	results := s.retrieveAll(ctx, srcs)

	out := &FetchResult{PerSource: make([]SourceResult, 0, len(srcs))}
	for i, src := range srcs {
		res, err := s.storeSource(ctx, src, results[i], perFeedLimit)
		if err != nil {
			return nil, err
		}
		out.Total += res.NewItems
		out.PerSource = append(out.PerSource, res)
	}
	out.Message = fmt.Sprintf("Update completed. %d new items added.", out.Total)

	if n, err := s.ItemRepo.Count(ctx); err == nil {
		metrics.UpdateItemsTotal(n)
	}

	logger.Info("all sources fetch completed",
		slog.Int("sources", len(srcs)),
		slog.Int("new_items", out.Total),
		slog.Duration("duration", time.Since(start)))

	return out, nil
}

// retrieveAll fetches every source with bounded concurrency. Errors are kept
// per source; the group itself never fails.
func (s *Service) retrieveAll(ctx context.Context, srcs []*entity.Source) []fetched {
	results := make([]fetched, len(srcs))

	limit := s.Parallelism
	if limit < 1 {
		limit = DefaultParallelism
	}
	var eg errgroup.Group
	eg.SetLimit(limit)

	for i, src := range srcs {
		eg.Go(func() error {
			begin := time.Now()
			items, err := s.FeedFetcher.Fetch(ctx, src.FeedURL)
			results[i] = fetched{items: items, err: err, duration: time.Since(begin)}
			return nil
		})
	}
	_ = eg.Wait()
	return results
}

func (s *Service) storeSource(ctx context.Context, src *entity.Source, f fetched, limit int) (SourceResult, error) {
	logger := slog.Default()
	res := SourceResult{Source: src.Name}

	if f.err != nil {
		logger.Warn("failed to fetch feed",
			slog.String("source", src.Name),
			slog.String("feed_url", src.FeedURL),
			slog.Any("error", f.err))
		metrics.RecordFeedCrawlError(src.Name, "fetch_failed")
		res.Error = fmt.Errorf("%w: %v", ErrFeedFetchFailed, f.err).Error()
		return res, nil
	}

	entries := f.items
	if len(entries) > limit {
		entries = entries[:limit]
	}
	res.Fetched = len(entries)

	for _, e := range entries {
		if e.URL == "" {
			res.Skipped++
			continue
		}

		item := toItem(src.Name, e)
		inserted, err := s.ItemRepo.SaveIfAbsent(ctx, item)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return res, err
			}
			logger.Warn("failed to store item",
				slog.String("source", src.Name),
				slog.String("link", e.URL),
				slog.Any("error", err))
			metrics.RecordFeedCrawlError(src.Name, "store_failed")
			continue
		}
		if inserted {
			res.NewItems++
		} else {
			res.Duplicates++
		}
	}

	metrics.RecordFeedCrawl(src.Name, f.duration, res.Fetched, res.NewItems, res.Duplicates, res.Skipped)
	logger.Info("source fetch completed",
		slog.String("source", src.Name),
		slog.Int("feed_items", res.Fetched),
		slog.Int("inserted", res.NewItems),
		slog.Int("duplicated", res.Duplicates),
		slog.Duration("duration", f.duration))

	return res, nil
}

// toItem sanitizes an entry. The body comes from the content field, falling
// back to the description; both empty leaves it absent.
func toItem(source string, e FeedItem) *entity.Item {
	var body *string
	switch {
	case e.Content != "":
		body = text.Sanitize(&e.Content)
	case e.Description != "":
		body = text.Sanitize(&e.Description)
	}

	item := &entity.Item{
		Source:  source,
		Title:   text.StripMarkup(e.Title),
		Link:    e.URL,
		Content: body,
	}
	if e.PublishedAt != nil {
		item.PublishedAt = *e.PublishedAt
	}
	return item
}
