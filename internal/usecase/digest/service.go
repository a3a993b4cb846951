package digest

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/puntadelverde-srpm/srpm/internal/domain/entity"
	"github.com/puntadelverde-srpm/srpm/internal/observability/metrics"
	"github.com/puntadelverde-srpm/srpm/internal/observability/tracing"
	"github.com/puntadelverde-srpm/srpm/internal/repository"
	"github.com/puntadelverde-srpm/srpm/internal/usecase/fetch"
)

// DefaultItemLimit is the per-feed limit used when a caller passes none.
const DefaultItemLimit = 20

// Fetcher is the ingestion step; *fetch.Service implements it.
type Fetcher interface {
	FetchAll(ctx context.Context, perFeedLimit int) (*fetch.FetchResult, error)
}

// Summarizer turns a batch of items into summaries. Implementations fail
// open and return an empty slice instead of an error.
type Summarizer interface {
	Summarize(ctx context.Context, items []*entity.Item) []*entity.Summary
}

// CycleStats reports one cycle.
type CycleStats struct {
	FetchMessage   string        `json:"message"`
	NewItems       int           `json:"new_items"`
	ItemsSent      int           `json:"items_sent"`
	SummariesSaved int           `json:"summaries_saved"`
	Duration       time.Duration `json:"duration_ns"`
}

type Service struct {
	Fetcher     Fetcher
	ItemRepo    repository.ItemRepository
	SummaryRepo repository.SummaryRepository
	Summarizer  Summarizer
	// DefaultLimit replaces non-positive limits; zero means DefaultItemLimit.
	DefaultLimit int

	// mu serializes cycles so a refresh never interleaves with a scheduled run.
	mu sync.Mutex
}

func NewService(
	fetcher Fetcher,
	itemRepo repository.ItemRepository,
	summaryRepo repository.SummaryRepository,
	summarizer Summarizer,
	defaultLimit int,
) *Service {
	return &Service{
		Fetcher:      fetcher,
		ItemRepo:     itemRepo,
		SummaryRepo:  summaryRepo,
		Summarizer:   summarizer,
		DefaultLimit: defaultLimit,
	}
}

func (s *Service) defaultLimit() int {
	if s.DefaultLimit > 0 {
		return s.DefaultLimit
	}
	return DefaultItemLimit
}

// RunIngestionCycle fetches new items, then sends every stored item to the
// summarizer and saves the returned summaries. A non-positive limit uses the
// configured default. With no stored items the summarizer is not called.
func (s *Service) RunIngestionCycle(ctx context.Context, perFeedLimit int) (*CycleStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	stats, err := s.runCycle(ctx, perFeedLimit)
	metrics.RecordIngestionCycle("cycle", err == nil, time.Since(start))
	return stats, err
}

// FullRefresh clears both stores and runs a cycle with the default limit.
// Nothing is restored if the cycle fails afterwards.
func (s *Service) FullRefresh(ctx context.Context) (*CycleStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, span := tracing.StartSpan(ctx, "digest.FullRefresh")
	defer span.End()

	start := time.Now()
	stats, err := s.refresh(ctx)
	tracing.RecordError(span, err)
	metrics.RecordIngestionCycle("refresh", err == nil, time.Since(start))
	return stats, err
}

func (s *Service) refresh(ctx context.Context) (*CycleStats, error) {
	if err := s.SummaryRepo.DeleteAll(ctx); err != nil {
		return nil, fmt.Errorf("clear summaries: %w", err)
	}
	if err := s.ItemRepo.DeleteAll(ctx); err != nil {
		return nil, fmt.Errorf("clear items: %w", err)
	}
	slog.InfoContext(ctx, "stores cleared for full refresh")
	return s.runCycle(ctx, s.defaultLimit())
}

// runCycle must be called with s.mu held.
func (s *Service) runCycle(ctx context.Context, perFeedLimit int) (*CycleStats, error) {
	if perFeedLimit <= 0 {
		perFeedLimit = s.defaultLimit()
	}

	ctx, span := tracing.StartSpan(ctx, "digest.RunIngestionCycle")
	defer span.End()
	span.SetAttributes(attribute.Int("digest.per_feed_limit", perFeedLimit))

	start := time.Now()
	stats := &CycleStats{}

	res, err := s.Fetcher.FetchAll(ctx, perFeedLimit)
	if err != nil {
		tracing.RecordError(span, err)
		return nil, fmt.Errorf("%w: fetch: %w", ErrCycleFailed, err)
	}
	stats.FetchMessage = res.Message
	stats.NewItems = res.Total

	items, err := s.ItemRepo.List(ctx)
	if err != nil {
		tracing.RecordError(span, err)
		return nil, fmt.Errorf("%w: list items: %w", ErrCycleFailed, err)
	}
	stats.ItemsSent = len(items)

	if len(items) == 0 {
		stats.Duration = time.Since(start)
		slog.InfoContext(ctx, "no items stored, skipping summarization")
		span.SetAttributes(attribute.Int("digest.new_items", stats.NewItems))
		return stats, nil
	}

	summaries := s.Summarizer.Summarize(ctx, items)
	for _, sm := range summaries {
		if err := s.SummaryRepo.Save(ctx, sm); err != nil {
			slog.WarnContext(ctx, "failed to save summary",
				slog.String("headline", sm.Headline),
				slog.Any("error", err))
			continue
		}
		stats.SummariesSaved++
	}
	metrics.RecordSummariesSaved(stats.SummariesSaved)

	if all, err := s.SummaryRepo.List(ctx); err == nil {
		metrics.UpdateSummariesTotal(len(all))
	}
	metrics.UpdateItemsTotal(len(items))

	stats.Duration = time.Since(start)
	span.SetAttributes(
		attribute.Int("digest.new_items", stats.NewItems),
		attribute.Int("digest.items_sent", stats.ItemsSent),
		attribute.Int("digest.summaries_saved", stats.SummariesSaved),
	)
	slog.InfoContext(ctx, "ingestion cycle completed",
		slog.Int("new_items", stats.NewItems),
		slog.Int("items_sent", stats.ItemsSent),
		slog.Int("summaries_saved", stats.SummariesSaved),
		slog.Duration("duration", stats.Duration))

	return stats, nil
}
