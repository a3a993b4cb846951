package summarizer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/puntadelverde-srpm/srpm/internal/domain/entity"
	"github.com/puntadelverde-srpm/srpm/internal/resilience/circuitbreaker"
	"github.com/puntadelverde-srpm/srpm/internal/utils/text"
)

// maxResponseSize caps the decoded response body.
const maxResponseSize = 16 << 20

// errEmptyBody marks a 2xx response without content.
var errEmptyBody = errors.New("summarizer returned an empty body")

// HTTPSummarizer posts the full item set as JSON and decodes the returned
// summaries. It never retries.
type HTTPSummarizer struct {
	client         *http.Client
	config         HTTPConfig
	circuitBreaker *circuitbreaker.CircuitBreaker
	metrics        MetricsRecorder
}

type HTTPOption func(*HTTPSummarizer)

// WithHTTPClient replaces the default client. Its Timeout is overridden by the config.
func WithHTTPClient(c *http.Client) HTTPOption {
	return func(s *HTTPSummarizer) { s.client = c }
}

func WithCircuitBreaker(cb *circuitbreaker.CircuitBreaker) HTTPOption {
	return func(s *HTTPSummarizer) { s.circuitBreaker = cb }
}

// WithMetrics sets the recorder; nil disables recording.
func WithMetrics(m MetricsRecorder) HTTPOption {
	return func(s *HTTPSummarizer) {
		if m == nil {
			m = nopMetrics{}
		}
		s.metrics = m
	}
}

func NewHTTPSummarizer(cfg HTTPConfig, opts ...HTTPOption) *HTTPSummarizer {
	s := &HTTPSummarizer{
		config:         cfg,
		circuitBreaker: circuitbreaker.New(circuitbreaker.SummarizerConfig()),
		metrics:        NewPrometheusMetrics(),
	}
	for _, opt := range opts {
		opt(s)
	}
	client := &http.Client{}
	if s.client != nil {
		*client = *s.client
	}
	client.Timeout = cfg.timeout()
	s.client = client

	slog.Info("initialized HTTP summarizer",
		slog.String("url", cfg.URL),
		slog.Duration("timeout", cfg.timeout()))
	return s
}

// Summarize sends items and returns the summaries produced for them. On any
// failure it logs, records the outcome and returns an empty, non-nil slice.
func (s *HTTPSummarizer) Summarize(ctx context.Context, items []*entity.Item) []*entity.Summary {
	ctx, cancel := context.WithTimeout(ctx, s.config.timeout())
	defer cancel()

	start := time.Now()
	summaries, err := circuitbreaker.Do(s.circuitBreaker, func() ([]*entity.Summary, error) {
		return s.doSummarize(ctx, items)
	})
	elapsed := time.Since(start)

	if err != nil {
		status := classify(err)
		s.metrics.RecordRequest(status, elapsed)
		slog.ErrorContext(ctx, "summarizer call failed, continuing without summaries",
			slog.String("url", s.config.URL),
			slog.String("status", status),
			slog.Int("items", len(items)),
			slog.Duration("duration", elapsed),
			slog.Any("error", err))
		return []*entity.Summary{}
	}

	s.metrics.RecordRequest(statusSuccess, elapsed)
	s.metrics.RecordSummaries(len(summaries))
	slog.InfoContext(ctx, "summarizer call completed",
		slog.Int("items", len(items)),
		slog.Int("summaries", len(summaries)),
		slog.Int("body_chars", bodyChars(summaries)),
		slog.Duration("duration", elapsed))
	return summaries
}

func (s *HTTPSummarizer) doSummarize(ctx context.Context, items []*entity.Item) ([]*entity.Summary, error) {
	if items == nil {
		items = []*entity.Item{}
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("encode items: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.config.URL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &unavailableError{err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, &unavailableError{err: fmt.Errorf("read body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &statusError{code: resp.StatusCode}
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, errEmptyBody
	}

	var summaries []*entity.Summary
	if err := json.Unmarshal(body, &summaries); err != nil {
		return nil, &decodeError{err: err}
	}
	if summaries == nil {
		// a literal JSON null
		return nil, errEmptyBody
	}

	out := summaries[:0]
	for _, sm := range summaries {
		if sm != nil {
			out = append(out, sm)
		}
	}
	return out, nil
}

type unavailableError struct{ err error }

func (e *unavailableError) Error() string { return "summarizer unavailable: " + e.err.Error() }
func (e *unavailableError) Unwrap() error { return e.err }

type statusError struct{ code int }

func (e *statusError) Error() string {
	return fmt.Sprintf("summarizer responded with status %d", e.code)
}

type decodeError struct{ err error }

func (e *decodeError) Error() string { return "decode summaries: " + e.err.Error() }
func (e *decodeError) Unwrap() error { return e.err }

func classify(err error) string {
	var (
		unavailable *unavailableError
		status      *statusError
		decode      *decodeError
	)
	switch {
	case circuitbreaker.IsRejection(err):
		return statusCircuitOpen
	case errors.As(err, &status):
		return statusHTTPError
	case errors.As(err, &decode):
		return statusDecodeError
	case errors.Is(err, errEmptyBody):
		return statusEmpty
	case errors.As(err, &unavailable):
		return statusUnavailable
	default:
		return statusUnavailable
	}
}

func bodyChars(summaries []*entity.Summary) int {
	n := 0
	for _, sm := range summaries {
		n += text.CountRunes(sm.Body)
	}
	return n
}
