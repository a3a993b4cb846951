// Package http holds the HTTP middleware and operational endpoints. Resource
// handlers live in the item, summary and ingest subpackages.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/puntadelverde-srpm/srpm/internal/handler/http/respond"
	"github.com/puntadelverde-srpm/srpm/internal/repository"
	"github.com/puntadelverde-srpm/srpm/internal/resilience/circuitbreaker"
)

const (
	statusHealthy   = "healthy"
	statusDegraded  = "degraded"
	statusUnhealthy = "unhealthy"
)

type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp string                 `json:"timestamp"`
	Checks    map[string]CheckStatus `json:"checks"`
	Version   string                 `json:"version"`
}

type CheckStatus struct {
	Status  string         `json:"status"`
	Message string         `json:"message,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// HealthHandler reports store sizes and circuit breaker states. Only a failing
// store makes the service unhealthy; an open breaker means a dependency is
// degraded while ingestion keeps running.
type HealthHandler struct {
	Items       repository.ItemRepository
	Summaries   repository.SummaryRepository
	Breakers    []*circuitbreaker.CircuitBreaker
	// BreakerSets report breakers created on demand, such as one per feed.
	BreakerSets []BreakerSet
	Version     string
}

// BreakerSet is implemented by *scraper.RSSFetcher.
type BreakerSet interface {
	CircuitBreakers() []*circuitbreaker.CircuitBreaker
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	checks := map[string]CheckStatus{
		"item_store":    h.checkItems(ctx),
		"summary_store": h.checkSummaries(ctx),
	}
	breakers := h.Breakers
	for _, set := range h.BreakerSets {
		breakers = append(breakers[:len(breakers):len(breakers)], set.CircuitBreakers()...)
	}
	for _, cb := range breakers {
		checks["breaker_"+cb.Name()] = checkBreaker(cb)
	}

	status, code := statusHealthy, http.StatusOK
	for _, c := range checks {
		if c.Status == statusUnhealthy {
			status, code = statusUnhealthy, http.StatusServiceUnavailable
			break
		}
	}

	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	respond.JSON(w, code, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	})
}

func (h *HealthHandler) checkItems(ctx context.Context) CheckStatus {
	if h.Items == nil {
		return CheckStatus{Status: statusUnhealthy, Message: "not configured"}
	}
	n, err := h.Items.Count(ctx)
	if err != nil {
		slog.WarnContext(ctx, "item store health check failed", slog.Any("error", err))
		return CheckStatus{Status: statusUnhealthy, Message: "count failed"}
	}
	return CheckStatus{Status: statusHealthy, Details: map[string]any{"items": n}}
}

func (h *HealthHandler) checkSummaries(ctx context.Context) CheckStatus {
	if h.Summaries == nil {
		return CheckStatus{Status: statusUnhealthy, Message: "not configured"}
	}
	list, err := h.Summaries.List(ctx)
	if err != nil {
		slog.WarnContext(ctx, "summary store health check failed", slog.Any("error", err))
		return CheckStatus{Status: statusUnhealthy, Message: "list failed"}
	}
	return CheckStatus{Status: statusHealthy, Details: map[string]any{"summaries": len(list)}}
}

func checkBreaker(cb *circuitbreaker.CircuitBreaker) CheckStatus {
	state := cb.State().String()
	if cb.IsOpen() {
		return CheckStatus{Status: statusDegraded, Message: "circuit open", Details: map[string]any{"state": state}}
	}
	return CheckStatus{Status: statusHealthy, Details: map[string]any{"state": state}}
}

// LiveHandler answers liveness probes.
type LiveHandler struct{}

func (LiveHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("alive"))
}
