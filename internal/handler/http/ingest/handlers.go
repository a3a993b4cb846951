// Package ingest exposes manual triggers for ingestion: a full cycle, a
// refresh from empty stores, and a fetch-only pass.
package ingest

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/puntadelverde-srpm/srpm/internal/handler/http/respond"
	"github.com/puntadelverde-srpm/srpm/internal/usecase/digest"
	"github.com/puntadelverde-srpm/srpm/internal/usecase/fetch"
)

var errInvalidLimit = errors.New("invalid limit: must be a positive integer")

// Runner is implemented by *digest.Service.
type Runner interface {
	RunIngestionCycle(ctx context.Context, perFeedLimit int) (*digest.CycleStats, error)
	FullRefresh(ctx context.Context) (*digest.CycleStats, error)
}

// Fetcher is implemented by *fetch.Service.
type Fetcher interface {
	FetchAll(ctx context.Context, perFeedLimit int) (*fetch.FetchResult, error)
}

// parseLimit returns 0 when the query parameter is absent.
func parseLimit(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, errInvalidLimit
	}
	return n, nil
}

func statusFor(err error) int {
	if errors.Is(err, fetch.ErrInvalidLimit) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

type CycleHandler struct{ Runner Runner }

// ServeHTTP runs one ingestion cycle synchronously
// @Summary      Run ingestion cycle
// @Tags         ingest
// @Produce      json
// @Param        limit query int false "entries per feed"
// @Success      200 {object} digest.CycleStats
// @Failure      400 {string} string "invalid limit"
// @Router       /ingest [post]
func (h CycleHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	stats, err := h.Runner.RunIngestionCycle(r.Context(), limit)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, stats)
}

type RefreshHandler struct{ Runner Runner }

// ServeHTTP clears both stores and runs a cycle
// @Summary      Full refresh
// @Tags         ingest
// @Produce      json
// @Success      200 {object} digest.CycleStats
// @Router       /ingest/refresh [post]
func (h RefreshHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Runner.FullRefresh(r.Context())
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, stats)
}

// FetchHandler stores new feed entries without calling the summarizer.
type FetchHandler struct {
	Fetcher      Fetcher
	DefaultLimit int
}

// ServeHTTP
// @Summary      Fetch feeds
// @Tags         ingest
// @Produce      json
// @Param        limit query int false "entries per feed"
// @Success      200 {object} fetch.FetchResult
// @Router       /items/fetch [post]
func (h FetchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if limit == 0 {
		limit = h.DefaultLimit
	}
	if limit <= 0 {
		limit = digest.DefaultItemLimit
	}

	res, err := h.Fetcher.FetchAll(r.Context(), limit)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, res)
}
