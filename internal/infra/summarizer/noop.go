// Package summarizer hands item batches to the external summarization service.
//
// Clients fail open: any failure is logged and reported as an empty result so
// an ingestion cycle always completes.
package summarizer

import (
	"context"
	"log/slog"

	"github.com/puntadelverde-srpm/srpm/internal/domain/entity"
)

// NoOp is used when no summarizer endpoint is configured.
type NoOp struct{}

func NewNoOp() *NoOp {
	return &NoOp{}
}

// Summarize returns no summaries.
func (n *NoOp) Summarize(ctx context.Context, items []*entity.Item) []*entity.Summary {
	slog.DebugContext(ctx, "summarizer disabled, skipping batch", slog.Int("items", len(items)))
	return []*entity.Summary{}
}
