package repository

import (
	"context"

	"github.com/puntadelverde-srpm/srpm/internal/domain/entity"
)

// SourceRepository exposes the feed sources polled by the ingestion cycle.
type SourceRepository interface {
	// ListActive returns the sources in registry order.
	ListActive(ctx context.Context) ([]*entity.Source, error)
}
