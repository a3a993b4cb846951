package repository

import (
	"context"

	"github.com/puntadelverde-srpm/srpm/internal/domain/entity"
)

// SummaryRepository stores summaries keyed by their own ID sequence.
type SummaryRepository interface {
	// Save assigns an ID when it is zero and upserts by ID.
	Save(ctx context.Context, summary *entity.Summary) error
	List(ctx context.Context) ([]*entity.Summary, error)
	// Get returns (nil, nil) if the summary is not found.
	Get(ctx context.Context, id int64) (*entity.Summary, error)
	// Update returns entity.ErrNotFound if the summary does not exist.
	Update(ctx context.Context, summary *entity.Summary) error
	// Delete returns entity.ErrNotFound if the summary does not exist.
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) error
}
