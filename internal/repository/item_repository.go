// Package repository declares the storage ports used by the use cases.
// Implementations live under internal/infra/adapter/persistence.
package repository

import (
	"context"

	"github.com/puntadelverde-srpm/srpm/internal/domain/entity"
)

// ItemRepository stores ingested items indexed by ID and by link.
type ItemRepository interface {
	// Save inserts or updates an item. A zero ID is replaced with the next
	// value of the repository's counter and a zero PublishedAt with the
	// current time. Re-saving an existing ID is an update. A link already
	// stored under another ID is a validation error.
	Save(ctx context.Context, item *entity.Item) error
	// SaveIfAbsent stores the item only if no item with the same link exists.
	// The check and the insert happen atomically. Returns false for duplicates.
	SaveIfAbsent(ctx context.Context, item *entity.Item) (bool, error)
	// List returns all items ordered by ID.
	List(ctx context.Context) ([]*entity.Item, error)
	// ListBySource returns items whose source name matches case-insensitively.
	ListBySource(ctx context.Context, source string) ([]*entity.Item, error)
	// Get returns (nil, nil) if the item is not found.
	Get(ctx context.Context, id int64) (*entity.Item, error)
	// GetByLink returns (nil, nil) if no item has the link.
	GetByLink(ctx context.Context, link string) (*entity.Item, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}
