// Package memory provides in-process implementations of the repository interfaces.
// State lives for the lifetime of the process only.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/puntadelverde-srpm/srpm/internal/domain/entity"
	"github.com/puntadelverde-srpm/srpm/internal/repository"
)

// Option configures an in-memory repository.
type Option func(*options)

type options struct {
	resetIDsOnClear bool
	now             func() time.Time
}

// WithResetIDsOnClear makes DeleteAll restart the ID sequence at 1.
func WithResetIDsOnClear(reset bool) Option {
	return func(o *options) { o.resetIDsOnClear = reset }
}

// WithClock overrides the time source used to fill missing publication times.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ItemRepo is an ItemRepository backed by two maps guarded by one lock:
// byID holds the items and byLink indexes them for deduplication.
type ItemRepo struct {
	mu     sync.RWMutex
	byID   map[int64]*entity.Item
	byLink map[string]int64
	lastID int64
	opts   options
}

// NewItemRepo creates an empty in-memory item repository.
func NewItemRepo(opts ...Option) *ItemRepo {
	return &ItemRepo{
		byID:   make(map[int64]*entity.Item),
		byLink: make(map[string]int64),
		opts:   buildOptions(opts),
	}
}

var _ repository.ItemRepository = (*ItemRepo)(nil)

// Save inserts or updates item. A link owned by another item is rejected
// with a *entity.ValidationError.
func (r *ItemRepo) Save(ctx context.Context, item *entity.Item) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if item == nil {
		return &entity.ValidationError{Field: "item", Message: "is required"}
	}
	if err := item.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if owner, ok := r.byLink[item.Link]; ok && owner != item.ID {
		return &entity.ValidationError{
			Field:   "link",
			Message: fmt.Sprintf("already exists for item %d", owner),
		}
	}
	r.store(item)
	return nil
}

func (r *ItemRepo) SaveIfAbsent(ctx context.Context, item *entity.Item) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if item == nil {
		return false, &entity.ValidationError{Field: "item", Message: "is required"}
	}
	if err := item.Validate(); err != nil {
		return false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byLink[item.Link]; exists {
		return false, nil
	}
	r.store(item)
	return true, nil
}

// store assigns the ID and publication time, then upserts both indexes.
// The caller's item receives the assigned values. Must hold r.mu, and the
// link must be free or already owned by item.ID.
func (r *ItemRepo) store(item *entity.Item) {
	if item.ID == 0 {
		r.lastID++
		item.ID = r.lastID
	} else if item.ID > r.lastID {
		r.lastID = item.ID
	}
	if item.PublishedAt.IsZero() {
		item.PublishedAt = r.opts.now()
	}

	if prev, ok := r.byID[item.ID]; ok && prev.Link != item.Link {
		if r.byLink[prev.Link] == item.ID {
			delete(r.byLink, prev.Link)
		}
	}
	r.byID[item.ID] = item.Clone()
	r.byLink[item.Link] = item.ID
}

func (r *ItemRepo) List(ctx context.Context) ([]*entity.Item, error) {
	return r.filter(ctx, func(*entity.Item) bool { return true })
}

func (r *ItemRepo) ListBySource(ctx context.Context, source string) ([]*entity.Item, error) {
	return r.filter(ctx, func(it *entity.Item) bool { return strings.EqualFold(it.Source, source) })
}

func (r *ItemRepo) filter(ctx context.Context, keep func(*entity.Item) bool) ([]*entity.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	items := make([]*entity.Item, 0, len(r.byID))
	for _, it := range r.byID {
		if keep(it) {
			items = append(items, it.Clone())
		}
	}
	r.mu.RUnlock()

	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (r *ItemRepo) Get(ctx context.Context, id int64) (*entity.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byID[id].Clone(), nil
}

func (r *ItemRepo) GetByLink(ctx context.Context, link string) (*entity.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byLink[link]
	if !ok {
		return nil, nil
	}
	return r.byID[id].Clone(), nil
}

func (r *ItemRepo) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID), nil
}

// DeleteAll clears both indexes. The ID counter keeps running unless the
// repository was built with WithResetIDsOnClear(true).
func (r *ItemRepo) DeleteAll(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID = make(map[int64]*entity.Item)
	r.byLink = make(map[string]int64)
	if r.opts.resetIDsOnClear {
		r.lastID = 0
	}
	return nil
}
