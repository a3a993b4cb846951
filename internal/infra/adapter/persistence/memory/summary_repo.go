package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/puntadelverde-srpm/srpm/internal/domain/entity"
	"github.com/puntadelverde-srpm/srpm/internal/repository"
)

// SummaryRepo is a SummaryRepository keyed by its own ID sequence.
type SummaryRepo struct {
	mu     sync.RWMutex
	byID   map[int64]*entity.Summary
	lastID int64
	opts   options
}

// NewSummaryRepo creates an empty in-memory summary repository.
func NewSummaryRepo(opts ...Option) *SummaryRepo {
	return &SummaryRepo{
		byID: make(map[int64]*entity.Summary),
		opts: buildOptions(opts),
	}
}

var _ repository.SummaryRepository = (*SummaryRepo)(nil)

func (r *SummaryRepo) Save(ctx context.Context, summary *entity.Summary) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if summary == nil {
		return &entity.ValidationError{Field: "summary", Message: "is required"}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if summary.ID == 0 {
		r.lastID++
		summary.ID = r.lastID
	} else if summary.ID > r.lastID {
		r.lastID = summary.ID
	}
	r.byID[summary.ID] = summary.Clone()
	return nil
}

func (r *SummaryRepo) List(ctx context.Context) ([]*entity.Summary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	out := make([]*entity.Summary, 0, len(r.byID))
	for _, s := range r.byID {
		out = append(out, s.Clone())
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *SummaryRepo) Get(ctx context.Context, id int64) (*entity.Summary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byID[id].Clone(), nil
}

func (r *SummaryRepo) Update(ctx context.Context, summary *entity.Summary) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if summary == nil {
		return &entity.ValidationError{Field: "summary", Message: "is required"}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[summary.ID]; !ok {
		return entity.ErrNotFound
	}
	r.byID[summary.ID] = summary.Clone()
	return nil
}

func (r *SummaryRepo) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return entity.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *SummaryRepo) DeleteAll(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID = make(map[int64]*entity.Summary)
	if r.opts.resetIDsOnClear {
		r.lastID = 0
	}
	return nil
}
