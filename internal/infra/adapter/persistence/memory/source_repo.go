package memory

import (
	"context"

	"github.com/puntadelverde-srpm/srpm/internal/domain/entity"
	"github.com/puntadelverde-srpm/srpm/internal/repository"
)

// SourceRepo is a fixed, ordered registry of feed sources.
type SourceRepo struct {
	sources []entity.Source
}

// NewSourceRepo copies the given sources so later changes by the caller are not visible.
func NewSourceRepo(sources []entity.Source) *SourceRepo {
	cp := make([]entity.Source, len(sources))
	copy(cp, sources)
	return &SourceRepo{sources: cp}
}

var _ repository.SourceRepository = (*SourceRepo)(nil)

func (r *SourceRepo) ListActive(ctx context.Context) ([]*entity.Source, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]*entity.Source, 0, len(r.sources))
	for i := range r.sources {
		s := r.sources[i]
		out = append(out, &s)
	}
	return out, nil
}
