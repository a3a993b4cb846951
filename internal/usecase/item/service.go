package item

import (
	"context"
	"fmt"

	"github.com/puntadelverde-srpm/srpm/internal/domain/entity"
	"github.com/puntadelverde-srpm/srpm/internal/repository"
)

type Service struct {
	Repo repository.ItemRepository
}

func NewService(repo repository.ItemRepository) *Service {
	return &Service{Repo: repo}
}

// List returns all items ordered by ID.
func (s *Service) List(ctx context.Context) ([]*entity.Item, error) {
	items, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// ListBySource matches the source name case-insensitively.
func (s *Service) ListBySource(ctx context.Context, source string) ([]*entity.Item, error) {
	items, err := s.Repo.ListBySource(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("list items by source: %w", err)
	}
	return items, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*entity.Item, error) {
	if id <= 0 {
		return nil, ErrInvalidItemID
	}
	it, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	if it == nil {
		return nil, ErrItemNotFound
	}
	return it, nil
}

// ResolveGroups maps each group of IDs to the stored items. Unknown IDs are
// dropped; group order and order within a group are preserved, so a group may
// come back empty.
func (s *Service) ResolveGroups(ctx context.Context, groups [][]int64) ([][]*entity.Item, error) {
	out := make([][]*entity.Item, 0, len(groups))
	for _, ids := range groups {
		resolved := make([]*entity.Item, 0, len(ids))
		for _, id := range ids {
			it, err := s.Repo.Get(ctx, id)
			if err != nil {
				return nil, fmt.Errorf("resolve item %d: %w", id, err)
			}
			if it != nil {
				resolved = append(resolved, it)
			}
		}
		out = append(out, resolved)
	}
	return out, nil
}
