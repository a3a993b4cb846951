package summary

import (
	"context"
	"errors"
	"fmt"

	"github.com/puntadelverde-srpm/srpm/internal/domain/entity"
	"github.com/puntadelverde-srpm/srpm/internal/repository"
)

// Input carries the user-editable fields of a summary.
type Input struct {
	Headline string
	Body     string
}

// Service handles summary CRUD and delegates storage to the repository.
type Service struct {
	Repo repository.SummaryRepository
}

func NewService(repo repository.SummaryRepository) *Service {
	return &Service{Repo: repo}
}

func (s *Service) List(ctx context.Context) ([]*entity.Summary, error) {
	summaries, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list summaries: %w", err)
	}
	return summaries, nil
}

// Get returns ErrInvalidSummaryID for id <= 0 and ErrSummaryNotFound when absent.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Summary, error) {
	if id <= 0 {
		return nil, ErrInvalidSummaryID
	}
	sm, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get summary: %w", err)
	}
	if sm == nil {
		return nil, ErrSummaryNotFound
	}
	return sm, nil
}

// Create stores a new summary and returns it with its assigned ID.
func (s *Service) Create(ctx context.Context, in Input) (*entity.Summary, error) {
	sm := &entity.Summary{Headline: in.Headline, Body: in.Body}
	if err := sm.Validate(); err != nil {
		return nil, err
	}
	if err := s.Repo.Save(ctx, sm); err != nil {
		return nil, fmt.Errorf("create summary: %w", err)
	}
	return sm, nil
}

// Update replaces headline and body of an existing summary.
func (s *Service) Update(ctx context.Context, id int64, in Input) (*entity.Summary, error) {
	if id <= 0 {
		return nil, ErrInvalidSummaryID
	}
	sm := &entity.Summary{ID: id, Headline: in.Headline, Body: in.Body}
	if err := sm.Validate(); err != nil {
		return nil, err
	}
	if err := s.Repo.Update(ctx, sm); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, ErrSummaryNotFound
		}
		return nil, fmt.Errorf("update summary: %w", err)
	}
	return sm, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidSummaryID
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return ErrSummaryNotFound
		}
		return fmt.Errorf("delete summary: %w", err)
	}
	return nil
}
